// Package main provides the operator CLI for creature events.
package main

import (
	"os"

	"github.com/KirkDiggler/creaturescripts/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
