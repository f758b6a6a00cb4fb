package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creaturescripts/internal/events"
)

var signatureCmd = &cobra.Command{
	Use:   "signature [type...]",
	Short: "Print the callback signature scripts must define",
	Long: `Print the Lua callback signature for each event type, or for every type
when none are given.`,
	RunE: runSignature,
}

func runSignature(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	kinds := events.Kinds()
	if len(args) > 0 {
		kinds = kinds[:0:0]
		for _, tag := range args {
			k := events.ResolveKind(tag)
			if !k.Valid() {
				return fmt.Errorf("unknown event type %q", tag)
			}
			kinds = append(kinds, k)
		}
	}

	for _, k := range kinds {
		fmt.Fprintf(out, "%-14s %s\n", k, k.Signature(warSystem))
	}
	return nil
}
