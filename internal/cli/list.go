package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Load the manifest and list the registered descriptors",
	RunE:  runList,
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <name>",
	Short: "Show a registered descriptor",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

func runList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	registry, result, err := loadRegistry(cmd.Context(), out)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%-24s %-14s %-9s %s\n", "NAME", "TYPE", "MODE", "LOADED")
	for _, d := range registry.Descriptors() {
		describe(out, d)
	}
	fmt.Fprintf(out, "%d registered, %d merged, %d ignored, %d rejected\n",
		result.Registered, result.Merged, result.Ignored, len(result.Rejected))
	return nil
}

func runLookup(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	registry, _, err := loadRegistry(cmd.Context(), out)
	if err != nil {
		return err
	}

	d := registry.Lookup(args[0])
	if d == nil {
		return fmt.Errorf("creature event %s not found", args[0])
	}

	fmt.Fprintf(out, "name:     %s\n", d.Name())
	fmt.Fprintf(out, "type:     %s\n", d.Kind())
	fmt.Fprintf(out, "mode:     %s\n", d.Mode())
	fmt.Fprintf(out, "loaded:   %t\n", d.Loaded())
	fmt.Fprintf(out, "callback: %s\n", d.ScriptEventName())
	fmt.Fprintf(out, "params:   %s\n", strings.Join(d.ScriptEventParams(), ", "))
	return nil
}
