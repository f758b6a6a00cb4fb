// Package cli implements the eventctl command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creaturescripts/internal/config"
)

var (
	manifestPath string
	warSystem    bool
	maxEnvs      int
)

var rootCmd = &cobra.Command{
	Use:   "eventctl",
	Short: "Inspect and exercise creature event scripts",
	Long: `eventctl loads a creature event manifest the same way the server does and
lets operators validate it, inspect the registered descriptors and fire
login or logout broadcasts against a synthetic player.`,
	SilenceUsage:      true,
	PersistentPreRunE: applyConfigDefaults,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&manifestPath, "manifest", "m", "", "creature event manifest (default $SCRIPT_MANIFEST)")
	flags.BoolVar(&warSystem, "war", false, "pass the war argument to kill handlers (default $SCRIPT_WAR_SYSTEM)")
	flags.IntVar(&maxEnvs, "max-envs", 0, "reentrant execution slots (default $SCRIPT_MAX_ENVS)")

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(signatureCmd)
	rootCmd.AddCommand(fireCmd)
}

// applyConfigDefaults fills flags the user left unset from the environment
func applyConfigDefaults(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("manifest") {
		manifestPath = cfg.Script.ManifestPath
	}
	if !flags.Changed("war") {
		warSystem = cfg.Script.WarSystem
	}
	if !flags.Changed("max-envs") {
		maxEnvs = cfg.Script.MaxEnvs
	}
	return nil
}
