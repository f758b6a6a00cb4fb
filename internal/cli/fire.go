package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creaturescripts/internal/entities"
)

var (
	playerName string
	forced     bool
)

var fireCmd = &cobra.Command{
	Use:   "fire <login|logout>",
	Short: "Broadcast a login or logout for a synthetic player",
	Long: `Load the manifest and run every login or logout handler against a player
standing at the temple. Prints allow when every handler allowed the event and
deny otherwise.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"login", "logout"},
	RunE:      runFire,
}

func init() {
	fireCmd.Flags().StringVarP(&playerName, "name", "n", "Player", "player name")
	fireCmd.Flags().BoolVar(&forced, "forced", false, "fire logout as a forced logout")
}

func runFire(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	registry, _, err := loadRegistry(cmd.Context(), out)
	if err != nil {
		return err
	}

	player := entities.NewPlayer(1, playerName, entities.Position{X: 1000, Y: 1000, Z: 7})

	var allowed bool
	switch args[0] {
	case "login":
		allowed = registry.BroadcastLogin(player)
	case "logout":
		allowed = registry.BroadcastLogout(player, forced)
	default:
		return fmt.Errorf("unknown broadcast %q, want login or logout", args[0])
	}

	if allowed {
		fmt.Fprintln(out, "allow")
	} else {
		fmt.Fprintln(out, "deny")
	}
	return nil
}
