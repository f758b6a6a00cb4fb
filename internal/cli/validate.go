package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/creaturescripts/internal/manifest"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a manifest without loading scripts",
	Long: `Parse the manifest and report every definition with a missing name, an
unknown type, or other than exactly one of script and buffer.`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	m, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}

	problems := m.Validate()
	if len(problems) == 0 {
		fmt.Fprintf(out, "%s: %d definitions ok\n", manifestPath, len(m.Events))
		return nil
	}

	indexes := make([]int, 0, len(problems))
	for i := range problems {
		indexes = append(indexes, i)
	}
	sort.Ints(indexes)

	for _, i := range indexes {
		fmt.Fprintf(out, "#%d %s: %v\n", i, m.Events[i].Name, problems[i])
	}
	return fmt.Errorf("%d of %d definitions are invalid", len(problems), len(m.Events))
}
