package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/slot"
	"tableflip.dev/dayplan/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(dayplan completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(dayplan completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// slotCompletions offers the labels of every slot in the configured grid.
func slotCompletions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	grid := slot.New(cfg.Granularity())
	out := make([]string, 0, grid.Len())
	for s := 0; s < grid.Len(); s++ {
		if label := grid.Label(s); strings.HasPrefix(label, toComplete) {
			out = append(out, label)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
