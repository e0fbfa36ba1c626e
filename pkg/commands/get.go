package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	so := &options.SlotOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Print the todo list and the day agenda.",
		Example: `
dayplan get
dayplan get --all
dayplan get --json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()
			g := get.Get{
				ShowID:   io.ShowID,
				AllSlots: so.All,
				JSON:     output.JSON,
				Service:  s.Service,
			}
			return output.HandleError(g.Do(context.Background()))
		},
	}

	options.AddAllSlotsArg(cmd, so)
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
