package commands

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	so := &options.SlotOptions{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Reprint the agenda whenever the store changes",
		Example: `
dayplan watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			w := watch.Watch{AllSlots: so.All, Service: s.Service, Logger: s.Logger}
			return output.HandleError(w.Do(ctx))
		},
	}

	options.AddAllSlotsArg(cmd, so)
	topLevel.AddCommand(cmd)
}
