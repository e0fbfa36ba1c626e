package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the planner and where it is stored.",
		Example: `
dayplan info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			i := info.Info{Config: s.Config, Service: s.Service}
			return output.HandleError(i.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
