package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
dayplan ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(true)
			if err != nil {
				return err
			}
			defer s.Close()
			i := ui.UI{Service: s.Service, Logger: s.Logger}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
