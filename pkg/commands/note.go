package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/runner/note"
)

func addNote(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "note <hour> [text]",
		Short: "Set or clear the note of an hour",
		Example: `
dayplan note 12 lunch with Sam
dayplan note 12
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hour, err := strconv.Atoi(strings.TrimSuffix(args[0], ":00"))
			if err != nil {
				return fmt.Errorf("hour %q: %w", args[0], err)
			}
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			n := note.Note{
				Hour:    hour,
				Text:    strings.Join(args[1:], " "),
				Service: s.Service,
			}
			return output.HandleError(n.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
