package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/prompt"
	"tableflip.dev/dayplan/pkg/runner/assign"
)

func addAssign(topLevel *cobra.Command) {
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "assign <todo number> <slot>",
		Short: "Schedule a todo item into a slot",
		Long: `Schedule a todo item into a slot. The slot is either its index or its
start time, e.g. 9:30. An item may be scheduled into any number of slots.`,
		Example: `
dayplan assign 2 9:30
dayplan assign 1 18
dayplan assign -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive {
				return cobra.MaximumNArgs(2)(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) == 1 {
				return slotCompletions(cmd, args, toComplete)
			}
			return nil, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()

			p := prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
			var n int
			if len(args) > 0 {
				if n, err = todoNumber(args[0]); err != nil {
					return err
				}
			} else {
				todos, err := s.Service.Todos(ctx)
				if err != nil {
					return err
				}
				if n, err = p.Todo(todos); err != nil {
					return err
				}
			}
			var at string
			if len(args) > 1 {
				at = args[1]
			} else {
				e, err := s.Service.Open(ctx)
				if err != nil {
					return err
				}
				if at, err = p.Slot(e.State()); err != nil {
					return err
				}
			}

			a := assign.Assign{Number: n, Slot: at, Service: s.Service}
			return output.HandleError(a.Do(ctx))
		},
	}

	options.InteractiveArgs(cmd, i)
	topLevel.AddCommand(cmd)
}

func addUnassign(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "unassign <slot> [position]",
		Short: "Remove an assignment from a slot",
		Long: `Remove an assignment from a slot. Position counts from 1 in the order
the slot was filled; without it the most recent assignment is removed.`,
		Example: `
dayplan unassign 9:30
dayplan unassign 9:30 1
`,
		Args:              cobra.RangeArgs(1, 2),
		ValidArgsFunction: slotCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			pos := 0
			if len(args) == 2 {
				var err error
				if pos, err = strconv.Atoi(args[1]); err != nil || pos < 1 {
					return fmt.Errorf("position %q: want a number from 1", args[1])
				}
			}
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			u := assign.Unassign{Slot: args[0], Position: pos, Service: s.Service}
			return output.HandleError(u.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}
