package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/prompt"
	"tableflip.dev/dayplan/pkg/runner/add"
	"tableflip.dev/dayplan/pkg/runner/complete"
	"tableflip.dev/dayplan/pkg/runner/get"
	"tableflip.dev/dayplan/pkg/runner/label"
	"tableflip.dev/dayplan/pkg/runner/remove"
)

func addTodo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "todo",
		Aliases: []string{"todos", "t"},
		Short:   "Manage the todo list",
		Example: `
dayplan todo add call the bank
dayplan todo done 2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addTodoAdd(cmd)
	addTodoLabel(cmd)
	addTodoDone(cmd)
	addTodoRemove(cmd)
	addTodoList(cmd)

	topLevel.AddCommand(cmd)
}

// todoNumber parses the 1-based number printed by `dayplan todo ls`.
func todoNumber(arg string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSuffix(arg, "."))
	if err != nil {
		return 0, fmt.Errorf("todo number %q: %w", arg, err)
	}
	return n, nil
}

func addTodoAdd(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	i := &options.InteractiveOptions{}

	cmd := &cobra.Command{
		Use:   "add [label]",
		Short: "Add a todo item",
		Example: `
dayplan todo add write the report
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			text := strings.Join(args, " ")
			if text == "" && i.Interactive {
				p := prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				if text, err = p.Text("Label"); err != nil {
					return err
				}
			}
			a := add.Add{
				Label:   text,
				ShowID:  io.ShowID,
				Service: s.Service,
			}
			return output.HandleError(a.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	options.InteractiveArgs(cmd, i)
	topLevel.AddCommand(cmd)
}

func addTodoLabel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "label <number> <label>",
		Short: "Rename a todo item",
		Example: `
dayplan todo label 1 write the final report
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := todoNumber(args[0])
			if err != nil {
				return err
			}
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			l := label.Label{
				Number:  n,
				Label:   strings.Join(args[1:], " "),
				Service: s.Service,
			}
			return output.HandleError(l.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addTodoDone(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "done <number>",
		Aliases: []string{"complete", "x"},
		Short:   "Toggle completion of a todo item",
		Example: `
dayplan todo done 3
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := todoNumber(args[0])
			if err != nil {
				return err
			}
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			c := complete.Complete{Number: n, Service: s.Service}
			return output.HandleError(c.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addTodoRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "rm <number>",
		Aliases: []string{"remove", "delete"},
		Short:   "Delete a todo item and all of its assignments",
		Example: `
dayplan todo rm 2
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := todoNumber(args[0])
			if err != nil {
				return err
			}
			s, err := open(false)
			if err != nil {
				return err
			}
			defer s.Close()
			r := remove.Remove{Number: n, Service: s.Service}
			return output.HandleError(r.Do(context.Background()))
		},
	}

	topLevel.AddCommand(cmd)
}

func addTodoList(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List the todo items",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open(false)
			if err != nil {
				return output.HandleError(err)
			}
			defer s.Close()
			l := get.List{ShowID: io.ShowID, JSON: output.JSON, Service: s.Service}
			return output.HandleError(l.Do(context.Background()))
		},
	}

	options.AddShowIDArgs(cmd, io)
	topLevel.AddCommand(cmd)
}
