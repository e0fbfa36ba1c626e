package options

import (
	"github.com/spf13/cobra"
)

// SlotOptions controls which slots of the day are printed.
type SlotOptions struct {
	All bool
}

func AddAllSlotsArg(cmd *cobra.Command, o *SlotOptions) {
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include empty slots.")
}
