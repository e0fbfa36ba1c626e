package options

import (
	"github.com/spf13/cobra"
)

// LogOptions override the log settings from the config file.
type LogOptions struct {
	Path  string
	Debug bool
}

func AddLogArgs(cmd *cobra.Command, o *LogOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "log", "",
		"Write a JSON log to this file.")
	cmd.PersistentFlags().BoolVar(&o.Debug, "debug", false,
		"Log at debug level.")
}
