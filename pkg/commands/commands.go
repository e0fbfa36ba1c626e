package commands

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/commands/options"
	"tableflip.dev/dayplan/pkg/logging"
	"tableflip.dev/dayplan/pkg/store"
)

var (
	output = &options.OutputOptions{}
	lo     = &options.LogOptions{}
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayplan",
		Short: options.Wrap80("Plan a day by linking todo items to time slots."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	options.AddLogArgs(cmd, lo)
	options.AddOutputArg(cmd, output)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addTodo(topLevel)
	addAssign(topLevel)
	addUnassign(topLevel)
	addNote(topLevel)
	addWatch(topLevel)
	addInfo(topLevel)
	addKey(topLevel)
	addCompletions(topLevel)
	addVersion(topLevel)
}

// session is what every command needs to talk to the planner.
type session struct {
	Config  store.Config
	Service *app.Service
	Logger  *zap.Logger
}

func (s *session) Close() {
	_ = s.Logger.Sync()
}

// open loads the config, builds the logger and opens the store. quiet drops
// logging entirely when no log file is configured, for the full screen UI.
func open(quiet bool) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	path := lo.Path
	if path == "" {
		path = cfg.LogPath()
	}
	logger := logging.Must(logging.Options{
		Path:  path,
		Debug: lo.Debug || cfg.Debug(),
		Quiet: quiet,
	})

	p, err := store.Load(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &session{
		Config: cfg,
		Service: &app.Service{
			Persistence: p,
			Granularity: cfg.Granularity(),
			Logger:      logger,
		},
		Logger: logger,
	}, nil
}
