package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/store"
)

type Info struct {
	Config  store.Config
	Service *app.Service
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	out := n.Out
	if out == nil {
		out = color.Output
	}

	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(out, store.ConfigPathEnv, "env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path:       ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.granularity:", n.Config.Granularity())
	if n.Config.LogPath() != "" {
		_, _ = fmt.Fprintln(out, "Config.log:        ", n.Config.LogPath())
	}

	if n.Service == nil {
		return fmt.Errorf("failed to create persistence object")
	}
	e, err := n.Service.Open(ctx)
	if err != nil {
		return err
	}
	st := e.State()
	assigned := 0
	for s := 0; s < st.Slots().Len(); s++ {
		assigned += len(st.Slots().At(s))
	}
	notes := 0
	for _, note := range st.Notes() {
		if note != "" {
			notes++
		}
	}
	_, _ = fmt.Fprintf(out, "Todo items:  %d\n", st.Todos().Len())
	_, _ = fmt.Fprintf(out, "Assignments: %d across %d slots\n", assigned, st.Slots().Len())
	_, _ = fmt.Fprintf(out, "Hour notes:  %d\n", notes)
	return nil
}
