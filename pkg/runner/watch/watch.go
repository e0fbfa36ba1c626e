// Package watch follows the store and reprints the agenda whenever another
// process changes it.
package watch

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
)

// Watch is a read-only follower. It never writes to the store.
type Watch struct {
	AllSlots bool
	Service  *app.Service
	Logger   *zap.Logger
	Out      io.Writer
}

// Do prints the agenda and blocks, reprinting after every change, until ctx
// is cancelled or the watcher stops.
func (w *Watch) Do(ctx context.Context) error {
	if w.Service == nil {
		return errors.New("can not watch, no persistence")
	}
	logger := w.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if _, err := w.Service.Open(ctx); err != nil {
		return err
	}
	ch, err := w.Service.Watch(ctx)
	if err != nil {
		return err
	}

	w.print()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			logger.Debug("store changed", zap.String("key", ev.Key))
			if _, err := w.Service.Reload(ctx); err != nil {
				logger.Warn("reload after change", zap.Error(err))
				continue
			}
			w.print()
		}
	}
}

func (w *Watch) print() {
	st := w.Service.Engine().State()
	pp := printers.PrettyPrint{AllSlots: w.AllSlots, Out: w.Out}
	pp.NewLine()
	pp.TitleWithCount("Todo", st.Todos().Len(), "item")
	pp.Todos(st.Todos().Entries()...)
	pp.Title("Agenda")
	pp.Agenda(st)
}
