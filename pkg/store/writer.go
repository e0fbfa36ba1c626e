package store

import (
	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/planner"
)

// Writer is a planner subscriber that saves a snapshot after every change to
// persisted state. Selection-only changes are not written.
type Writer struct {
	Persistence Persistence
	Logger      *zap.Logger

	// Err holds the most recent save failure, cleared by the next success.
	Err error
}

// StateChanged implements planner.Subscriber.
func (w *Writer) StateChanged(s *planner.State, c planner.Change) {
	if w.Persistence == nil || !c.Has(planner.Persisted) {
		return
	}
	w.Err = w.Persistence.Save(s.Snapshot())
	if w.Err != nil && w.Logger != nil {
		w.Logger.Error("persist snapshot", zap.Stringer("change", c), zap.Error(w.Err))
	}
}
