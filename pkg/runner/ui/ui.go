package ui

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/tui"
)

// UI opens the interactive planner.
type UI struct {
	Service *app.Service
	Logger  *zap.Logger
}

func (d *UI) Do(ctx context.Context) error {
	if d.Service == nil {
		return errors.New("can not open ui, no persistence")
	}
	if _, err := d.Service.Open(ctx); err != nil {
		return err
	}
	return tui.Run(d.Service, d.Logger)
}
