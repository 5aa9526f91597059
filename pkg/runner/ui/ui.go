package ui

import (
	"context"
	"errors"

	"tableflip.dev/scriv/pkg/store"
	"tableflip.dev/scriv/pkg/tui/app"
)

type UI struct {
	Persistence store.Persistence
}

func (u *UI) Do(ctx context.Context) error {
	if u.Persistence == nil {
		return errors.New("can not open ui, no persistence")
	}
	settings, err := u.Persistence.LoadSettings()
	if err != nil {
		return err
	}
	return app.Run(u.Persistence, settings)
}
