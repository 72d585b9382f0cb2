package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/mailbridge/internal/email"
)

func (a *App) initModules() {
	if err := email.New(email.Dependency{
		Publisher:  a.publisher,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		Clock:      a.clock,
		Goroutine:  a.goroutine,
		Validator:  a.validator,
		Router:     a.router,
	}); err != nil {
		slog.Error("failed to init module email", "error", err)
		os.Exit(1)
	}
}
