package app

import (
	"log/slog"
	"os"

	"github.com/muhdemir/lifehub/internal/nutrition"
	"github.com/muhdemir/lifehub/internal/reminder"
	"github.com/muhdemir/lifehub/internal/tracker"
)

func (a *App) initModules() {
	// Gate is constructed in initHTTPServer; here it only mounts its routes.
	a.gate.RegisterRoutes(a.router)

	if a.config.GetBool("modules.nutrition.enabled") {
		if err := nutrition.New(a.ctx, nutrition.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module nutrition", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.tracker.enabled") {
		if err := tracker.New(a.ctx, tracker.Dependency{
			DBConn:      a.dbConn,
			Router:      a.router,
			Storage:     a.storage,
			Idempotency: a.idemp,
			Config:      a.config,
			Instrument:  a.ins,
			UID:         a.uid,
			Clock:       a.clock,
			Validator:   a.validator,
		}); err != nil {
			slog.Error("failed to init module tracker", "error", err)
			os.Exit(1)
		}
	}

	if a.config.GetBool("modules.reminder.enabled") {
		if err := reminder.New(a.ctx, reminder.Dependency{
			DBConn:     a.dbConn,
			Router:     a.router,
			Messaging:  a.messaging,
			Mailer:     a.mail,
			Goroutine:  a.goroutine,
			Config:     a.config,
			Instrument: a.ins,
			UID:        a.uid,
			UUID:       a.uuid,
			Clock:      a.clock,
			Validator:  a.validator,
		}); err != nil {
			slog.Error("failed to init module reminder", "error", err)
			os.Exit(1)
		}
	}
}
