package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/mailbridge/internal/pkg/clock"
	"github.com/shandysiswandi/mailbridge/internal/pkg/config"
	"github.com/shandysiswandi/mailbridge/internal/pkg/goroutine"
	"github.com/shandysiswandi/mailbridge/internal/pkg/instrument"
	"github.com/shandysiswandi/mailbridge/internal/pkg/messaging"
	"github.com/shandysiswandi/mailbridge/internal/pkg/router"
	"github.com/shandysiswandi/mailbridge/internal/pkg/uid"
	"github.com/shandysiswandi/mailbridge/internal/pkg/validator"
)

// App wires dependencies and manages service lifecycle.
type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config   config.Config
	settings settings
	ins      instrument.Instrumentation

	// libraries
	goroutine *goroutine.Manager
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID

	// resources
	publisher messaging.Publisher

	// server
	router     *router.Router
	httpServer *http.Server

	//
	closers []struct {
		name string
		fn   func(context.Context) error
	}
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initSettings()
	app.initMessaging()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
