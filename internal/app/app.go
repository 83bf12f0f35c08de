// Package app wires configuration, logging, the quadrature factory, the
// metrics listener, and the orchestration layer into the runnable
// application behind cmd/cosmocalc.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/agbru/cosmocalc/internal/config"
	"github.com/agbru/cosmocalc/internal/logging"
	"github.com/agbru/cosmocalc/internal/quad"
	"github.com/agbru/cosmocalc/internal/server"
	"github.com/agbru/cosmocalc/internal/ui"
)

// Application represents the cosmocalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   quad.Factory
	Logger    logging.Logger
	ErrWriter io.Writer

	metrics *server.Metrics
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom quadrature factory for the application.
func WithFactory(f quad.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger sets a custom logger for the application.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = quad.NewDefaultFactory()
	}

	programName := "cosmocalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, app.Factory.List())
	if err != nil {
		return nil, err
	}
	cfg = config.ApplyAdaptivePanels(cfg)

	app.Config = cfg
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	switch {
	case a.Config.Verbose:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case a.Config.Quiet:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	ui.InitTheme(a.Config.NoColor)

	if a.Logger == nil {
		a.Logger = logging.NewLogger(os.Stderr, "cosmocalc")
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.Config.MetricsAddr != "" {
		a.metrics = server.NewMetrics()
		srv := server.NewServer(a.Config.MetricsAddr, a.metrics, a.Logger)
		go func() {
			if err := srv.Serve(ctx); err != nil {
				a.Logger.Error("metrics listener failed", err)
			}
		}()
	}

	if a.Config.Fib != "" {
		return a.runFib(ctx, out)
	}
	return a.runCalculate(ctx, out)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
