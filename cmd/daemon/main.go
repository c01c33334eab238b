package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/genricoloni/screend/internal/config"
	"github.com/genricoloni/screend/internal/domain"
	"github.com/genricoloni/screend/internal/engine"
	"github.com/genricoloni/screend/internal/executor"
	"github.com/genricoloni/screend/internal/fetcher"
	"github.com/genricoloni/screend/internal/hdi"
	"github.com/genricoloni/screend/internal/monitor"
	"github.com/genricoloni/screend/internal/processor"
	"github.com/genricoloni/screend/internal/store"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// AppOptions is the dependency graph of the daemon
var AppOptions = fx.Options(
	// Provide dependencies
	fx.Provide(
		newLogger,
		fx.Annotate(config.NewAppConfig, fx.As(new(domain.Config))),
		monitor.NewScreenResolution,
		newCommandRunner,
		newBacklight,
		fx.Annotate(hdi.NewX11Backend, fx.As(new(domain.DisplayBackend))),
		fx.Annotate(monitor.NewLogindMonitor, fx.As(new(domain.PowerMonitor))),
		fx.Annotate(store.NewSQLiteStore, fx.As(new(domain.StateStore))),
		fx.Annotate(fetcher.NewMaskFetcher, fx.As(new(domain.Fetcher))),
		fx.Annotate(processor.NewMaskProcessor, fx.As(new(domain.MaskRenderer))),
		engine.NewManager,
	),

	// Lifecycle hooks
	fx.Invoke(registerHooks),
)

func main() {
	var manager *engine.Manager

	app := fx.New(
		// Logger configuration
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		AppOptions,
		fx.Populate(&manager),
	)

	// Handle graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Start the application
	if err := app.Start(ctx); err != nil {
		panic(err)
	}

	// SIGUSR1 writes the screen dump to stderr
	dump := make(chan os.Signal, 1)
	signal.Notify(dump, syscall.SIGUSR1)
	defer signal.Stop(dump)

	for ctx.Err() == nil {
		select {
		case <-dump:
			manager.Dump(os.Stderr)
		case <-ctx.Done():
		}
	}

	// Stop the application gracefully
	if err := app.Stop(context.Background()); err != nil {
		panic(err)
	}
}

// newLogger creates a new zap logger instance. SCREEND_LOG_LEVEL overrides
// the production level.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	if lvl := os.Getenv("SCREEND_LOG_LEVEL"); lvl != "" {
		level, err := zap.ParseAtomicLevel(lvl)
		if err != nil {
			return nil, fmt.Errorf("invalid SCREEND_LOG_LEVEL: %w", err)
		}
		cfg.Level = level
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return logger, nil
}

// newCommandRunner returns the display tool runner, or nil when none is
// installed; devices then report scaling as not supported
func newCommandRunner(logger *zap.Logger) hdi.CommandRunner {
	runner, err := executor.NewRunner(logger)
	if err != nil {
		logger.Warn("Display scaling disabled", zap.Error(err))
		return nil
	}
	return runner
}

func newBacklight(logger *zap.Logger, cfg domain.Config) hdi.Backlight {
	subsystem, device := cfg.Backlight()
	return hdi.NewLogindBacklight(logger, subsystem, device, dialSystemBus)
}

func dialSystemBus() (hdi.BusCaller, error) {
	conn, err := monitor.NewStdDBusClient()
	if err != nil {
		return nil, err
	}
	return conn, nil
}

// registerHooks sets up application lifecycle hooks
func registerHooks(lc fx.Lifecycle, logger *zap.Logger, manager *engine.Manager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("Screen daemon started")
			return manager.Start(ctx)
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("Shutting down")
			return manager.Stop(ctx)
		},
	})
}
