//go:build wireinject
// +build wireinject

// Package wire assembles the application dependency graph.
package wire

import (
	"context"
	"log/slog"

	"github.com/google/wire"

	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/logger"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		config.LoadConfig,
		provideLogger,
		provideApp,
	)
	return nil, nil, nil
}

func provideLogger(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}

// provideApp wraps app.NewApp with a cleanup that stops the application.
func provideApp(ctx context.Context, cfg *config.Config, log *slog.Logger) (*app.App, func(), error) {
	application, err := app.NewApp(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := application.Stop(); err != nil {
			log.Error("error stopping application", "error", err)
		}
	}
	return application, cleanup, nil
}
