// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sevigo/code-critic/internal/app"
	"github.com/sevigo/code-critic/internal/config"
	"github.com/sevigo/code-critic/internal/logger"
)

// InitializeApp creates and wires all application dependencies.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := provideLoggerGen(cfg)

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

func provideLoggerGen(cfg *config.Config) *slog.Logger {
	return logger.NewLogger(cfg.Logging, nil)
}
