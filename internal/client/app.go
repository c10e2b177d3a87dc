// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/tui"
	"github.com/MKhiriev/hazard-keeper/internal/workers"
)

// UI is the interactive front-end driven by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	services *service.ClientServices
	ui       UI
	workers  *workers.Workers
	logger   *logger.Logger
}

// NewApp wires the terminal UI with the services. When an import watch
// directory is configured, hazard workbooks dropped into it are imported
// while the UI runs.
func NewApp(services *service.ClientServices, ui UI, cfg config.Import, log *logger.Logger) (*App, error) {
	if services == nil || ui == nil {
		return nil, ErrNilDependency
	}

	app := &App{services: services, ui: ui, logger: log}

	if cfg.WatchDir != "" {
		watcher := workers.NewImportWatcher(cfg.WatchDir, cfg.Debounce, workers.ImportHandlers{
			Hazards: func(ctx context.Context, path string) error {
				_, err := services.HazardService.ImportFile(ctx, path)
				return err
			},
		}, log)
		app.workers = workers.NewWorkers(watcher)
	}

	return app, nil
}

// Run seeds the bootstrap administrator and blocks until the UI exits.
// Leaving the UI on purpose is not an error.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.Bootstrap(ctx); err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	if a.workers != nil {
		go func() { workersDone <- a.workers.Run(ctx) }()
	} else {
		workersDone <- nil
	}

	err := a.ui.Run(ctx)
	cancel()

	if workerErr := <-workersDone; workerErr != nil {
		a.logger.Err(workerErr).Msg("import watcher stopped with error")
	}

	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Msg("user quit")
		return nil
	}
	return err
}
