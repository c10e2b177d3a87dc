// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/hazard-keeper/internal/client"
	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/internal/tui"
	"github.com/MKhiriev/hazard-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("hazard-keeper").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("hazard-keeper", cfg.Log.File, cfg.Log.Level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create storage")
	}
	defer storages.Close()

	services, err := service.NewClientServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui := tui.New(services, session.NewGate(), buildInfo(), log)

	app, err := client.NewApp(services, ui, cfg.Import, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		stop()
		_ = storages.Close()
		os.Exit(1)
	}
}

func buildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}
	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}
