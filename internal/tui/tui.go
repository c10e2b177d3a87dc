// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front-end of hazard-keeper.
//
// Every screen change goes through the session gate, so a session that
// loses its role or logs out is redirected on the next navigation.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/service"
	"github.com/MKhiriev/hazard-keeper/internal/session"
	"github.com/MKhiriev/hazard-keeper/models"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services  *service.ClientServices
	gate      *session.Gate
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, gate *session.Gate, buildInfo models.AppBuildInfo, log *logger.Logger) *TUI {
	return &TUI{services: services, gate: gate, buildInfo: buildInfo, logger: log}
}

// Run blocks until the user leaves the program. The stored session is
// restored first, so a previous login skips the login screen.
func (t *TUI) Run(ctx context.Context) error {
	restored := t.services.AuthService.RestoreSession(ctx)
	t.logger.Info().Bool("logged_in", restored.LoggedIn).Str("role", string(restored.Role)).Msg("session restored")

	model := newAppModel(ctx, t.services, t.gate, restored, t.buildInfo)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}
