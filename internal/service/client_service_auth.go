// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/models"
)

type authService struct {
	users    store.UserRepository
	sessions store.SessionRepository
	hasher   PasswordHasher
	logger   *logger.Logger
}

func NewAuthService(users store.UserRepository, sessions store.SessionRepository, hasher PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{users: users, sessions: sessions, hasher: hasher, logger: logger}
}

func (a *authService) Authenticate(ctx context.Context, username, password string) (models.Role, error) {
	for _, u := range a.users.GetAllUsers(ctx) {
		if u.Username == username && a.hasher.Matches(u.Password, password) {
			return u.Role, nil
		}
	}

	a.logger.Info().Str("func", "authService.Authenticate").Str("username", username).Msg("authentication failed")
	return "", ErrInvalidCredentials
}

func (a *authService) Login(ctx context.Context, username, password string) (models.Session, error) {
	role, err := a.Authenticate(ctx, username, password)
	if err != nil {
		return models.Session{}, err
	}

	session := models.Session{LoggedIn: true, Role: role}
	a.sessions.SaveSession(ctx, session)
	a.logger.Info().Str("username", username).Str("role", string(role)).Msg("logged in")

	return session, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.sessions.SaveSession(ctx, models.Session{})
	a.logger.Info().Msg("logged out")
}

func (a *authService) RestoreSession(ctx context.Context) models.Session {
	session, ok := a.sessions.GetSession(ctx)
	if !ok {
		return models.Session{}
	}
	return session
}
