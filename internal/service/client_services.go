// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/internal/validators"
	"github.com/MKhiriev/hazard-keeper/models"
)

// ClientServices is the single mutation surface over the stored
// collections. All services share one mutex, so read-modify-write cycles
// from different front-ends never interleave.
type ClientServices struct {
	AuthService      AuthService
	UserService      UserService
	HazardService    HazardService
	PersonnelService PersonnelService

	users     store.UserRepository
	hasher    PasswordHasher
	bootstrap config.App
	mu        *sync.Mutex
	logger    *logger.Logger
}

func NewClientServices(storages *store.ClientStorages, cfg config.StructuredConfig, logger *logger.Logger) (*ClientServices, error) {
	hasher, err := NewPasswordHasher(cfg.App.PasswordHashing)
	if err != nil {
		return nil, err
	}

	policy, err := reconcile.ParseEmptyKeyPolicy(cfg.Import.EmptyKeyPolicy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return newClientServices(storages, cfg.App, hasher, ImportOptions{EmptyKeyPolicy: policy}, logger), nil
}

func newClientServices(storages *store.ClientStorages, app config.App, hasher PasswordHasher, opts ImportOptions, logger *logger.Logger) *ClientServices {
	mu := &sync.Mutex{}
	validator := validators.NewInputValidator()

	return &ClientServices{
		AuthService:      NewAuthService(storages.UserRepository, storages.SessionRepository, hasher, logger),
		UserService:      NewUserService(storages.UserRepository, hasher, validator, mu, logger),
		HazardService:    NewHazardService(storages.HazardRepository, validator, opts, mu, logger),
		PersonnelService: NewPersonnelService(storages.PersonnelRepository, opts, mu, logger),

		users:     storages.UserRepository,
		hasher:    hasher,
		bootstrap: app,
		mu:        mu,
		logger:    logger,
	}
}

// Bootstrap seeds the configured administrator the first time the
// credential list is seen empty. A list emptied later by deletions is not
// reseeded: the users sequence has moved past zero by then.
func (s *ClientServices) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users.GetAllUsers(ctx)) > 0 || s.users.LastUserID(ctx) > 0 {
		return nil
	}

	password, err := s.hasher.Hash(s.bootstrap.BootstrapPassword)
	if err != nil {
		return err
	}

	admin := models.User{
		ID:       1,
		Username: s.bootstrap.BootstrapUsername,
		Password: password,
		Role:     models.RoleAdmin,
	}
	s.users.SaveUsers(ctx, []models.User{admin})
	s.users.SaveLastUserID(ctx, admin.ID)
	s.logger.Info().Str("username", admin.Username).Msg("bootstrap administrator seeded")

	return nil
}
