// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/internal/validators"
	"github.com/MKhiriev/hazard-keeper/models"
)

type userService struct {
	users     store.UserRepository
	hasher    PasswordHasher
	validator validators.Validator

	mu     *sync.Mutex
	logger *logger.Logger
}

func NewUserService(users store.UserRepository, hasher PasswordHasher, validator validators.Validator, mu *sync.Mutex, logger *logger.Logger) UserService {
	return &userService{users: users, hasher: hasher, validator: validator, mu: mu, logger: logger}
}

func (s *userService) Add(ctx context.Context, username, password string, role models.Role) (models.User, error) {
	user := models.User{Username: username, Password: password, Role: role}
	if err := s.validator.Validate(ctx, user); err != nil {
		return models.User{}, mapValidationError(err)
	}

	stored, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, err
	}
	user.Password = stored

	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users.GetAllUsers(ctx)
	seq := reconcile.NewSequence(s.users.LastUserID(ctx))
	for _, u := range users {
		seq.Observe(u.ID)
	}
	user.ID = seq.Next()

	s.users.SaveUsers(ctx, append(users, user))
	s.users.SaveLastUserID(ctx, seq.Last())
	s.logger.Info().Int64("user_id", user.ID).Str("username", username).Str("role", string(role)).Msg("user added")

	return user, nil
}

func (s *userService) Remove(ctx context.Context, id int64) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := slices.DeleteFunc(s.users.GetAllUsers(ctx), func(u models.User) bool {
		return u.ID == id
	})
	s.users.SaveUsers(ctx, users)
	s.logger.Info().Int64("user_id", id).Msg("user removed")

	return users
}

func (s *userService) SetRole(ctx context.Context, id int64, role models.Role) ([]models.User, error) {
	if err := s.validator.Validate(ctx, models.User{Role: role}, validators.FieldRole); err != nil {
		return nil, mapValidationError(err)
	}

	return s.updateRole(ctx, id, func(models.Role) models.Role { return role }), nil
}

func (s *userService) ToggleRole(ctx context.Context, id int64) []models.User {
	return s.updateRole(ctx, id, models.Role.Toggled)
}

func (s *userService) updateRole(ctx context.Context, id int64, next func(models.Role) models.Role) []models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := s.users.GetAllUsers(ctx)
	for i := range users {
		if users[i].ID == id {
			users[i].Role = next(users[i].Role)
			s.logger.Info().Int64("user_id", id).Str("role", string(users[i].Role)).Msg("user role changed")
		}
	}
	s.users.SaveUsers(ctx, users)

	return users
}

func (s *userService) List(ctx context.Context) []models.User {
	return s.users.GetAllUsers(ctx)
}
