// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/internal/store"
	"github.com/MKhiriev/hazard-keeper/internal/validators"
	"github.com/MKhiriev/hazard-keeper/models"
)

func TestUserService_Add(t *testing.T) {
	svc, storages := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))

	added, err := svc.UserService.Add(ctx, "li", "pw", models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 2, Username: "li", Password: "pw", Role: models.RoleUser}, added)

	// duplicates are allowed
	dup, err := svc.UserService.Add(ctx, "li", "other", models.RoleAdmin)
	require.NoError(t, err)
	assert.EqualValues(t, 3, dup.ID)

	assert.Len(t, storages.UserRepository.GetAllUsers(ctx), 3)
	assert.EqualValues(t, 3, storages.UserRepository.LastUserID(ctx))
}

func TestUserService_AddRejectsBadInput(t *testing.T) {
	svc, storages := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))
	before := storages.UserRepository.GetAllUsers(ctx)

	tests := []struct {
		name     string
		username string
		password string
		role     models.Role
		wantErr  error
	}{
		{name: "empty username", password: "pw", role: models.RoleUser, wantErr: ErrEmptyCredentials},
		{name: "empty password", username: "li", role: models.RoleUser, wantErr: ErrEmptyCredentials},
		{name: "both empty", role: models.RoleUser, wantErr: ErrEmptyCredentials},
		{name: "bad role", username: "li", password: "pw", role: "owner", wantErr: ErrInvalidRole},
		{name: "password too long", username: "li", password: strings.Repeat("p", 73), role: models.RoleUser, wantErr: validators.ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.UserService.Add(ctx, tt.username, tt.password, tt.role)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, storages.UserRepository.GetAllUsers(ctx))
		})
	}
}

func TestUserService_AddLongPasswordWithBcrypt(t *testing.T) {
	storages := store.NewClientStoragesFromKV(store.NewMemoryStore(), logger.Nop())
	hasher, err := NewPasswordHasher(config.HashingBcrypt)
	require.NoError(t, err)
	app := config.App{BootstrapUsername: "decro", BootstrapPassword: "123456"}
	svc := newClientServices(storages, app, hasher, testImportOptions(""), logger.Nop())
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))

	_, err = svc.UserService.Add(ctx, "li", strings.Repeat("p", 73), models.RoleUser)
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordTooLong)
	assert.NotErrorIs(t, err, ErrHashingPassword)

	added, err := svc.UserService.Add(ctx, "li", strings.Repeat("p", 72), models.RoleUser)
	require.NoError(t, err)
	role, err := svc.AuthService.Authenticate(ctx, "li", strings.Repeat("p", 72))
	require.NoError(t, err)
	assert.Equal(t, added.Role, role)
}

func TestUserService_IDsAreNotReused(t *testing.T) {
	svc, _ := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))

	a, err := svc.UserService.Add(ctx, "a", "pw", models.RoleUser)
	require.NoError(t, err)
	svc.UserService.Remove(ctx, a.ID)

	b, err := svc.UserService.Add(ctx, "b", "pw", models.RoleUser)
	require.NoError(t, err)
	assert.Greater(t, b.ID, a.ID)
}

func TestUserService_Roles(t *testing.T) {
	svc, _ := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))
	_, err := svc.UserService.Add(ctx, "li", "pw", models.RoleUser)
	require.NoError(t, err)

	users, err := svc.UserService.SetRole(ctx, 2, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, users[1].Role)
	assert.Equal(t, models.RoleAdmin, users[0].Role)

	_, err = svc.UserService.SetRole(ctx, 2, "root")
	assert.ErrorIs(t, err, ErrInvalidRole)

	users = svc.UserService.ToggleRole(ctx, 2)
	assert.Equal(t, models.RoleUser, users[1].Role)
	users = svc.UserService.ToggleRole(ctx, 1)
	assert.Equal(t, models.RoleUser, users[0].Role)

	assert.Equal(t, users, svc.UserService.ToggleRole(ctx, 99), "unknown id changes nothing")
	assert.Equal(t, users, svc.UserService.List(ctx))
}

func TestUserService_RemoveUnknownID(t *testing.T) {
	svc, _ := newTestServices(t, reconcile.EmptyKeyDistinct)
	ctx := context.Background()
	require.NoError(t, svc.Bootstrap(ctx))

	assert.Len(t, svc.UserService.Remove(ctx, 42), 1)
}
