// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/hazard-keeper/internal/config"
	"github.com/MKhiriev/hazard-keeper/internal/logger"
	"github.com/MKhiriev/hazard-keeper/internal/mock"
	"github.com/MKhiriev/hazard-keeper/models"
)

func newTestAuthSvc(t *testing.T) (AuthService, *mock.MockUserRepository, *mock.MockSessionRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)
	sessions := mock.NewMockSessionRepository(ctrl)
	return NewAuthService(users, sessions, plainHasher{}, logger.Nop()), users, sessions
}

var credentialList = []models.User{
	{ID: 1, Username: "decro", Password: "123456", Role: models.RoleAdmin},
	{ID: 2, Username: "li", Password: "first", Role: models.RoleUser},
	{ID: 3, Username: "li", Password: "first", Role: models.RoleAdmin},
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		want     models.Role
		wantErr  error
	}{
		{name: "admin", username: "decro", password: "123456", want: models.RoleAdmin},
		{name: "first match wins", username: "li", password: "first", want: models.RoleUser},
		{name: "wrong password", username: "decro", password: "wrong", wantErr: ErrInvalidCredentials},
		{name: "unknown user", username: "nobody", password: "123456", wantErr: ErrInvalidCredentials},
		{name: "case sensitive username", username: "Decro", password: "123456", wantErr: ErrInvalidCredentials},
		{name: "empty input", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, _ := newTestAuthSvc(t)
			ctx := context.Background()
			users.EXPECT().GetAllUsers(ctx).Return(credentialList)

			role, err := svc.Authenticate(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, role)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, role)
		})
	}
}

func TestAuthService_LoginStoresSession(t *testing.T) {
	svc, users, sessions := newTestAuthSvc(t)
	ctx := context.Background()

	gomock.InOrder(
		users.EXPECT().GetAllUsers(ctx).Return(credentialList),
		sessions.EXPECT().SaveSession(ctx, models.Session{LoggedIn: true, Role: models.RoleAdmin}),
	)

	session, err := svc.Login(ctx, "decro", "123456")
	require.NoError(t, err)
	assert.True(t, session.IsAdmin())
}

func TestAuthService_FailedLoginLeavesSessionAlone(t *testing.T) {
	svc, users, _ := newTestAuthSvc(t)
	ctx := context.Background()

	// no SaveSession expectation: storing a session here fails the test
	users.EXPECT().GetAllUsers(ctx).Return(credentialList)

	_, err := svc.Login(ctx, "decro", "nope")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_LogoutAndRestore(t *testing.T) {
	svc, _, sessions := newTestAuthSvc(t)
	ctx := context.Background()

	sessions.EXPECT().SaveSession(ctx, models.Session{})
	svc.Logout(ctx)

	sessions.EXPECT().GetSession(ctx).Return(models.Session{LoggedIn: true, Role: models.RoleUser}, true)
	assert.Equal(t, models.Session{LoggedIn: true, Role: models.RoleUser}, svc.RestoreSession(ctx))

	sessions.EXPECT().GetSession(ctx).Return(models.Session{}, false)
	assert.Equal(t, models.Session{}, svc.RestoreSession(ctx))
}

func TestPasswordHashers(t *testing.T) {
	plain, err := NewPasswordHasher(config.HashingPlain)
	require.NoError(t, err)
	stored, err := plain.Hash("pw")
	require.NoError(t, err)
	assert.Equal(t, "pw", stored)
	assert.True(t, plain.Matches("pw", "pw"))
	assert.False(t, plain.Matches("pw", "PW"))

	bc, err := NewPasswordHasher(config.HashingBcrypt)
	require.NoError(t, err)
	hash, err := bc.Hash("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", hash)
	assert.True(t, bc.Matches(hash, "pw"))
	assert.False(t, bc.Matches(hash, "other"))
	assert.True(t, bc.Matches("legacy", "legacy"), "plaintext records written before hashing still match")
	assert.False(t, bc.Matches("legacy", "other"))

	_, err = NewPasswordHasher("rot13")
	assert.ErrorIs(t, err, ErrUnknownPasswordHashing)
}
