// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/hazard-keeper/models"
)

func strPtr(s string) *string { return &s }

func TestInputValidator_User(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		user    any
		fields  []string
		wantErr error
	}{
		{name: "valid", user: models.User{Username: "li", Password: "pw", Role: models.RoleUser}},
		{name: "valid pointer", user: &models.User{Username: "li", Password: "pw", Role: models.RoleAdmin}},
		{name: "empty username", user: models.User{Password: "pw", Role: models.RoleUser}, wantErr: ErrEmptyUsername},
		{name: "empty password", user: models.User{Username: "li", Role: models.RoleUser}, wantErr: ErrEmptyPassword},
		{name: "long username", user: models.User{Username: strings.Repeat("x", 200), Password: "pw", Role: models.RoleUser}},
		{name: "password at bcrypt limit", user: models.User{Username: "li", Password: strings.Repeat("x", 72), Role: models.RoleUser}},
		{name: "password over bcrypt limit", user: models.User{Username: "li", Password: strings.Repeat("x", 73), Role: models.RoleUser}, wantErr: ErrPasswordTooLong},
		{name: "password limit counts bytes", user: models.User{Username: "li", Password: strings.Repeat("密", 25), Role: models.RoleUser}, wantErr: ErrPasswordTooLong},
		{name: "bad role", user: models.User{Username: "li", Password: "pw", Role: "root"}, wantErr: ErrInvalidRole},
		{name: "role only", user: models.User{Role: "root"}, fields: []string{FieldRole}, wantErr: ErrInvalidRole},
		{name: "role only valid", user: models.User{Role: models.RoleAdmin}, fields: []string{FieldRole}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.user, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestInputValidator_HazardPatch(t *testing.T) {
	v := NewInputValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.HazardPatch{Deadline: strPtr("2024-05-01")}))
	assert.NoError(t, v.Validate(ctx, &models.HazardPatch{Deadline: strPtr("")}))
	assert.NoError(t, v.Validate(ctx, models.HazardPatch{ResponsiblePerson: strPtr("张三")}))
	assert.ErrorIs(t, v.Validate(ctx, models.HazardPatch{Deadline: strPtr("next week")}), ErrInvalidDeadline)
	assert.ErrorIs(t, v.Validate(ctx, models.HazardPatch{}), ErrEmptyPatch)
	assert.ErrorIs(t, v.Validate(ctx, (*models.HazardPatch)(nil)), ErrEmptyPatch)
}

func TestInputValidator_UnsupportedType(t *testing.T) {
	err := NewInputValidator().Validate(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUnsupportedType)
}
