// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/hazard-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService checks credentials and keeps the persisted login state in
// step with them.
type AuthService interface {
	// Authenticate returns the role of the first credential whose username
	// and password both match exactly. Any mismatch is reported as
	// ErrInvalidCredentials without saying which part was wrong.
	Authenticate(ctx context.Context, username, password string) (models.Role, error)

	// Login authenticates and, on success, stores the logged-in session.
	Login(ctx context.Context, username, password string) (models.Session, error)

	// Logout stores a logged-out session.
	Logout(ctx context.Context)

	// RestoreSession returns the last stored session, or a logged-out one.
	RestoreSession(ctx context.Context) models.Session
}

// UserService administers the credential list.
type UserService interface {
	// Add appends a new credential. Empty username or password yields
	// ErrEmptyCredentials and leaves the list untouched. Duplicate usernames
	// are not checked.
	Add(ctx context.Context, username, password string, role models.Role) (models.User, error)

	// Remove drops the credential with id. Unknown ids are ignored.
	Remove(ctx context.Context, id int64) []models.User

	// SetRole replaces the role of the credential with id.
	SetRole(ctx context.Context, id int64, role models.Role) ([]models.User, error)

	// ToggleRole switches the credential with id between admin and user.
	ToggleRole(ctx context.Context, id int64) []models.User

	List(ctx context.Context) []models.User
}

// HazardService owns the hazard collection.
type HazardService interface {
	// Import merges rows into the stored collection and persists the result.
	Import(ctx context.Context, rows []models.Row) ([]models.Hazard, error)

	// ImportReader parses an .xlsx workbook from r and imports it.
	ImportReader(ctx context.Context, r io.Reader) ([]models.Hazard, error)

	// ImportFile parses the workbook at path and imports it.
	ImportFile(ctx context.Context, path string) ([]models.Hazard, error)

	// Edit applies patch to the hazard with id. Unknown ids are a no-op.
	Edit(ctx context.Context, id int64, patch models.HazardPatch) ([]models.Hazard, error)

	// ToggleLock flips the manual lock of the hazard with id.
	ToggleLock(ctx context.Context, id int64) []models.Hazard

	// RefreshOverdue recomputes overdue days of unlocked hazards for today.
	RefreshOverdue(ctx context.Context) []models.Hazard

	// Export writes the collection as an .xlsx workbook.
	Export(ctx context.Context, w io.Writer) error

	List(ctx context.Context) []models.Hazard
}

// PersonnelService owns the personnel roster.
type PersonnelService interface {
	Import(ctx context.Context, rows []models.Row) ([]models.Personnel, error)
	ImportReader(ctx context.Context, r io.Reader) ([]models.Personnel, error)
	ImportFile(ctx context.Context, path string) ([]models.Personnel, error)

	// Delete drops the entry with id. Unknown ids are ignored.
	Delete(ctx context.Context, id int64) []models.Personnel

	List(ctx context.Context) []models.Personnel
}

// PasswordHasher turns passwords into their stored form and compares them.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Matches(stored, password string) bool
}
