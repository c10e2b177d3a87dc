// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hazard-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStore is the raw persistence backend: whole blobs addressed by key.
// Implementations return [ErrKeyNotFound] from Get for absent keys.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// HazardRepository persists the hazard collection and its id sequence.
type HazardRepository interface {
	GetAllHazards(ctx context.Context) []models.Hazard
	SaveHazards(ctx context.Context, hazards []models.Hazard)
	LastHazardID(ctx context.Context) int64
	SaveLastHazardID(ctx context.Context, id int64)
}

// PersonnelRepository persists the roster and its id sequence.
type PersonnelRepository interface {
	GetAllPersonnel(ctx context.Context) []models.Personnel
	SavePersonnel(ctx context.Context, personnel []models.Personnel)
	LastPersonnelID(ctx context.Context) int64
	SaveLastPersonnelID(ctx context.Context, id int64)
}

// UserRepository persists credential records and their id sequence.
type UserRepository interface {
	GetAllUsers(ctx context.Context) []models.User
	SaveUsers(ctx context.Context, users []models.User)
	LastUserID(ctx context.Context) int64
	SaveLastUserID(ctx context.Context, id int64)
}

// SessionRepository mirrors the login state.
type SessionRepository interface {
	GetSession(ctx context.Context) (models.Session, bool)
	SaveSession(ctx context.Context, session models.Session)
}
