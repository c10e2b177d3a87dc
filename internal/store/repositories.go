// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/hazard-keeper/models"
)

type hazardRepository struct {
	blobs *BlobStore
}

// NewHazardRepository stores hazards under [KeyHazards] and [KeyHazardsSeq].
func NewHazardRepository(blobs *BlobStore) HazardRepository {
	return &hazardRepository{blobs: blobs}
}

// GetAllHazards returns the stored collection, or an empty one when the
// blob is absent or unreadable.
func (r *hazardRepository) GetAllHazards(ctx context.Context) []models.Hazard {
	var hazards []models.Hazard
	if !r.blobs.Load(ctx, KeyHazards, &hazards) {
		return []models.Hazard{}
	}
	return hazards
}

func (r *hazardRepository) SaveHazards(ctx context.Context, hazards []models.Hazard) {
	r.blobs.Save(ctx, KeyHazards, nonNil(hazards))
}

func (r *hazardRepository) LastHazardID(ctx context.Context) int64 {
	return loadSeq(ctx, r.blobs, KeyHazardsSeq)
}

func (r *hazardRepository) SaveLastHazardID(ctx context.Context, id int64) {
	r.blobs.Save(ctx, KeyHazardsSeq, id)
}

type personnelRepository struct {
	blobs *BlobStore
}

func NewPersonnelRepository(blobs *BlobStore) PersonnelRepository {
	return &personnelRepository{blobs: blobs}
}

func (r *personnelRepository) GetAllPersonnel(ctx context.Context) []models.Personnel {
	var personnel []models.Personnel
	if !r.blobs.Load(ctx, KeyPersonnel, &personnel) {
		return []models.Personnel{}
	}
	return personnel
}

func (r *personnelRepository) SavePersonnel(ctx context.Context, personnel []models.Personnel) {
	r.blobs.Save(ctx, KeyPersonnel, nonNil(personnel))
}

func (r *personnelRepository) LastPersonnelID(ctx context.Context) int64 {
	return loadSeq(ctx, r.blobs, KeyPersonnelSeq)
}

func (r *personnelRepository) SaveLastPersonnelID(ctx context.Context, id int64) {
	r.blobs.Save(ctx, KeyPersonnelSeq, id)
}

type userRepository struct {
	blobs *BlobStore
}

func NewUserRepository(blobs *BlobStore) UserRepository {
	return &userRepository{blobs: blobs}
}

func (r *userRepository) GetAllUsers(ctx context.Context) []models.User {
	var users []models.User
	if !r.blobs.Load(ctx, KeyUsers, &users) {
		return []models.User{}
	}
	return users
}

func (r *userRepository) SaveUsers(ctx context.Context, users []models.User) {
	r.blobs.Save(ctx, KeyUsers, nonNil(users))
}

func (r *userRepository) LastUserID(ctx context.Context) int64 {
	return loadSeq(ctx, r.blobs, KeyUsersSeq)
}

func (r *userRepository) SaveLastUserID(ctx context.Context, id int64) {
	r.blobs.Save(ctx, KeyUsersSeq, id)
}

type sessionRepository struct {
	blobs *BlobStore
}

func NewSessionRepository(blobs *BlobStore) SessionRepository {
	return &sessionRepository{blobs: blobs}
}

// GetSession reports false when no login state has been written yet.
func (r *sessionRepository) GetSession(ctx context.Context) (models.Session, bool) {
	var session models.Session
	if !r.blobs.Load(ctx, KeyLoginState, &session) {
		return models.Session{}, false
	}
	return session, true
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) {
	r.blobs.Save(ctx, KeyLoginState, session)
}

func loadSeq(ctx context.Context, blobs *BlobStore, key string) int64 {
	var seq int64
	if !blobs.Load(ctx, key, &seq) || seq < 0 {
		return 0
	}
	return seq
}

// nonNil makes empty collections persist as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
