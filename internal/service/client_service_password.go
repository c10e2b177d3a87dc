// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/hazard-keeper/internal/config"
)

// NewPasswordHasher returns the hasher for mode: config.HashingPlain keeps
// passwords as typed, config.HashingBcrypt stores bcrypt hashes.
func NewPasswordHasher(mode string) (PasswordHasher, error) {
	switch mode {
	case config.HashingPlain, "":
		return plainHasher{}, nil
	case config.HashingBcrypt:
		return bcryptHasher{cost: bcrypt.DefaultCost}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPasswordHashing, mode)
	}
}

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return password, nil
}

func (plainHasher) Matches(stored, password string) bool {
	return stored == password
}

type bcryptHasher struct {
	cost int
}

func (h bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	return string(hash), nil
}

// Matches also accepts a plaintext stored value so that credential lists
// written before hashing was switched on keep working.
func (h bcryptHasher) Matches(stored, password string) bool {
	if err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)); err == nil {
		return true
	}
	_, costErr := bcrypt.Cost([]byte(stored))
	return costErr != nil && stored == password
}
