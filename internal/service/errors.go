// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials is the only authentication failure callers see.
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrEmptyCredentials    = errors.New("username and password are required")
	ErrInvalidRole         = errors.New("invalid role")
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnknownPasswordHashing = errors.New("unknown password hashing mode")
	ErrHashingPassword        = errors.New("error hashing password")
)
