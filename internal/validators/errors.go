// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrInvalidRole     = errors.New("invalid role")
	ErrInvalidDeadline = errors.New("invalid deadline")
	ErrEmptyPatch      = errors.New("at least one field must be provided for update")
)
