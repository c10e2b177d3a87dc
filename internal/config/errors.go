// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or a driver whose
	// connection setting is missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates an unknown password hashing mode or an
	// incomplete bootstrap administrator.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidImportConfigs indicates an unknown empty key policy or a
	// negative debounce.
	ErrInvalidImportConfigs = errors.New("invalid import configuration")
)
