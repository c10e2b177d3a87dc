// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks user supplied input (new credentials, manual
// hazard edits) before it reaches the services.
//
// Rules are declared as go-playground/validator struct tags on the models;
// this package runs them and maps failures to the sentinel errors in
// errors.go so callers never see validator internals.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
