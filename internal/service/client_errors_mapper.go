// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/hazard-keeper/internal/validators"
)

// mapValidationError translates validator failures into service errors.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, validators.ErrEmptyUsername),
		errors.Is(err, validators.ErrEmptyPassword):
		return ErrEmptyCredentials
	case errors.Is(err, validators.ErrInvalidRole):
		return ErrInvalidRole
	default:
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
}
