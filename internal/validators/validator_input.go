// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/hazard-keeper/internal/reconcile"
	"github.com/MKhiriev/hazard-keeper/models"
)

// Field names accepted by [InputValidator.Validate] for scoping.
const (
	FieldUsername = "Username"
	FieldPassword = "Password"
	FieldRole     = "Role"
	FieldDeadline = "Deadline"
)

// InputValidator validates [models.User] and [models.HazardPatch] values.
type InputValidator struct {
	validate *validator.Validate
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

// NewInputValidator builds the validator and registers two rules: "hkdate"
// accepts the same date notations as the importer, "pwbytes" limits a
// password to [MaxPasswordBytes] bytes (not runes).
func NewInputValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("hkdate", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if s == "" {
			return true
		}
		_, ok := reconcile.ParseDate(s)
		return ok
	})
	_ = v.RegisterValidation("pwbytes", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	return &InputValidator{validate: v}
}

// Validate checks obj. When fields are given only those struct fields are
// checked.
func (v *InputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.run(ctx, &value, fields)
	case *models.User:
		return v.run(ctx, value, fields)
	case models.HazardPatch:
		return v.validatePatch(ctx, &value, fields)
	case *models.HazardPatch:
		return v.validatePatch(ctx, value, fields)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *InputValidator) validatePatch(ctx context.Context, patch *models.HazardPatch, fields []string) error {
	if patch == nil || patch.Empty() {
		return ErrEmptyPatch
	}
	return v.run(ctx, patch, fields)
}

func (v *InputValidator) run(ctx context.Context, obj any, fields []string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %w", ErrUnknownField, err)
	}
	return mapFieldError(verrs[0])
}

func mapFieldError(fe validator.FieldError) error {
	switch fe.StructField() {
	case FieldUsername:
		return ErrEmptyUsername
	case FieldPassword:
		if fe.Tag() == "pwbytes" {
			return ErrPasswordTooLong
		}
		return ErrEmptyPassword
	case FieldRole:
		return ErrInvalidRole
	case FieldDeadline:
		return ErrInvalidDeadline
	default:
		return fmt.Errorf("%w: %s failed on %s", ErrUnknownField, fe.StructField(), fe.Tag())
	}
}
