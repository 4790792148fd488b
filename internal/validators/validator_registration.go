// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-register/models"
	"github.com/go-playground/validator/v10"
)

// passwordField is the Go field name carrying the `min` tag.
const passwordField = "Password"

// RegistrationValidator validates [models.RegistrationRequest] values using
// their `validate` struct tags.
//
// Rule precedence: any missing field yields ErrAllFieldsRequired, even when
// the password is also too short.
type RegistrationValidator struct {
	validate *validator.Validate
}

// NewRegistrationValidator constructs a ready-to-use RegistrationValidator.
func NewRegistrationValidator() *RegistrationValidator {
	return &RegistrationValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate implements [Validator]. The request is expected to be normalized
// already: whitespace around username and email counts as content here.
func (v *RegistrationValidator) Validate(ctx context.Context, data any) error {
	switch value := data.(type) {
	case models.RegistrationRequest:
		return mapValidationError(v.validate.StructCtx(ctx, value))
	case *models.RegistrationRequest:
		if value == nil {
			return ErrAllFieldsRequired
		}
		return mapValidationError(v.validate.StructCtx(ctx, *value))
	default:
		return ErrUnsupportedType
	}
}

func mapValidationError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	for _, fe := range validationErrors {
		if fe.Tag() == "required" {
			return ErrAllFieldsRequired
		}
	}

	for _, fe := range validationErrors {
		if fe.StructField() == passwordField && fe.Tag() == "min" {
			return ErrPasswordTooShort
		}
	}

	return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
}
