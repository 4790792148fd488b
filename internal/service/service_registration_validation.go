// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/validators"
	"github.com/MKhiriev/go-register/models"
)

// RegistrationValidationService normalizes and validates registration
// requests before handing them to the wrapped service. Rejected requests
// never reach the hasher or the store.
type RegistrationValidationService struct {
	inner     RegistrationService
	validator validators.Validator
}

func NewRegistrationValidationService() RegistrationServiceWrapper {
	return &RegistrationValidationService{
		validator: validators.NewRegistrationValidator(),
	}
}

func (v *RegistrationValidationService) Register(ctx context.Context, request models.RegistrationRequest) (models.User, error) {
	// username and email are trimmed, password is kept as sent
	request = request.Normalize()

	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("username", request.Username).Msg("registration request rejected")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

func (v *RegistrationValidationService) Wrap(inner RegistrationService) RegistrationService {
	v.inner = inner
	return v
}
