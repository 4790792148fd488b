// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-register/models"
)

// RegistrationService creates user accounts.
type RegistrationService interface {
	// Register creates a user from request and returns the stored record.
	//
	// Returned errors match (errors.Is) one of:
	//   - validators.ErrAllFieldsRequired, validators.ErrPasswordTooShort
	//   - crypto.ErrPasswordTooLong
	//   - store.ErrUserAlreadyExists
	//   - store.ErrConnecting and the other store operation errors
	Register(ctx context.Context, request models.RegistrationRequest) (models.User, error)
}

// RegistrationServiceWrapper defines middleware composition for RegistrationService.
// Implementations wrap an existing RegistrationService to add behavior such as
// logging or validating.
type RegistrationServiceWrapper interface {
	Wrap(RegistrationService) RegistrationService // returns a decorated RegistrationService applying additional behavior
}
