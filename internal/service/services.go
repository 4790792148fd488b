// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/crypto"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/store"
)

type Services struct {
	RegistrationService RegistrationService
}

// NewServices wires the registration service: validation wrapped around
// hashing and persistence. The password hasher is selected by cfg.
func NewServices(connector store.Connector, cfg config.App, logger *logger.Logger) (*Services, error) {
	hasher, err := crypto.NewPasswordHasher(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating password hasher: %w", err)
	}
	logger.Debug().Str("hasher", hasher.Name()).Msg("password hasher selected")

	return &Services{
		RegistrationService: NewRegistrationValidationService().Wrap(
			NewRegistrationService(connector, hasher, logger),
		),
	}, nil
}
