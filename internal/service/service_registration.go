// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-register/internal/crypto"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/store"
	"github.com/MKhiriev/go-register/models"
)

// registrationService is the concrete implementation of RegistrationService.
// It hashes the password and writes the user within a single store session.
// Input is expected to be normalized and validated by
// [RegistrationValidationService].
type registrationService struct {
	// connector opens one store session per call.
	connector store.Connector

	// hasher derives the stored password digest.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewRegistrationService constructs a RegistrationService writing through
// connector and hashing with hasher.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewRegistrationService(connector store.Connector, hasher crypto.PasswordHasher, logger *logger.Logger) RegistrationService {
	return &registrationService{
		connector: connector,
		hasher:    hasher,
		logger:    logger,
	}
}

// Register hashes the password, then within one transaction checks for an
// existing username or email and inserts the new user.
//
// Exactly one store session is opened and it is closed on every path,
// including panics. Nothing is written when the pre-check finds a collision.
func (r *registrationService) Register(ctx context.Context, request models.RegistrationRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := r.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("hasher", r.hasher.Name()).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}

	session, err := r.connector.Connect(ctx)
	if err != nil {
		log.Err(err).Msg("store connection failed")
		return models.User{}, fmt.Errorf("store connection failed: %w", err)
	}
	defer func() {
		if closeErr := session.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing store session")
		}
	}()

	var created models.User
	err = session.InTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
		exists, err := repo.ExistsByUsernameOrEmail(ctx, request.Username, request.Email)
		if err != nil {
			return err
		}
		if exists {
			return store.ErrUserAlreadyExists
		}

		created, err = repo.CreateUser(ctx, models.User{
			Username:     request.Username,
			Email:        request.Email,
			PasswordHash: passwordHash,
		})
		return err
	})
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", created.UserID).Str("username", created.Username).Msg("user registered")
	return created, nil
}
