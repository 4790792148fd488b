// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
)

// userRepository is the SQL implementation of [UserRepository]. It runs on
// whatever handle it is given; [sqlSession.InTx] hands it the open
// transaction.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	db      DBTX
	dialect dialect
}

func newUserRepository(db DBTX, d dialect) *userRepository {
	return &userRepository{
		db:      db,
		dialect: d,
	}
}

// ExistsByUsernameOrEmail reports whether any row has the given username or
// the given email. Both values are compared as stored, without case folding.
func (r *userRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsByUsernameOrEmailQuery(r.dialect, username, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ExistsByUsernameOrEmail").Msg("error building query")
		return false, err
	}

	var userID int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&userID)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		log.Err(err).
			Str("func", "*userRepository.ExistsByUsernameOrEmail").
			Stringer("classification", r.dialect.classifier.Classify(err)).
			Msg("error checking user existence")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// Error handling:
//   - unique constraint violation → [ErrUserAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
//   - scan failure → wrapped [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.dialect, user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building query")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err = row.Err(); err != nil {
		return models.User{}, r.insertError(ctx, err)
	}

	// scan saved user from db
	var created models.User
	var createdAt nullTime
	if err = row.Scan(&created.UserID, &created.Username, &created.Email, &createdAt); err != nil {
		// some drivers report constraint violations only on the first read
		if r.dialect.isUniqueViolation(err) {
			return models.User{}, r.insertError(ctx, err)
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	created.PasswordHash = user.PasswordHash
	if createdAt.Valid {
		created.CreatedAt = createdAt.Time
	}

	return created, nil
}

func (r *userRepository) insertError(ctx context.Context, err error) error {
	log := logger.FromContext(ctx)

	if r.dialect.isUniqueViolation(err) {
		log.Warn().Err(err).Str("func", "*userRepository.CreateUser").Msg("user already exists")
		return ErrUserAlreadyExists
	}

	log.Err(err).
		Str("func", "*userRepository.CreateUser").
		Stringer("classification", r.dialect.classifier.Classify(err)).
		Msg("error inserting user")
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
