// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-register/models"
)

// Connector opens one store session per registration attempt.
type Connector interface {
	// Connect opens a dedicated single-connection handle to the store.
	// The caller must Close the returned Session on every path.
	Connect(ctx context.Context) (Session, error)
}

// Session is a single pinned store connection.
type Session interface {
	// InTx runs fn inside one transaction on the session's connection.
	// The transaction is committed when fn returns nil and rolled back when
	// fn returns an error or panics. A panic is re-raised after rollback.
	InTx(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) error

	// Close releases the connection and the underlying handle. It is safe to
	// call more than once.
	Close() error
}

// UserRepository reads and writes the users table.
type UserRepository interface {
	// ExistsByUsernameOrEmail reports whether a user has the given username
	// or the given email.
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)

	// CreateUser inserts user and returns the stored row with the
	// store-assigned UserID and CreatedAt. A unique constraint violation is
	// reported as ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
}

// ErrorClassificator decides whether a failed store operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DBTX is the subset of database/sql used by repositories. Both queries
// return a single row, so only QueryRowContext is needed.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy it.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
