// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/MKhiriev/go-register/internal/config"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// dialect captures what differs between the supported SQL backends.
type dialect struct {
	driver            string
	placeholder       sq.PlaceholderFormat
	isUniqueViolation func(err error) bool
	classifier        ErrorClassificator
}

func dialectFor(driver string) (dialect, bool) {
	switch driver {
	case config.DriverPostgres:
		return dialect{
			driver:            config.DriverPostgres,
			placeholder:       sq.Dollar,
			isUniqueViolation: isPostgresUniqueViolation,
			classifier:        NewPostgresErrorClassifier(),
		}, true
	case config.DriverSQLite:
		return dialect{
			driver:            config.DriverSQLite,
			placeholder:       sq.Question,
			isUniqueViolation: isSQLiteUniqueViolation,
			classifier:        NewSQLiteErrorClassifier(),
		}, true
	default:
		return dialect{}, false
	}
}

func (d dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

func isPostgresUniqueViolation(err error) bool {
	return postgresError(err) == pgerrcode.UniqueViolation
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isSQLiteUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}

	return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
		sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
}
