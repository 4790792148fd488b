// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-register/models"
	sq "github.com/Masterminds/squirrel"
)

var createdUserColumns = []string{"user_id", "username", "email", "created_at"}

// buildExistsByUsernameOrEmailQuery builds
//
//	SELECT user_id FROM users WHERE (username = ? OR email = ?) LIMIT 1
//
// in the placeholder format of d.
func buildExistsByUsernameOrEmailQuery(d dialect, username, email string) (string, []any, error) {
	query, args, err := d.builder().
		Select("user_id").
		From(models.User{}.TableName()).
		Where(sq.Or{
			sq.Eq{"username": username},
			sq.Eq{"email": email},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCreateUserQuery builds the INSERT of a new user returning the
// store-assigned columns. created_at is left to the column default.
func buildCreateUserQuery(d dialect, user models.User) (string, []any, error) {
	query, args, err := d.builder().
		Insert(models.User{}.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix("RETURNING " + strings.Join(createdUserColumns, ", ")).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
