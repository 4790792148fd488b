// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/models"
	"github.com/stretchr/testify/require"
)

func mustDialect(t *testing.T, driver string) dialect {
	t.Helper()
	d, ok := dialectFor(driver)
	require.True(t, ok, "unknown driver %s", driver)
	return d
}

func Test_buildExistsByUsernameOrEmailQuery(t *testing.T) {
	tests := []struct {
		name         string
		driver       string
		placeholders []string
	}{
		{name: "postgres", driver: config.DriverPostgres, placeholders: []string{"username = $1", "email = $2"}},
		{name: "sqlite", driver: config.DriverSQLite, placeholders: []string{"username = ?", "email = ?"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildExistsByUsernameOrEmailQuery(mustDialect(t, tt.driver), "alice", "alice@example.com")
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.True(t, strings.HasPrefix(q, "select user_id from "+models.User{}.TableName()+" "))
			require.Contains(t, q, " or ")
			require.Contains(t, q, "limit 1")
			for _, p := range tt.placeholders {
				require.Contains(t, query, p)
			}

			// username first, email second
			require.Equal(t, []any{"alice", "alice@example.com"}, args)
		})
	}
}

func Test_buildCreateUserQuery(t *testing.T) {
	user := models.User{Username: "alice", Email: "alice@example.com", PasswordHash: "digest"}

	tests := []struct {
		name        string
		driver      string
		placeholder string
	}{
		{name: "postgres", driver: config.DriverPostgres, placeholder: "$3"},
		{name: "sqlite", driver: config.DriverSQLite, placeholder: "?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCreateUserQuery(mustDialect(t, tt.driver), user)
			require.NoError(t, err)

			q := strings.ToLower(query)
			require.True(t, strings.HasPrefix(q, "insert into "+models.User{}.TableName()+" "))
			require.Contains(t, q, "password_hash")
			require.NotContains(t, q, "created_at,")
			require.True(t, strings.HasSuffix(q, "returning user_id, username, email, created_at"))
			require.Contains(t, query, tt.placeholder)

			require.Equal(t, []any{"alice", "alice@example.com", "digest"}, args)
		})
	}
}
