// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestParseJSON_Success(t *testing.T) {
	p := writeConfigFile(t, `{
		"app": {"locale": "en", "password_hasher": "argon2id", "password_hash_key": "k"},
		"storage": {"db": {"dsn": "postgres://localhost/users", "driver": "pgx"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": "20s", "route_path": "/api/register"},
		"adapter": {"http_address": "http://localhost:8080", "request_timeout": 1000000000}
	}`)

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, App{Locale: "en", PasswordHasher: "argon2id", PasswordHashKey: "k"}, cfg.App)
	assert.Equal(t, DB{DSN: "postgres://localhost/users", Driver: "pgx"}, cfg.Storage.DB)
	assert.Equal(t, Server{HTTPAddress: "0.0.0.0:8080", RequestTimeout: 20 * time.Second, RoutePath: "/api/register"}, cfg.Server)
	assert.Equal(t, Adapter{HTTPAddress: "http://localhost:8080", RequestTimeout: time.Second}, cfg.Adapter)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    func(t *testing.T) string
		wantMsg string
	}{
		{
			name:    "missing file",
			path:    func(t *testing.T) string { return filepath.Join(t.TempDir(), "absent.json") },
			wantMsg: "error reading a json file",
		},
		{
			name:    "malformed json",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"app": `) },
			wantMsg: "error decoding json configs",
		},
		{
			name:    "bad duration",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"server": {"request_timeout": "later"}}`) },
			wantMsg: "error decoding json configs",
		},
		{
			name:    "duration of wrong type",
			path:    func(t *testing.T) string { return writeConfigFile(t, `{"server": {"request_timeout": true}}`) },
			wantMsg: "error decoding json configs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := parseJSON(tt.path(t))
			assert.Nil(t, cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"1m30s"`, string(b))
}
