// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// validate checks that the final merged [StructuredConfig] can start the
// registration service.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.Storage.DB.DSN) == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	switch cfg.Storage.DB.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
	}

	switch cfg.App.PasswordHasher {
	case HasherSHA256, HasherArgon2id, HasherBcrypt:
	default:
		return fmt.Errorf("%w: unsupported password hasher %q", ErrInvalidAppConfigs, cfg.App.PasswordHasher)
	}

	if _, err := language.Parse(cfg.App.Locale); err != nil {
		return fmt.Errorf("%w: invalid locale %q: %w", ErrInvalidAppConfigs, cfg.App.Locale, err)
	}

	if cfg.Server.HTTPAddress == "" || !strings.HasPrefix(cfg.Server.RoutePath, "/") {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if !strings.HasPrefix(cfg.RoutePath, "/") {
		return ErrInvalidServerConfigs
	}

	return nil
}
