// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-register/internal/config"
)

// NewPasswordHasher builds the [PasswordHasher] selected by cfg.PasswordHasher.
// An empty name selects the sha256 hasher.
func NewPasswordHasher(cfg config.App) (PasswordHasher, error) {
	switch cfg.PasswordHasher {
	case config.HasherSHA256, "":
		return NewSHA256Hasher(cfg.PasswordHashKey), nil
	case config.HasherArgon2id:
		return NewArgon2idHasher(), nil
	case config.HasherBcrypt:
		return NewBcryptHasher(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownHasher, cfg.PasswordHasher)
	}
}
