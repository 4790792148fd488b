// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"

	"github.com/MKhiriev/go-register/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// bcryptMaxPasswordLength is the number of password bytes bcrypt consumes.
const bcryptMaxPasswordLength = 72

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt hasher with [bcrypt.DefaultCost].
func NewBcryptHasher() PasswordHasher {
	return &bcryptHasher{cost: bcrypt.DefaultCost}
}

// Hash rejects passwords longer than 72 bytes instead of silently
// truncating them.
func (h *bcryptHasher) Hash(password string) (string, error) {
	if len(password) > bcryptMaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

func (h *bcryptHasher) Name() string {
	return config.HasherBcrypt
}
