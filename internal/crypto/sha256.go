// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"

	"github.com/MKhiriev/go-register/internal/config"
)

// sha256Hasher produces a lowercase hex SHA-256 digest of the password.
// With a key it produces HMAC-SHA256 instead. Either way the output is
// deterministic and 64 characters long.
type sha256Hasher struct {
	key []byte
}

// NewSHA256Hasher returns the unsalted sha256 hasher. A non-empty key
// switches it to HMAC-SHA256.
func NewSHA256Hasher(key string) PasswordHasher {
	h := &sha256Hasher{}
	if key != "" {
		h.key = []byte(key)
	}
	return h
}

func (h *sha256Hasher) Hash(password string) (string, error) {
	return hex.EncodeToString(h.sum([]byte(password))), nil
}

func (h *sha256Hasher) Name() string {
	return config.HasherSHA256
}

func (h *sha256Hasher) sum(data []byte) []byte {
	if h.key == nil {
		sum := sha256.Sum256(data)
		return sum[:]
	}

	mac := hmac.New(sha256.New, h.key)
	mac.Write(data)
	return mac.Sum(nil)
}
