// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives the one-way digest stored in users.password_hash.
// The raw password never leaves the hasher.
type PasswordHasher interface {
	// Hash returns the encoded digest of password.
	Hash(password string) (string, error)

	// Name returns the configuration name of the scheme, e.g. "sha256".
	Name() string
}
