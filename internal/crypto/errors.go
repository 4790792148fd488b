// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	ErrUnknownHasher   = errors.New("unknown password hasher")
	ErrPasswordTooLong = errors.New("password is too long for the configured hasher")
	ErrGeneratingSalt  = errors.New("error generating salt")
)
