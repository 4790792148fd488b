// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrAllFieldsRequired = errors.New("all fields are required")
	ErrPasswordTooShort  = errors.New("password is too short")
	ErrInvalidRequest    = errors.New("invalid registration request")
)
