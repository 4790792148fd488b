// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the input rules of the registration endpoint
// before any password hashing or store access takes place.
//
// Usage patterns:
//  1. Inject a Validator into the service layer.
//  2. Call Validate with context and value.
//
// Validation failures are reported as the sentinel errors of this package so
// transport layers can map them to client errors with errors.Is.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input.
	Validate(context.Context, any) error
}
