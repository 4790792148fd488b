// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the registration endpoint.
//
// [RegistrationClient] hides the transport from callers. Non-success
// responses are mapped by mapHTTPError to the sentinel errors of this package,
// so callers can use [errors.Is] (e.g. [ErrConflict] for 409) and still read
// the server's localized message from the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-register/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/registration_client_mock.go -package=mock

// RegistrationClient registers users against a remote registration server.
type RegistrationClient interface {
	// Register posts request to the registration route and returns the
	// created user. Returns an error wrapping one of the package sentinels
	// when the server rejects the request.
	Register(ctx context.Context, request models.RegistrationRequest) (models.RegisteredUser, error)
}
