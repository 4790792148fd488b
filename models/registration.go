// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strings"
	"time"
)

// RegistrationRequest is the JSON body accepted by the registration endpoint.
// Every field is optional on the wire; missing fields decode as empty strings.
type RegistrationRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required,min=6"`
}

// Normalize trims surrounding whitespace from Username and Email.
// Password is left untouched.
func (r RegistrationRequest) Normalize() RegistrationRequest {
	return RegistrationRequest{
		Username: strings.TrimSpace(r.Username),
		Email:    strings.TrimSpace(r.Email),
		Password: r.Password,
	}
}

// RegisteredUser is the body of a successful registration response.
type RegisteredUser struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`

	// CreatedAt is an RFC 3339 timestamp in UTC, or null when the store returned none.
	CreatedAt *string `json:"created_at"`
}

// NewRegisteredUser builds the public view of a freshly created user.
func NewRegisteredUser(user User) RegisteredUser {
	registered := RegisteredUser{
		UserID:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}

	if !user.CreatedAt.IsZero() {
		createdAt := user.CreatedAt.UTC().Format(time.RFC3339Nano)
		registered.CreatedAt = &createdAt
	}

	return registered
}
