// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account as it is persisted in the users table.
type User struct {
	// UserID is the store-assigned identifier (sequence backed).
	UserID int64 `json:"user_id"`

	// Username is the unique, trimmed account name.
	Username string `json:"username"`

	// Email is the unique, trimmed e-mail address.
	Email string `json:"email"`

	// PasswordHash is the one-way digest of the password. It is never the raw
	// password and is never serialized into responses.
	PasswordHash string `json:"-"`

	// CreatedAt is assigned by the store on insert and never mutated.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
