// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ErrorResponse is the JSON body of every non-success response.
type ErrorResponse struct {
	Error string `json:"error"`
}
