// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Request is the HTTP-like request descriptor a function trigger delivers.
type Request struct {
	// HTTPMethod is the request method name, e.g. "POST" or "OPTIONS".
	HTTPMethod string `json:"httpMethod"`

	// Body is the raw UTF-8 request body. Nil means no body was sent.
	Body *string `json:"body"`

	// Headers holds request headers. They are never used for authentication.
	Headers map[string]string `json:"headers,omitempty"`
}

// Header returns the value of the named header using a case-insensitive
// lookup, or an empty string.
func (r Request) Header(name string) string {
	if v, ok := r.Headers[name]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, name) {
			return v
		}
	}
	return ""
}

// Response is the HTTP-like response descriptor returned to the trigger.
type Response struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`

	// Body is plain text (JSON or empty); IsBase64Encoded is therefore always false.
	Body            string `json:"body"`
	IsBase64Encoded bool   `json:"isBase64Encoded"`
}
