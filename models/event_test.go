// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequest_Header(t *testing.T) {
	r := Request{Headers: map[string]string{
		"accept-language": "en",
		"Content-Type":    "application/json",
	}}

	tests := []struct {
		name string
		want string
	}{
		{name: "Accept-Language", want: "en"},
		{name: "content-type", want: "application/json"},
		{name: "Content-Type", want: "application/json"},
		{name: "X-Missing", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Header(tt.name))
		})
	}
}

func TestRequest_HeaderWithoutHeaders(t *testing.T) {
	assert.Empty(t, Request{}.Header("Accept-Language"))
}
