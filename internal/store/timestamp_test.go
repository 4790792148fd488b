// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNullTime_Scan(t *testing.T) {
	want := time.Date(2026, 10, 18, 9, 30, 15, 0, time.UTC)

	tests := []struct {
		name      string
		src       any
		wantValid bool
		wantTime  time.Time
		wantErr   bool
	}{
		{name: "nil", src: nil},
		{name: "time", src: want, wantValid: true, wantTime: want},
		{name: "sqlite text", src: "2026-10-18 09:30:15", wantValid: true, wantTime: want},
		{name: "iso text with zone", src: "2026-10-18T09:30:15Z", wantValid: true, wantTime: want},
		{name: "bytes", src: []byte("2026-10-18 09:30:15"), wantValid: true, wantTime: want},
		{name: "garbage", src: "yesterday", wantErr: true},
		{name: "wrong type", src: int64(5), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nt nullTime
			err := nt.Scan(tt.src)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, nt.Valid)
			assert.True(t, tt.wantTime.Equal(nt.Time), "got %v", nt.Time)
		})
	}
}
