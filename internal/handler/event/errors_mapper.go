// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package event

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-register/internal/crypto"
	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/internal/store"
	"github.com/MKhiriev/go-register/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrAllFieldsRequired: http.StatusBadRequest,
	validators.ErrPasswordTooShort:  http.StatusBadRequest,
	service.ErrInvalidDataProvided:  http.StatusBadRequest,
	crypto.ErrPasswordTooLong:       http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusConflict,

	store.ErrConnecting:           http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// errorMessages is ordered: a validation error is also an
// ErrInvalidDataProvided, and the specific message must win.
var errorMessages = []struct {
	target error
	key    i18n.Key
}{
	{validators.ErrAllFieldsRequired, i18n.MsgAllFieldsRequired},
	{validators.ErrPasswordTooShort, i18n.MsgPasswordTooShort},
	{crypto.ErrPasswordTooLong, i18n.MsgPasswordTooLong},
	{store.ErrUserAlreadyExists, i18n.MsgUserExists},
	{service.ErrInvalidDataProvided, i18n.MsgInvalidRequestBody},
}

// statusFromError returns the response status and message for err.
// Unknown errors are internal server errors.
func statusFromError(err error) (int, i18n.Key) {
	status := http.StatusInternalServerError
	for target, s := range errorStatusMap {
		if errors.Is(err, target) {
			status = s
			break
		}
	}

	if status == http.StatusInternalServerError {
		return status, i18n.MsgInternalServerError
	}

	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return status, m.key
		}
	}

	return status, i18n.MsgInternalServerError
}
