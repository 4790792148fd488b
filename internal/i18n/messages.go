// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package i18n holds the client-facing message texts of the registration
// endpoint and picks their language from the request's Accept-Language
// header.
//
// All Msg* keys are looked up in a golang.org/x/text catalog. Russian is the
// reference language; English is the alternative.
package i18n

// Key identifies a client-facing message.
type Key string

const (
	// MsgAllFieldsRequired is returned when username, email or password is
	// missing or empty after trimming.
	MsgAllFieldsRequired Key = "all_fields_required"

	// MsgPasswordTooShort is returned when the password has fewer than six
	// characters.
	MsgPasswordTooShort Key = "password_too_short"

	// MsgPasswordTooLong is returned when the configured hasher cannot
	// accept a password of that length (bcrypt).
	MsgPasswordTooLong Key = "password_too_long"

	// MsgUserExists is returned when the username or the email is taken.
	MsgUserExists Key = "user_exists"

	// MsgInvalidRequestBody is returned when the body is not a JSON object
	// of string fields.
	MsgInvalidRequestBody Key = "invalid_request_body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError Key = "internal_server_error"

	// MsgMethodNotAllowed is identical in every language.
	MsgMethodNotAllowed Key = "method_not_allowed"
)

var translations = map[string]map[Key]string{
	"ru": {
		MsgAllFieldsRequired:   "Все поля обязательны",
		MsgPasswordTooShort:    "Пароль должен быть минимум 6 символов",
		MsgPasswordTooLong:     "Пароль должен быть не длиннее 72 байт",
		MsgUserExists:          "Пользователь с таким именем или email уже существует",
		MsgInvalidRequestBody:  "Некорректное тело запроса",
		MsgInternalServerError: "Внутренняя ошибка сервера",
		MsgMethodNotAllowed:    "Method not allowed",
	},
	"en": {
		MsgAllFieldsRequired:   "All fields are required",
		MsgPasswordTooShort:    "Password must be at least 6 characters",
		MsgPasswordTooLong:     "Password must be at most 72 bytes",
		MsgUserExists:          "A user with this username or email already exists",
		MsgInvalidRequestBody:  "Invalid request body",
		MsgInternalServerError: "Internal server error",
		MsgMethodNotAllowed:    "Method not allowed",
	},
}
