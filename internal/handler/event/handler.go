// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package event

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/models"
	"github.com/goccy/go-json"
	"golang.org/x/text/language"
)

const (
	headerAcceptLanguage = "Accept-Language"
	headerContentType    = "Content-Type"

	headerAllowOrigin  = "Access-Control-Allow-Origin"
	headerAllowMethods = "Access-Control-Allow-Methods"
	headerAllowHeaders = "Access-Control-Allow-Headers"
	headerMaxAge       = "Access-Control-Max-Age"
)

type Handler struct {
	services *service.Services
	catalog  *i18n.Catalog

	logger *logger.Logger
}

func NewHandler(services *service.Services, catalog *i18n.Catalog, logger *logger.Logger) *Handler {
	logger.Info().Msg("event handler created")
	return &Handler{
		services: services,
		catalog:  catalog,
		logger:   logger,
	}
}

// Handle serves one registration request descriptor.
//
// OPTIONS is answered with the CORS preflight headers and no body. Any other
// method except POST gets 405 before the body is looked at. Method names are
// compared exactly. A POST body is decoded as a JSON object; an absent body
// counts as {}.
func (h *Handler) Handle(ctx context.Context, request models.Request) models.Response {
	log := logger.FromContext(ctx)
	tag := h.catalog.Match(request.Header(headerAcceptLanguage))

	switch method := methodOrPost(request.HTTPMethod); method {
	case http.MethodOptions:
		return preflightResponse()
	case http.MethodPost:
	default:
		log.Debug().Str("method", method).Msg("method not allowed")
		return h.errorResponse(tag, http.StatusMethodNotAllowed, i18n.MsgMethodNotAllowed)
	}

	registration, err := decodeRegistration(requestBody(request))
	if err != nil {
		log.Err(err).Msg("error decoding registration request body")
		return h.errorResponse(tag, http.StatusBadRequest, i18n.MsgInvalidRequestBody)
	}

	user, err := h.services.RegistrationService.Register(ctx, registration)
	if err != nil {
		status, key := statusFromError(err)
		if status >= http.StatusInternalServerError {
			log.Err(err).Msg("registration failed")
		}
		return h.errorResponse(tag, status, key)
	}

	body, err := json.Marshal(models.NewRegisteredUser(user))
	if err != nil {
		log.Err(err).Msg("error encoding registered user")
		return h.errorResponse(tag, http.StatusInternalServerError, i18n.MsgInternalServerError)
	}

	return jsonResponse(http.StatusCreated, string(body))
}

// RejectBody answers a request whose body could not be read at all.
func (h *Handler) RejectBody(request models.Request) models.Response {
	return h.errorResponse(h.catalog.Match(request.Header(headerAcceptLanguage)), http.StatusBadRequest, i18n.MsgInvalidRequestBody)
}

// methodOrPost defaults an omitted method to POST. Any other spelling is
// kept as sent; "post" or " OPTIONS" are not POST or OPTIONS.
func methodOrPost(method string) string {
	if method == "" {
		return http.MethodPost
	}
	return method
}

// Body keys are matched by exact case.
const (
	fieldUsername = "username"
	fieldEmail    = "email"
	fieldPassword = "password"
)

// decodeRegistration reads the registration fields from a JSON object. Keys
// are looked up exactly, so "USERNAME" does not count as "username". A
// present field that is not a string is a decode error.
func decodeRegistration(body []byte) (models.RegistrationRequest, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return models.RegistrationRequest{}, err
	}

	var (
		registration models.RegistrationRequest
		targets      = map[string]*string{
			fieldUsername: &registration.Username,
			fieldEmail:    &registration.Email,
			fieldPassword: &registration.Password,
		}
	)
	for key, target := range targets {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return models.RegistrationRequest{}, fmt.Errorf("field %q: %w", key, err)
		}
	}

	return registration, nil
}

func requestBody(request models.Request) []byte {
	if request.Body == nil || *request.Body == "" {
		return []byte("{}")
	}
	return []byte(*request.Body)
}

func preflightResponse() models.Response {
	return models.Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			headerAllowOrigin:  "*",
			headerAllowMethods: "POST, OPTIONS",
			headerAllowHeaders: "Content-Type",
			headerMaxAge:       "86400",
		},
		Body: "",
	}
}

func jsonResponse(status int, body string) models.Response {
	return models.Response{
		StatusCode: status,
		Headers: map[string]string{
			headerContentType: "application/json",
			headerAllowOrigin: "*",
		},
		Body: body,
	}
}

func (h *Handler) errorResponse(tag language.Tag, status int, key i18n.Key) models.Response {
	body, err := json.Marshal(models.ErrorResponse{Error: h.catalog.Message(tag, key)})
	if err != nil {
		h.logger.Err(err).Msg("error encoding error response")
		return jsonResponse(http.StatusInternalServerError, `{"error":"internal server error"}`)
	}

	return jsonResponse(status, string(body))
}
