// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type httpRegistrationClient struct {
	client    *resty.Client
	routePath string

	logger *logger.Logger
}

// NewHTTPRegistrationClient builds a resty-backed [RegistrationClient].
// cfg.Adapter.HTTPAddress may omit the scheme, in which case http is assumed.
func NewHTTPRegistrationClient(cfg config.ClientConfig, logger *logger.Logger) (RegistrationClient, error) {
	baseURL, err := normalizeBaseURL(cfg.Adapter.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(cfg.Adapter.RequestTimeout).
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal)

	return &httpRegistrationClient{
		client:    client,
		routePath: cfg.RoutePath,
		logger:    logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if strings.HasPrefix(raw, ":") {
		raw = "localhost" + raw
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpRegistrationClient) Register(ctx context.Context, request models.RegistrationRequest) (models.RegisteredUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(h.routePath)
	if err != nil {
		return models.RegisteredUser{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Err(err).Msg("registration rejected")
		return models.RegisteredUser{}, err
	}

	var user models.RegisteredUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.RegisteredUser{}, fmt.Errorf("decode register response: %w", err)
	}

	return user, nil
}
