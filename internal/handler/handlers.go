// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/handler/event"
	"github.com/MKhiriev/go-register/internal/handler/http"
	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/models"
)

type Handlers struct {
	Event *event.Handler
	HTTP  *http.Handler
}

// NewHandlers builds the event handler and, when an HTTP address is
// configured, the HTTP handler serving it.
func NewHandlers(services *service.Services, catalog *i18n.Catalog, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil || catalog == nil {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		Event: event.NewHandler(services, catalog, logger),
	}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(handlers.Event, cfg, buildInfo, logger)
	}

	return handlers, nil
}
