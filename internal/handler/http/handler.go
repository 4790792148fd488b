// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/handler/event"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
)

type Handler struct {
	event     *event.Handler
	cfg       config.Server
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func NewHandler(eventHandler *event.Handler, cfg config.Server, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		event:     eventHandler,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
