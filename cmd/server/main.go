// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/handler"
	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/server"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/internal/store"
	"github.com/MKhiriev/go-register/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-register-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("route", cfg.Server.RoutePath).
		Str("locale", cfg.App.Locale).
		Str("hasher", cfg.App.PasswordHasher).
		Msg("received configs")

	connector, err := store.NewConnector(cfg.Storage.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating store connector")
	}

	catalog, err := i18n.NewCatalog(cfg.App.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating message catalog")
	}

	services, err := service.NewServices(connector, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, catalog, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
