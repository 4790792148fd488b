// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command invoke runs one registration request descriptor through the event
// handler, the way a function runtime would, and prints the response
// descriptor as JSON.
//
//	echo '{"httpMethod":"POST","body":"{\"username\":\"a\",...}"}' | invoke -d "$DATABASE_URL"
//	invoke -event request.json
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/handler/event"
	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/internal/store"
	"github.com/MKhiriev/go-register/models"
	"github.com/goccy/go-json"
)

var eventPath = flag.String("event", "", "Request descriptor JSON file (default stdin)")

func main() {
	log := logger.NewCLILogger("go-register-invoke")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

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

	in, err := openEvent(*eventPath)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening request descriptor")
	}
	defer in.Close()

	ctx := log.WithContext(context.Background())
	if err = invoke(ctx, event.NewHandler(services, catalog, log), in, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("invocation failed")
	}
}

func openEvent(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// invoke decodes one request descriptor from in and writes the response
// descriptor to out.
func invoke(ctx context.Context, h *event.Handler, in io.Reader, out io.Writer) error {
	var request models.Request
	if err := json.NewDecoder(in).Decode(&request); err != nil {
		return fmt.Errorf("error decoding request descriptor: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(h.Handle(ctx, request)); err != nil {
		return fmt.Errorf("error encoding response descriptor: %w", err)
	}

	return nil
}
