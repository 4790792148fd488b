// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command client registers a user against a running registration server.
//
//	client -a localhost:8080 -u alice -e alice@example.com -p secret1
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-register/internal/adapter"
	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/models"
	"github.com/goccy/go-json"
)

var (
	username = flag.String("u", "", "Username")
	email    = flag.String("e", "", "Email")
	password = flag.String("p", "", "Password")
)

func main() {
	log := logger.NewCLILogger("go-register-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPRegistrationClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating registration client")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Adapter.RequestTimeout)
	request := models.RegistrationRequest{Username: *username, Email: *email, Password: *password}
	err = run(ctx, client, request, os.Stdout)
	cancel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run registers request through client and prints the created user.
func run(ctx context.Context, client adapter.RegistrationClient, request models.RegistrationRequest, out io.Writer) error {
	user, err := client.Register(ctx, request)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(user)
}
