// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags registered on flag.CommandLine.
// Binaries may register additional flags on flag.CommandLine before calling it.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-adapter-address registration server address used by the client
//	-d database DSN
//	-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-locale default message locale
//	-password-hasher password hasher (sha256, argon2id, bcrypt)
//	-password-hash-key HMAC key for the sha256 hasher
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-route registration route path
func ParseFlags(args []string) (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, args)
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var adapterAddress string
	var databaseDSN string
	var databaseDriver string
	var jsonConfigPath string
	var locale string
	var passwordHasher string
	var passwordHashKey string
	var requestTimeout time.Duration
	var routePath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&adapterAddress, "adapter-address", "", "Registration server address used by the client")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&locale, "locale", "", "Default message locale (e.g. ru, en)")
	fs.StringVar(&passwordHasher, "password-hasher", "", "Password hasher (sha256, argon2id, bcrypt)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&routePath, "route", "", "Registration route path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			Locale:          locale,
			PasswordHasher:  passwordHasher,
			PasswordHashKey: passwordHashKey,
		},
		Storage: Storage{
			DB: DB{
				DSN:    databaseDSN,
				Driver: databaseDriver,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			RoutePath:      routePath,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or a
// valid IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
