// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/handler"
	"github.com/MKhiriev/go-register/internal/i18n"
	"github.com/MKhiriev/go-register/internal/logger"
	"github.com/MKhiriev/go-register/internal/service"
	"github.com/MKhiriev/go-register/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	catalog, err := i18n.NewCatalog("ru")
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(&service.Services{}, catalog, cfg, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)
	return handlers
}

// ── NewServer ─────────────────────────────────────────────────────────────────

func TestNewServer_RequiresHTTPHandler(t *testing.T) {
	_, err := NewServer(nil, config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(newTestHandlers(t, config.Server{}), config.Server{}, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_UsesConfiguredAddress(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RoutePath: "/api/register"}

	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	s, ok := srv.(*server)
	require.True(t, ok)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.httpServer.server.ReadHeaderTimeout)
}

// ── run ───────────────────────────────────────────────────────────────────────

func TestRun_StopsOnContextCancel(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RoutePath: "/api/register"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.(*server).run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRun_ReturnsListenError(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:-1", RoutePath: "/api/register"}
	srv, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = srv.(*server).run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ListenAndServe")
}
