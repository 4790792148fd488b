// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-register/internal/config"
	"github.com/MKhiriev/go-register/internal/logger"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// sqlOpen is swapped in tests.
var sqlOpen = sql.Open

// sqlConnector opens exactly one physical connection per [Connector.Connect]
// call. Nothing is pooled between registration attempts.
type sqlConnector struct {
	dsn     string
	dialect dialect
}

// NewConnector returns a [Connector] for the configured driver and DSN.
// No connection is opened until Connect is called.
func NewConnector(cfg config.DB) (Connector, error) {
	d, ok := dialectFor(cfg.Driver)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}

	return &sqlConnector{
		dsn:     cfg.DSN,
		dialect: d,
	}, nil
}

// Connect implements [Connector]. It opens a handle limited to a single
// connection, pins that connection and pings it.
func (c *sqlConnector) Connect(ctx context.Context) (Session, error) {
	log := logger.FromContext(ctx)

	// establish connection
	db, err := sqlOpen(c.dialect.driver, c.dsn)
	if err != nil {
		log.Err(err).Str("func", "*sqlConnector.Connect").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	conn, err := db.Conn(ctx)
	if err != nil {
		log.Err(err).Str("func", "*sqlConnector.Connect").Msg("error acquiring database connection")
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	// the pinned connection is the only one the handle may ever hold;
	// releasing it closes it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(0)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "*sqlConnector.Connect").Msg("error connecting database (ping)")
		_ = conn.Close()
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}
	log.Debug().Str("func", "*sqlConnector.Connect").Str("driver", c.dialect.driver).Msg("connected to database successfully")

	return &sqlSession{
		db:      db,
		conn:    conn,
		dialect: c.dialect,
	}, nil
}
