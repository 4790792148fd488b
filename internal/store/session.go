// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-register/internal/logger"
)

type sqlSession struct {
	db      *sql.DB
	conn    *sql.Conn
	dialect dialect

	closeOnce sync.Once
	closeErr  error
}

// InTx implements [Session].
//
// Typical use:
//
//	err := session.InTx(ctx, func(ctx context.Context, repo store.UserRepository) error {
//	    _, err := repo.CreateUser(ctx, user)
//	    return err
//	})
func (s *sqlSession) InTx(ctx context.Context, fn func(ctx context.Context, repo UserRepository) error) (err error) {
	log := logger.FromContext(ctx)

	tx, err := s.conn.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*sqlSession.InTx").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}

		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "*sqlSession.InTx").Msg("error rolling back transaction")
			}
			return
		}

		if cErr := tx.Commit(); cErr != nil {
			log.Err(cErr).Str("func", "*sqlSession.InTx").Msg("error committing transaction")
			if s.dialect.isUniqueViolation(cErr) {
				err = ErrUserAlreadyExists
				return
			}
			err = fmt.Errorf("%w: %w", ErrCommitingTransaction, cErr)
		}
	}()

	return fn(ctx, newUserRepository(tx, s.dialect))
}

// Close implements [Session].
func (s *sqlSession) Close() error {
	s.closeOnce.Do(func() {
		s.closeErr = errors.Join(s.conn.Close(), s.db.Close())
	})

	return s.closeErr
}
