// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/labrat-client/internal/config"
	"github.com/MKhiriev/labrat-client/internal/crypto"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/migrations"
)

const (
	secretsTable = "secrets"
	cookiesName  = "cookies"
)

type sqliteSecrets struct {
	db     *sql.DB
	sealer crypto.Sealer
	now    func() time.Time

	logger *logger.Logger
}

// NewSQLiteSecrets opens (creating if needed) the sqlite database at
// cfg.DB.DSN, applies pending migrations, and returns a [Secrets] that seals
// values with secretKey.
func NewSQLiteSecrets(ctx context.Context, cfg config.ClientStorage, secretKey string, log *logger.Logger) (Secrets, error) {
	if secretKey == "" {
		return nil, ErrEmptySecretKey
	}
	sealer, err := crypto.NewSealer(secretKey)
	if err != nil {
		return nil, err
	}

	db, err := connectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = migrations.Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newSQLiteSecrets(db, sealer, log), nil
}

func newSQLiteSecrets(db *sql.DB, sealer crypto.Sealer, log *logger.Logger) *sqliteSecrets {
	return &sqliteSecrets{
		db:     db,
		sealer: sealer,
		now:    time.Now,
		logger: log,
	}
}

func connectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*sql.DB, error) {
	if dir := filepath.Dir(cfg.DSN); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			log.Err(err).Str("func", "connectSQLite").Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "connectSQLite").Msg("error opening database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// sqlite serialises writers; one connection avoids SQLITE_BUSY.
	conn.SetMaxOpenConns(1)

	if err = conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		log.Err(err).Str("func", "connectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "connectSQLite").Msg("connected to database successfully")

	return conn, nil
}

func (s *sqliteSecrets) Get(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("salt", "value").
		From(secretsTable).
		Where(sq.Eq{"name": cookiesName}).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var salt, blob []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&salt, &blob)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrSecretNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "sqliteSecrets.Get").Msg("failed to read stored cookies")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	plaintext, err := s.sealer.Open(salt, blob)
	if err != nil {
		log.Err(err).Str("func", "sqliteSecrets.Get").Msg("failed to unseal stored cookies")
		return "", err
	}

	return string(plaintext), nil
}

func (s *sqliteSecrets) Set(ctx context.Context, cookies string) error {
	log := logger.FromContext(ctx)

	salt, blob, err := s.sealer.Seal([]byte(cookies))
	if err != nil {
		return fmt.Errorf("seal cookies: %w", err)
	}

	query, args, err := sq.Insert(secretsTable).
		Columns("name", "salt", "value", "updated_at").
		Values(cookiesName, salt, blob, s.now().UTC()).
		Suffix("ON CONFLICT(name) DO UPDATE SET salt = excluded.salt, value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSecrets.Set").Msg("failed to store cookies")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSecrets) Clear(ctx context.Context) error {
	log := logger.FromContext(ctx)

	query, args, err := sq.Delete(secretsTable).
		Where(sq.Eq{"name": cookiesName}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "sqliteSecrets.Clear").Msg("failed to clear cookies")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteSecrets) Close() error {
	return s.db.Close()
}
