// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package secrets

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/labrat-client/internal/config"
	"github.com/MKhiriev/labrat-client/internal/crypto"
	"github.com/MKhiriev/labrat-client/internal/logger"
	"github.com/MKhiriev/labrat-client/internal/mock"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockedSecrets(t *testing.T) (*sqliteSecrets, sqlmock.Sqlmock, *mock.MockSealer) {
	t.Helper()

	db, sqlMock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	sealer := mock.NewMockSealer(gomock.NewController(t))
	s := newSQLiteSecrets(db, sealer, logger.Nop())
	s.now = func() time.Time { return fixedNow }

	return s, sqlMock, sealer
}

const (
	selectQuery = "SELECT salt, value FROM secrets WHERE name = ?"
	upsertQuery = "INSERT INTO secrets (name,salt,value,updated_at) VALUES (?,?,?,?) " +
		"ON CONFLICT(name) DO UPDATE SET salt = excluded.salt, value = excluded.value, updated_at = excluded.updated_at"
	deleteQuery = "DELETE FROM secrets WHERE name = ?"
)

func TestGet(t *testing.T) {
	s, sqlMock, sealer := newMockedSecrets(t)

	sqlMock.ExpectQuery(selectQuery).
		WithArgs("cookies").
		WillReturnRows(sqlmock.NewRows([]string{"salt", "value"}).AddRow([]byte("salt"), []byte("blob")))
	sealer.EXPECT().Open([]byte("salt"), []byte("blob")).Return([]byte("a=1"), nil)

	got, err := s.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "a=1", got)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGet_NotFound(t *testing.T) {
	s, sqlMock, _ := newMockedSecrets(t)

	sqlMock.ExpectQuery(selectQuery).
		WithArgs("cookies").
		WillReturnRows(sqlmock.NewRows([]string{"salt", "value"}))

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, ErrSecretNotFound)
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestGet_QueryError(t *testing.T) {
	s, sqlMock, _ := newMockedSecrets(t)

	sqlMock.ExpectQuery(selectQuery).WillReturnError(errors.New("database is locked"))

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestGet_WrongKey(t *testing.T) {
	s, sqlMock, sealer := newMockedSecrets(t)

	sqlMock.ExpectQuery(selectQuery).
		WillReturnRows(sqlmock.NewRows([]string{"salt", "value"}).AddRow([]byte("s"), []byte("b")))
	sealer.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, crypto.ErrDecrypt)

	_, err := s.Get(context.Background())

	assert.ErrorIs(t, err, crypto.ErrDecrypt)
}

func TestSet(t *testing.T) {
	s, sqlMock, sealer := newMockedSecrets(t)

	sealer.EXPECT().Seal([]byte("a=1; b=2")).Return([]byte("salt"), []byte("blob"), nil)
	sqlMock.ExpectExec(upsertQuery).
		WithArgs("cookies", []byte("salt"), []byte("blob"), fixedNow).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, s.Set(context.Background(), "a=1; b=2"))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestSet_ExecError(t *testing.T) {
	s, sqlMock, sealer := newMockedSecrets(t)

	sealer.EXPECT().Seal(gomock.Any()).Return([]byte("salt"), []byte("blob"), nil)
	sqlMock.ExpectExec(upsertQuery).WillReturnError(errors.New("readonly database"))

	err := s.Set(context.Background(), "a=1")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestClear(t *testing.T) {
	s, sqlMock, _ := newMockedSecrets(t)

	sqlMock.ExpectExec(deleteQuery).
		WithArgs("cookies").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Clear(context.Background()))
	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

func TestNewSQLiteSecrets_EmptyKey(t *testing.T) {
	_, err := NewSQLiteSecrets(context.Background(), config.ClientStorage{}, "", logger.Nop())
	assert.ErrorIs(t, err, ErrEmptySecretKey)
}

func TestNewSQLiteSecrets_RoundTrip(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "data", "labrat.db")
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: dsn}}
	ctx := context.Background()

	s, err := NewSQLiteSecrets(ctx, cfg, "passphrase", logger.Nop())
	require.NoError(t, err)

	_, err = s.Get(ctx)
	assert.ErrorIs(t, err, ErrSecretNotFound)

	require.NoError(t, s.Set(ctx, "a=1"))
	require.NoError(t, s.Set(ctx, "a=2"))
	require.NoError(t, s.Close())

	// Reopen: the value survives, and only the right passphrase opens it.
	s, err = NewSQLiteSecrets(ctx, cfg, "passphrase", logger.Nop())
	require.NoError(t, err)
	got, err := s.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "a=2", got)
	require.NoError(t, s.Close())

	wrong, err := NewSQLiteSecrets(ctx, cfg, "other", logger.Nop())
	require.NoError(t, err)
	defer wrong.Close()
	_, err = wrong.Get(ctx)
	assert.ErrorIs(t, err, crypto.ErrDecrypt)

	require.NoError(t, wrong.Clear(ctx))
	_, err = wrong.Get(ctx)
	assert.ErrorIs(t, err, ErrSecretNotFound)
}
