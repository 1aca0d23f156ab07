package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	intdb "travel/internal/db"
	"travel/internal/repositories"

	_ "modernc.org/sqlite"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSQLiteStore(t *testing.T) *repositories.Store {
	t.Helper()
	conn, err := sql.Open(intdb.DriverSQLite, filepath.Join(t.TempDir(), "travel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	d, err := intdb.DialectFor(intdb.DriverSQLite)
	require.NoError(t, err)
	s := repositories.NewStore(conn, d)
	require.NoError(t, s.CreateSchemaIfAbsent(context.Background()))
	return s
}

func newSeededStore(t *testing.T) *repositories.Store {
	t.Helper()
	s := newSQLiteStore(t)
	_, err := SeedService{Store: s, Logger: discardLogger()}.SeedIfEmpty(context.Background())
	require.NoError(t, err)
	return s
}

func newMockStore(t *testing.T) (*repositories.Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	d, err := intdb.DialectFor(intdb.DriverMySQL)
	require.NoError(t, err)
	return repositories.NewStore(conn, d), mock
}
