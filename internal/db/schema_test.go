package db

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openSQLite(t *testing.T) *sql.DB {
	t.Helper()
	conn, err := sql.Open(DriverSQLite, filepath.Join(t.TempDir(), "schema.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestCreateSchemaIfAbsentIsIdempotent(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)
	d, err := DialectFor(DriverSQLite)
	require.NoError(t, err)

	require.NoError(t, CreateSchemaIfAbsent(ctx, conn, d))
	_, err = conn.ExecContext(ctx, `INSERT INTO hotels (name, location) VALUES ('Goa Beach Resort', 'Goa')`)
	require.NoError(t, err)

	require.NoError(t, CreateSchemaIfAbsent(ctx, conn, d))

	var count int
	require.NoError(t, conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM hotels`).Scan(&count))
	assert.Equal(t, 1, count, "second run must not touch existing rows")

	for _, table := range Tables {
		assert.True(t, HasTable(ctx, conn, d, table), table)
	}
	assert.False(t, HasTable(ctx, conn, d, "bookings"))
}

func TestAssociationPairsAreUnique(t *testing.T) {
	ctx := context.Background()
	conn := openSQLite(t)
	d, _ := DialectFor(DriverSQLite)
	require.NoError(t, CreateSchemaIfAbsent(ctx, conn, d))

	_, err := conn.ExecContext(ctx, `INSERT INTO itinerary_activity (itinerary_id, activity_id) VALUES (1, 1)`)
	require.NoError(t, err)
	_, err = conn.ExecContext(ctx, `INSERT INTO itinerary_activity (itinerary_id, activity_id) VALUES (1, 1)`)
	assert.Error(t, err)
}

func TestCreateSchemaStopsOnFirstError(t *testing.T) {
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	d, _ := DialectFor(DriverMySQL)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS hotels").WillReturnError(sql.ErrConnDone)

	err = CreateSchemaIfAbsent(context.Background(), conn, d)
	require.Error(t, err)
	assert.ErrorIs(t, err, sql.ErrConnDone)
	require.NoError(t, mock.ExpectationsWereMet())
}
