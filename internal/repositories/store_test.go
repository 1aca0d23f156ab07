package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/domain/models"

	_ "modernc.org/sqlite"
)

func newSQLiteStore(t *testing.T) *Store {
	t.Helper()
	conn, err := sql.Open(intdb.DriverSQLite, filepath.Join(t.TempDir(), "travel.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	d, err := intdb.DialectFor(intdb.DriverSQLite)
	require.NoError(t, err)
	s := NewStore(conn, d)
	require.NoError(t, s.CreateSchemaIfAbsent(context.Background()))
	return s
}

func newMockStore(t *testing.T, driver string) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	d, err := intdb.DialectFor(driver)
	require.NoError(t, err)
	return NewStore(conn, d), mock
}

func TestInTxCommitsOnSuccess(t *testing.T) {
	s, mock := newMockStore(t, intdb.DriverMySQL)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO hotels").WithArgs("Goa Beach Resort", "Goa").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := s.InTx(context.Background(), func(r Repos) error {
		_, err := r.Hotels.Insert(context.Background(), models.Hotel{Name: "Goa Beach Resort", Location: "Goa"})
		return err
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTxRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t, intdb.DriverMySQL)
	boom := errors.New("boom")
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := s.InTx(context.Background(), func(Repos) error { return boom })
	assert.ErrorIs(t, err, boom)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInTxReportsBeginFailure(t *testing.T) {
	s, mock := newMockStore(t, intdb.DriverMySQL)
	mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

	called := false
	err := s.InTx(context.Background(), func(Repos) error { called = true; return nil })
	assert.ErrorIs(t, err, sql.ErrConnDone)
	assert.False(t, called)
}

func TestIDFilter(t *testing.T) {
	cond, args := idFilter("id", nil)
	assert.Empty(t, cond)
	assert.Nil(t, args)

	cond, args = idFilter("id", []domain.ID{})
	assert.Equal(t, "1=0", cond)
	assert.Empty(t, args)

	cond, args = idFilter("a.id", []domain.ID{3, 1})
	assert.Equal(t, "a.id IN (?,?)", cond)
	assert.Equal(t, []any{int64(3), int64(1)}, args)
}

func TestJoinWhereSkipsBlankParts(t *testing.T) {
	assert.Equal(t, "", joinWhere([]string{"", " "}))
	assert.Equal(t, " WHERE a = ? AND b = ?", joinWhere([]string{"a = ?", "", "b = ?"}))
}

func TestMissingTables(t *testing.T) {
	ctx := context.Background()
	s := newSQLiteStore(t)
	assert.Empty(t, s.MissingTables(ctx))

	_, err := s.DB.ExecContext(ctx, `DROP TABLE itinerary_transfer`)
	require.NoError(t, err)
	assert.Equal(t, []string{"itinerary_transfer"}, s.MissingTables(ctx))
}
