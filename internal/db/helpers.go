package db

import (
	"context"
	"database/sql"
	"strings"
)

// Querier is satisfied by *sql.DB and *sql.Tx so repositories run inside or outside a unit of work.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Placeholders returns "?,?,?" for n bind parameters.
func Placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// HasTable reports whether table exists in the current schema. Errors count as absent.
func HasTable(ctx context.Context, q Querier, d Dialect, table string) bool {
	var name sql.NullString
	err := q.QueryRowContext(ctx, d.Rebind(d.tableLookup), table).Scan(&name)
	if err != nil {
		return false
	}
	return name.Valid && name.String != ""
}
