package db

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"travel/internal/domain"
)

// Driver names as registered with database/sql.
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "pgx"
)

// Dialect captures the few places where the supported SQL engines disagree.
type Dialect struct {
	Driver string

	numbered    bool
	returning   bool
	schema      []string
	tableLookup string
}

// DialectFor resolves the dialect for a database/sql driver name.
func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverSQLite, "sqlite3":
		return Dialect{
			Driver:      DriverSQLite,
			schema:      sqliteSchema,
			tableLookup: `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ? LIMIT 1`,
		}, nil
	case DriverMySQL:
		return Dialect{
			Driver: DriverMySQL,
			schema: mysqlSchema,
			tableLookup: `
				SELECT table_name
				FROM information_schema.tables
				WHERE table_schema = DATABASE()
				  AND table_name = ?
				LIMIT 1`,
		}, nil
	case DriverPostgres, "postgres", "postgresql":
		return Dialect{
			Driver:    DriverPostgres,
			numbered:  true,
			returning: true,
			schema:    postgresSchema,
			tableLookup: `
				SELECT table_name
				FROM information_schema.tables
				WHERE table_schema = current_schema()
				  AND table_name = ?
				LIMIT 1`,
		}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported db driver %q", driver)
	}
}

// Rebind rewrites ? placeholders to $n for engines that need numbered parameters.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// InsertID runs an INSERT and returns the id the store assigned to the new row.
func (d Dialect) InsertID(ctx context.Context, q Querier, query string, args ...any) (domain.ID, error) {
	if d.returning {
		var id int64
		if err := q.QueryRowContext(ctx, d.Rebind(query+" RETURNING id"), args...).Scan(&id); err != nil {
			return 0, err
		}
		return domain.ID(id), nil
	}
	res, err := q.ExecContext(ctx, d.Rebind(query), args...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return domain.ID(id), nil
}
