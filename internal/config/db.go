package config

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	intdb "travel/internal/db"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// sqliteParams are appended to sqlite DSNs that do not set them. BEGIN IMMEDIATE
// takes the write lock up front so concurrent writers queue on busy_timeout
// instead of failing a read-to-write lock upgrade with SQLITE_BUSY.
var sqliteParams = []struct{ key, value string }{
	{"_pragma=busy_timeout", "_pragma=busy_timeout(5000)"},
	{"_pragma=foreign_keys", "_pragma=foreign_keys(1)"},
	{"_txlock=", "_txlock=immediate"},
}

// OpenDB opens and pings the configured store. Callers own the returned handle.
func OpenDB(ctx context.Context, cfg DBConfig) (*sql.DB, intdb.Dialect, error) {
	d, err := intdb.DialectFor(cfg.Driver)
	if err != nil {
		return nil, intdb.Dialect{}, err
	}

	dsn := cfg.DSN
	if d.Driver == intdb.DriverSQLite {
		dsn, err = prepareSQLiteDSN(dsn)
		if err != nil {
			return nil, d, err
		}
	}

	conn, err := sql.Open(d.Driver, dsn)
	if err != nil {
		return nil, d, fmt.Errorf("open %s: %w", d.Driver, err)
	}

	conn.SetMaxOpenConns(cfg.MaxOpenConns)
	conn.SetMaxIdleConns(cfg.MaxIdleConns)
	conn.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	conn.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.PingTimeout)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		_ = conn.Close()
		return nil, d, fmt.Errorf("ping %s: %w", d.Driver, err)
	}
	return conn, d, nil
}

func prepareSQLiteDSN(dsn string) (string, error) {
	path := strings.TrimPrefix(dsn, "file:")
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if path != "" && path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("create db dir: %w", err)
		}
	}
	for _, p := range sqliteParams {
		if strings.Contains(dsn, p.key) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + p.value
	}
	return dsn, nil
}
