package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intdb "travel/internal/db"
	"travel/internal/domain"
)

// Store owns the connection handle and hands out repositories bound to it or to a transaction.
type Store struct {
	DB      *sql.DB
	Dialect intdb.Dialect
}

// Repos groups the repositories sharing one Querier.
type Repos struct {
	Hotels      HotelRepository
	Activities  ActivityRepository
	Transfers   TransferRepository
	Itineraries ItineraryRepository
}

func NewStore(conn *sql.DB, d intdb.Dialect) *Store {
	return &Store{DB: conn, Dialect: d}
}

// CreateSchemaIfAbsent creates missing tables; safe to call on every start.
func (s *Store) CreateSchemaIfAbsent(ctx context.Context) error {
	return intdb.CreateSchemaIfAbsent(ctx, s.DB, s.Dialect)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// MissingTables lists the owned tables that do not exist in the connected schema.
func (s *Store) MissingTables(ctx context.Context) []string {
	missing := []string{}
	for _, table := range intdb.Tables {
		if !intdb.HasTable(ctx, s.DB, s.Dialect, table) {
			missing = append(missing, table)
		}
	}
	return missing
}

// Repos returns repositories that run each statement on the pool.
func (s *Store) Repos() Repos {
	return reposFor(s.DB, s.Dialect)
}

// InTx runs fn inside a single transaction. Any error from fn rolls everything back.
func (s *Store) InTx(ctx context.Context, fn func(Repos) error) (retErr error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()
	if err := fn(reposFor(tx, s.Dialect)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func reposFor(q intdb.Querier, d intdb.Dialect) Repos {
	return Repos{
		Hotels:      HotelRepository{DB: q, Dialect: d},
		Activities:  ActivityRepository{DB: q, Dialect: d},
		Transfers:   TransferRepository{DB: q, Dialect: d},
		Itineraries: ItineraryRepository{DB: q, Dialect: d},
	}
}

// idFilter turns a membership filter into a WHERE fragment on column.
// A non-nil empty set matches nothing.
func idFilter(column string, ids []domain.ID) (string, []any) {
	if ids == nil {
		return "", nil
	}
	if len(ids) == 0 {
		return "1=0", nil
	}
	args := make([]any, 0, len(ids))
	for _, id := range ids {
		args = append(args, int64(id))
	}
	return column + " IN (" + intdb.Placeholders(len(ids)) + ")", args
}

func joinWhere(parts []string) string {
	kept := parts[:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	if len(kept) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(kept, " AND ")
}
