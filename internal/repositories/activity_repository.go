package repositories

import (
	"context"
	"fmt"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/domain/models"
)

type ActivityRepository struct {
	DB      intdb.Querier
	Dialect intdb.Dialect
}

// List returns activities matching f in id order. Ids with no row are simply absent.
func (r ActivityRepository) List(ctx context.Context, f domain.Filter) ([]models.Activity, error) {
	cond, args := idFilter("id", f.IDs)
	if cond == "1=0" {
		return []models.Activity{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(
		`SELECT id, name, location FROM activities`+joinWhere([]string{cond})+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	defer rows.Close()

	out := []models.Activity{}
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Name, &a.Location); err != nil {
			return out, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r ActivityRepository) Insert(ctx context.Context, a models.Activity) (domain.ID, error) {
	id, err := r.Dialect.InsertID(ctx, r.DB,
		`INSERT INTO activities (name, location) VALUES (?, ?)`, a.Name, a.Location)
	if err != nil {
		return 0, fmt.Errorf("insert activity: %w", err)
	}
	return id, nil
}
