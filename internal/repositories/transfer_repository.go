package repositories

import (
	"context"
	"fmt"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/domain/models"
)

type TransferRepository struct {
	DB      intdb.Querier
	Dialect intdb.Dialect
}

// List returns transfers matching f in id order. Ids with no row are simply absent.
func (r TransferRepository) List(ctx context.Context, f domain.Filter) ([]models.Transfer, error) {
	cond, args := idFilter("id", f.IDs)
	if cond == "1=0" {
		return []models.Transfer{}, nil
	}
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(
		`SELECT id, from_location, to_location FROM transfers`+joinWhere([]string{cond})+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()

	out := []models.Transfer{}
	for rows.Next() {
		var t models.Transfer
		if err := rows.Scan(&t.ID, &t.FromLocation, &t.ToLocation); err != nil {
			return out, fmt.Errorf("scan transfer: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r TransferRepository) Insert(ctx context.Context, t models.Transfer) (domain.ID, error) {
	id, err := r.Dialect.InsertID(ctx, r.DB,
		`INSERT INTO transfers (from_location, to_location) VALUES (?, ?)`, t.FromLocation, t.ToLocation)
	if err != nil {
		return 0, fmt.Errorf("insert transfer: %w", err)
	}
	return id, nil
}
