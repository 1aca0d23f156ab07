package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/domain/models"
)

type HotelRepository struct {
	DB      intdb.Querier
	Dialect intdb.Dialect
}

// GetByID returns a NotFoundError wrapping sql.ErrNoRows when no hotel has this id.
func (r HotelRepository) GetByID(ctx context.Context, id domain.ID) (models.Hotel, error) {
	var h models.Hotel
	err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(
		`SELECT id, name, location FROM hotels WHERE id = ?`), int64(id)).
		Scan(&h.ID, &h.Name, &h.Location)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Hotel{}, domain.NotFoundError{Resource: "Hotel", ID: id, Err: err}
	}
	if err != nil {
		return models.Hotel{}, fmt.Errorf("get hotel %d: %w", id, err)
	}
	return h, nil
}

func (r HotelRepository) List(ctx context.Context, f domain.Filter) ([]models.Hotel, error) {
	cond, args := idFilter("id", f.IDs)
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(
		`SELECT id, name, location FROM hotels`+joinWhere([]string{cond})+` ORDER BY id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w", err)
	}
	defer rows.Close()

	out := []models.Hotel{}
	for rows.Next() {
		var h models.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Location); err != nil {
			return out, fmt.Errorf("scan hotel: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r HotelRepository) Insert(ctx context.Context, h models.Hotel) (domain.ID, error) {
	id, err := r.Dialect.InsertID(ctx, r.DB,
		`INSERT INTO hotels (name, location) VALUES (?, ?)`, h.Name, h.Location)
	if err != nil {
		return 0, fmt.Errorf("insert hotel: %w", err)
	}
	return id, nil
}

// Any reports whether at least one hotel row exists.
func (r HotelRepository) Any(ctx context.Context) (bool, error) {
	var id int64
	err := r.DB.QueryRowContext(ctx, `SELECT id FROM hotels LIMIT 1`).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("probe hotels: %w", err)
	}
	return true, nil
}
