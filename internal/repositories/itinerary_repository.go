package repositories

import (
	"context"
	"fmt"

	intdb "travel/internal/db"
	"travel/internal/domain"
	"travel/internal/domain/models"
)

// ItineraryRepository reads and writes itineraries and their two association tables.
type ItineraryRepository struct {
	DB      intdb.Querier
	Dialect intdb.Dialect
}

func (r ItineraryRepository) Insert(ctx context.Context, it models.Itinerary) (domain.ID, error) {
	id, err := r.Dialect.InsertID(ctx, r.DB,
		`INSERT INTO itineraries (name, nights, hotel_id) VALUES (?, ?, ?)`,
		it.Name, it.Nights, int64(it.HotelID))
	if err != nil {
		return 0, fmt.Errorf("insert itinerary: %w", err)
	}
	return id, nil
}

func (r ItineraryRepository) InsertActivity(ctx context.Context, p models.ItineraryActivity) error {
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(
		`INSERT INTO itinerary_activity (itinerary_id, activity_id) VALUES (?, ?)`),
		int64(p.ItineraryID), int64(p.ActivityID))
	if err != nil {
		return fmt.Errorf("insert itinerary_activity %d/%d: %w", p.ItineraryID, p.ActivityID, err)
	}
	return nil
}

func (r ItineraryRepository) InsertTransfer(ctx context.Context, p models.ItineraryTransfer) error {
	_, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(
		`INSERT INTO itinerary_transfer (itinerary_id, transfer_id) VALUES (?, ?)`),
		int64(p.ItineraryID), int64(p.TransferID))
	if err != nil {
		return fmt.Errorf("insert itinerary_transfer %d/%d: %w", p.ItineraryID, p.TransferID, err)
	}
	return nil
}

// Count returns the number of itinerary rows.
func (r ItineraryRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM itineraries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count itineraries: %w", err)
	}
	return n, nil
}

func itineraryWhere(f domain.Filter) (string, []any) {
	cond, args := idFilter("i.id", f.IDs)
	parts := []string{cond}
	if f.Nights != nil {
		parts = append(parts, "i.nights = ?")
		args = append(args, *f.Nights)
	}
	return joinWhere(parts), args
}

// ListGraphs loads matching itineraries with hotel, activities and transfers resolved.
// It issues three queries regardless of how many itineraries match.
func (r ItineraryRepository) ListGraphs(ctx context.Context, f domain.Filter) ([]models.ItineraryGraph, error) {
	where, args := itineraryWhere(f)

	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(`
		SELECT i.id, i.name, i.nights, i.hotel_id, h.name, h.location
		FROM itineraries i
		JOIN hotels h ON h.id = i.hotel_id`+where+`
		ORDER BY i.id`), args...)
	if err != nil {
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	out := []models.ItineraryGraph{}
	index := map[domain.ID]int{}
	for rows.Next() {
		var g models.ItineraryGraph
		if err := rows.Scan(&g.ID, &g.Name, &g.Nights, &g.HotelID, &g.Hotel.Name, &g.Hotel.Location); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan itinerary: %w", err)
		}
		g.Hotel.ID = g.HotelID
		g.Activities = []models.Activity{}
		g.Transfers = []models.Transfer{}
		index[g.ID] = len(out)
		out = append(out, g)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("list itineraries: %w", err)
	}
	rows.Close()

	if len(out) == 0 {
		return out, nil
	}

	if err := r.attachActivities(ctx, where, args, out, index); err != nil {
		return nil, err
	}
	if err := r.attachTransfers(ctx, where, args, out, index); err != nil {
		return nil, err
	}
	return out, nil
}

func (r ItineraryRepository) attachActivities(ctx context.Context, where string, args []any, out []models.ItineraryGraph, index map[domain.ID]int) error {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(`
		SELECT ia.itinerary_id, a.id, a.name, a.location
		FROM itinerary_activity ia
		JOIN activities a ON a.id = ia.activity_id
		WHERE ia.itinerary_id IN (SELECT i.id FROM itineraries i`+where+`)
		ORDER BY ia.itinerary_id, a.id`), args...)
	if err != nil {
		return fmt.Errorf("load itinerary activities: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var owner domain.ID
		var a models.Activity
		if err := rows.Scan(&owner, &a.ID, &a.Name, &a.Location); err != nil {
			return fmt.Errorf("scan itinerary activity: %w", err)
		}
		if i, ok := index[owner]; ok {
			out[i].Activities = append(out[i].Activities, a)
		}
	}
	return rows.Err()
}

func (r ItineraryRepository) attachTransfers(ctx context.Context, where string, args []any, out []models.ItineraryGraph, index map[domain.ID]int) error {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(`
		SELECT it.itinerary_id, t.id, t.from_location, t.to_location
		FROM itinerary_transfer it
		JOIN transfers t ON t.id = it.transfer_id
		WHERE it.itinerary_id IN (SELECT i.id FROM itineraries i`+where+`)
		ORDER BY it.itinerary_id, t.id`), args...)
	if err != nil {
		return fmt.Errorf("load itinerary transfers: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var owner domain.ID
		var t models.Transfer
		if err := rows.Scan(&owner, &t.ID, &t.FromLocation, &t.ToLocation); err != nil {
			return fmt.Errorf("scan itinerary transfer: %w", err)
		}
		if i, ok := index[owner]; ok {
			out[i].Transfers = append(out[i].Transfers, t)
		}
	}
	return rows.Err()
}

// GetGraph loads one itinerary with its references resolved.
func (r ItineraryRepository) GetGraph(ctx context.Context, id domain.ID) (models.ItineraryGraph, error) {
	graphs, err := r.ListGraphs(ctx, domain.ByIDs([]domain.ID{id}))
	if err != nil {
		return models.ItineraryGraph{}, err
	}
	if len(graphs) == 0 {
		return models.ItineraryGraph{}, domain.ItineraryNotFound(id)
	}
	return graphs[0], nil
}
