package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"travel/internal/domain"
	"travel/internal/domain/models"
	"travel/internal/repositories"
	"travel/internal/utils"
)

// MaxNights is the largest night-count every supported store column can hold.
const MaxNights = math.MaxInt32

// ItineraryService assembles new itineraries and serves read projections.
type ItineraryService struct {
	Store  *repositories.Store
	Logger *slog.Logger
}

// Create resolves the references in in, persists the itinerary with its association rows
// in one transaction, and returns the projection. A missing hotel aborts before any write;
// unknown activity or transfer ids are dropped.
func (s ItineraryService) Create(ctx context.Context, in models.ItineraryCreate) (models.ItineraryView, error) {
	if in.Name == "" {
		return models.ItineraryView{}, domain.ValidationError{Field: "name", Msg: "is required"}
	}
	if in.Nights < 0 || in.Nights > MaxNights {
		return models.ItineraryView{}, domain.ValidationError{Field: "nights", Msg: fmt.Sprintf("must be between 0 and %d", MaxNights)}
	}

	var g models.ItineraryGraph
	err := s.Store.InTx(ctx, func(r repositories.Repos) error {
		hotel, err := r.Hotels.GetByID(ctx, in.HotelID)
		if err != nil {
			return err
		}
		activities, err := r.Activities.List(ctx, domain.ByIDs(in.ActivityIDs))
		if err != nil {
			return err
		}
		transfers, err := r.Transfers.List(ctx, domain.ByIDs(in.TransferIDs))
		if err != nil {
			return err
		}

		it := models.Itinerary{Name: in.Name, Nights: in.Nights, HotelID: hotel.ID}
		it.ID, err = r.Itineraries.Insert(ctx, it)
		if err != nil {
			return err
		}
		for _, a := range activities {
			if err := r.Itineraries.InsertActivity(ctx, models.ItineraryActivity{ItineraryID: it.ID, ActivityID: a.ID}); err != nil {
				return err
			}
		}
		for _, t := range transfers {
			if err := r.Itineraries.InsertTransfer(ctx, models.ItineraryTransfer{ItineraryID: it.ID, TransferID: t.ID}); err != nil {
				return err
			}
		}

		g = models.ItineraryGraph{Itinerary: it, Hotel: hotel, Activities: activities, Transfers: transfers}
		return nil
	})
	if err != nil {
		if domain.IsNotFound(err) {
			return models.ItineraryView{}, domain.HotelNotFound(in.HotelID)
		}
		return models.ItineraryView{}, domain.InternalError{Msg: "failed to create itinerary", Err: err}
	}

	utils.LogEvent(ctx, s.Logger, "itinerary", "create", "itinerary created",
		slog.Int64("itinerary_id", int64(g.ID)),
		slog.Int64("hotel_id", int64(g.HotelID)),
		slog.Int("activities", len(g.Activities)),
		slog.Int("transfers", len(g.Transfers)),
	)
	return models.Project(g), nil
}

// ListAll returns every itinerary in insertion order.
func (s ItineraryService) ListAll(ctx context.Context) ([]models.ItineraryView, error) {
	return s.list(ctx, domain.Filter{})
}

// ListByNights returns itineraries whose night-count equals nights exactly.
func (s ItineraryService) ListByNights(ctx context.Context, nights int) ([]models.ItineraryView, error) {
	return s.list(ctx, domain.ByNights(nights))
}

func (s ItineraryService) list(ctx context.Context, f domain.Filter) ([]models.ItineraryView, error) {
	graphs, err := s.Store.Repos().Itineraries.ListGraphs(ctx, f)
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list itineraries", Err: err}
	}
	out := make([]models.ItineraryView, 0, len(graphs))
	for _, g := range graphs {
		out = append(out, models.Project(g))
	}
	return out, nil
}

// Graph loads one itinerary with its references resolved.
func (s ItineraryService) Graph(ctx context.Context, id domain.ID) (models.ItineraryGraph, error) {
	g, err := s.Store.Repos().Itineraries.GetGraph(ctx, id)
	if err != nil {
		if domain.IsNotFound(err) {
			return models.ItineraryGraph{}, err
		}
		return models.ItineraryGraph{}, domain.InternalError{Msg: "failed to load itinerary", Err: err}
	}
	return g, nil
}

func (s ItineraryService) Get(ctx context.Context, id domain.ID) (models.ItineraryView, error) {
	g, err := s.Graph(ctx, id)
	if err != nil {
		return models.ItineraryView{}, err
	}
	return models.Project(g), nil
}
