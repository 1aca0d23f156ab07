package services

import (
	"context"
	"log/slog"

	"travel/internal/domain"
	"travel/internal/domain/models"
	"travel/internal/repositories"
	"travel/internal/utils"
)

// Baseline reference data written on first start.
var (
	SeedHotels = []models.Hotel{
		{Name: "Goa Beach Resort", Location: "Goa"},
		{Name: "Manali Mountain Retreat", Location: "Manali"},
	}
	SeedActivities = []models.Activity{
		{Name: "Scuba Diving", Location: "Goa"},
		{Name: "Paragliding", Location: "Manali"},
	}
	SeedTransfers = []models.Transfer{
		{FromLocation: "Goa", ToLocation: "Manali"},
		{FromLocation: "Manali", ToLocation: "Goa"},
	}
)

// SeedService writes the baseline catalog once per store.
type SeedService struct {
	Store  *repositories.Store
	Logger *slog.Logger
}

// SeedIfEmpty inserts the baseline hotels, activities and transfers in one transaction
// when no hotel exists yet. It reports whether anything was written.
func (s SeedService) SeedIfEmpty(ctx context.Context) (bool, error) {
	seeded := false
	err := s.Store.InTx(ctx, func(r repositories.Repos) error {
		exists, err := r.Hotels.Any(ctx)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		for _, h := range SeedHotels {
			if _, err := r.Hotels.Insert(ctx, h); err != nil {
				return err
			}
		}
		for _, a := range SeedActivities {
			if _, err := r.Activities.Insert(ctx, a); err != nil {
				return err
			}
		}
		for _, t := range SeedTransfers {
			if _, err := r.Transfers.Insert(ctx, t); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, domain.InternalError{Msg: "seed baseline data", Err: err}
	}

	if seeded {
		utils.LogEvent(ctx, s.Logger, "seed", "seed_baseline", "baseline data inserted",
			slog.Int("hotels", len(SeedHotels)),
			slog.Int("activities", len(SeedActivities)),
			slog.Int("transfers", len(SeedTransfers)),
		)
	} else {
		utils.LogEvent(ctx, s.Logger, "seed", "seed_baseline", "hotels present, seeding skipped")
	}
	return seeded, nil
}
