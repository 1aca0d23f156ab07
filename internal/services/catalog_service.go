package services

import (
	"context"

	"travel/internal/domain"
	"travel/internal/domain/models"
	"travel/internal/repositories"
)

// CatalogService exposes the seeded reference data so clients can discover ids.
type CatalogService struct {
	Store *repositories.Store
}

func (s CatalogService) Hotels(ctx context.Context) ([]models.Hotel, error) {
	out, err := s.Store.Repos().Hotels.List(ctx, domain.Filter{})
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list hotels", Err: err}
	}
	return out, nil
}

func (s CatalogService) Activities(ctx context.Context) ([]models.Activity, error) {
	out, err := s.Store.Repos().Activities.List(ctx, domain.Filter{})
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list activities", Err: err}
	}
	return out, nil
}

func (s CatalogService) Transfers(ctx context.Context) ([]models.Transfer, error) {
	out, err := s.Store.Repos().Transfers.List(ctx, domain.Filter{})
	if err != nil {
		return nil, domain.InternalError{Msg: "failed to list transfers", Err: err}
	}
	return out, nil
}
