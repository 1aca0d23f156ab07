package models

import "travel/internal/domain"

// Hotel is seeded reference data; itineraries point at exactly one.
type Hotel struct {
	ID       domain.ID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}
