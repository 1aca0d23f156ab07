package models

import (
	"fmt"

	"travel/internal/domain"
)

// Transfer is a one-way leg between two locations.
type Transfer struct {
	ID           domain.ID `json:"id"`
	FromLocation string    `json:"from_location"`
	ToLocation   string    `json:"to_location"`
}

// Label renders the transfer the way itinerary responses show it.
func (t Transfer) Label() string {
	return fmt.Sprintf("%s -> %s", t.FromLocation, t.ToLocation)
}
