package models

import "travel/internal/domain"

// Itinerary is the stored row. Activities and transfers live in association tables.
type Itinerary struct {
	ID      domain.ID
	Name    string
	Nights  int
	HotelID domain.ID
}

// ItineraryActivity pairs an itinerary with one referenced activity (itinerary_activity).
type ItineraryActivity struct {
	ItineraryID domain.ID
	ActivityID  domain.ID
}

// ItineraryTransfer pairs an itinerary with one referenced transfer (itinerary_transfer).
type ItineraryTransfer struct {
	ItineraryID domain.ID
	TransferID  domain.ID
}

// ItineraryGraph is an itinerary with every reference resolved.
type ItineraryGraph struct {
	Itinerary
	Hotel      Hotel
	Activities []Activity
	Transfers  []Transfer
}

// ItineraryCreate is the validated input for assembling a new itinerary.
type ItineraryCreate struct {
	Name        string
	Nights      int
	HotelID     domain.ID
	ActivityIDs []domain.ID
	TransferIDs []domain.ID
}

// ItineraryView is the flattened projection returned to clients.
type ItineraryView struct {
	ID         domain.ID `json:"id"`
	Name       string    `json:"name"`
	Nights     int       `json:"nights"`
	Hotel      string    `json:"hotel"`
	Activities []string  `json:"activities"`
	Transfers  []string  `json:"transfers"`
}

// Project flattens a resolved graph. Lists are never nil so they encode as [].
func Project(g ItineraryGraph) ItineraryView {
	activities := make([]string, 0, len(g.Activities))
	for _, a := range g.Activities {
		activities = append(activities, a.Name)
	}
	transfers := make([]string, 0, len(g.Transfers))
	for _, t := range g.Transfers {
		transfers = append(transfers, t.Label())
	}
	return ItineraryView{
		ID:         g.ID,
		Name:       g.Name,
		Nights:     g.Nights,
		Hotel:      g.Hotel.Name,
		Activities: activities,
		Transfers:  transfers,
	}
}
