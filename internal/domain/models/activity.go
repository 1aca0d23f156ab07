package models

import "travel/internal/domain"

type Activity struct {
	ID       domain.ID `json:"id"`
	Name     string    `json:"name"`
	Location string    `json:"location"`
}
