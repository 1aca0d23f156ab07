package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectFlattensReferences(t *testing.T) {
	g := ItineraryGraph{
		Itinerary:  Itinerary{ID: 1, Name: "Goa Trip", Nights: 5, HotelID: 1},
		Hotel:      Hotel{ID: 1, Name: "Goa Beach Resort", Location: "Goa"},
		Activities: []Activity{{ID: 1, Name: "Scuba Diving", Location: "Goa"}},
		Transfers:  []Transfer{{ID: 1, FromLocation: "Goa", ToLocation: "Manali"}},
	}

	v := Project(g)

	assert.Equal(t, ItineraryView{
		ID:         1,
		Name:       "Goa Trip",
		Nights:     5,
		Hotel:      "Goa Beach Resort",
		Activities: []string{"Scuba Diving"},
		Transfers:  []string{"Goa -> Manali"},
	}, v)
}

func TestProjectEmptyListsEncodeAsArrays(t *testing.T) {
	v := Project(ItineraryGraph{Itinerary: Itinerary{ID: 3, Name: "Solo"}, Hotel: Hotel{Name: "H"}})

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":3,"name":"Solo","nights":0,"hotel":"H","activities":[],"transfers":[]}`, string(raw))
}

func TestTransferLabel(t *testing.T) {
	assert.Equal(t, "Manali -> Goa", Transfer{FromLocation: "Manali", ToLocation: "Goa"}.Label())
}
