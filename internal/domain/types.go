package domain

// ID is the store-assigned identifier shared by every entity.
type ID int64

// Filter narrows a list query. Zero value matches everything.
type Filter struct {
	// Nights restricts itineraries to an exact night-count when set.
	Nights *int
	// IDs restricts rows to a membership set; a non-nil empty slice matches nothing.
	IDs []ID
}

// ByNights builds a night-count filter.
func ByNights(n int) Filter {
	return Filter{Nights: &n}
}

// ByIDs builds a membership filter.
func ByIDs(ids []ID) Filter {
	if ids == nil {
		ids = []ID{}
	}
	return Filter{IDs: ids}
}
