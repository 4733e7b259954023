package search

import "strings"

// SearchRequest carries the query parameters of a venue search.
type SearchRequest struct {
	Location   string  `form:"location"`
	EventType  string  `form:"event_type"`
	Pax        int     `form:"pax" validate:"omitempty,min=1"`
	BudgetMin  float64 `form:"budget_min" validate:"omitempty,min=0"`
	BudgetMax  float64 `form:"budget_max" validate:"omitempty,min=0"`
	DateStart  string  `form:"date_start" validate:"omitempty,datetime=2006-01-02"`
	DateEnd    string  `form:"date_end" validate:"omitempty,datetime=2006-01-02"`
	RatingMin  float64 `form:"rating_min" validate:"omitempty,min=0,max=5"`
	ReviewsMin int     `form:"reviews_min" validate:"omitempty,min=0"`
	MaxKm      float64 `form:"max_km" validate:"omitempty,min=0"`
	Amenities  string  `form:"amenities"` // comma-separated
	Sort       string  `form:"sort" validate:"omitempty,oneof=best distance rating price_low price_high"`

	// Optional user location; both must be present or both absent
	Lat *float64 `form:"lat"`
	Lng *float64 `form:"lng"`
}

// ToCriteria converts the request into the engine's criteria value.
func (r *SearchRequest) ToCriteria() Criteria {
	var amenities []string
	for _, a := range strings.Split(r.Amenities, ",") {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			amenities = append(amenities, trimmed)
		}
	}

	return Criteria{
		LocationText: strings.TrimSpace(r.Location),
		EventType:    strings.TrimSpace(r.EventType),
		Pax:          r.Pax,
		BudgetMin:    r.BudgetMin,
		BudgetMax:    r.BudgetMax,
		DateStart:    r.DateStart,
		DateEnd:      r.DateEnd,
		RatingMin:    r.RatingMin,
		ReviewsMin:   r.ReviewsMin,
		MaxKm:        r.MaxKm,
		Amenities:    amenities,
		Sort:         SortMode(r.Sort),
	}
}

// UserLocation returns the request's coordinate pair, or nil when absent.
func (r *SearchRequest) UserLocation() *LatLng {
	if r.Lat == nil || r.Lng == nil {
		return nil
	}
	return &LatLng{Lat: *r.Lat, Lng: *r.Lng}
}
