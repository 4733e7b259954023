package search

import "time"

// SortMode selects the explicit ordering applied to matched venues.
type SortMode string

const (
	SortBest      SortMode = "best"
	SortDistance  SortMode = "distance"
	SortRating    SortMode = "rating"
	SortPriceLow  SortMode = "price_low"
	SortPriceHigh SortMode = "price_high"
)

// IsValidSortMode reports whether the given string is a known sort mode.
func IsValidSortMode(mode string) bool {
	switch SortMode(mode) {
	case SortBest, SortDistance, SortRating, SortPriceLow, SortPriceHigh:
		return true
	default:
		return false
	}
}

// Confidence tiers reflect how much we trust a venue's profile and
// availability data.
const (
	ConfidenceVerified   = "verified"
	ConfidenceLikely     = "likely"
	ConfidenceUnverified = "unverified"
)

// LatLng is a coordinate pair in degrees.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Venue is the in-memory aggregate the matcher, scorer and ranking engine
// operate on. It is assembled from the catalog tables once per load and is
// never mutated by the ranking core except for the transient DistKm field.
type Venue struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Area        string   `json:"area"`
	Address     string   `json:"address"`
	Coordinates *LatLng  `json:"coordinates,omitempty"`
	PaxMin      int      `json:"pax_min"`
	PaxMax      int      `json:"pax_max"`
	PriceFrom   *float64 `json:"price_from,omitempty"`
	PriceTo     *float64 `json:"price_to,omitempty"`
	Rating      float64  `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Confidence  string   `json:"confidence"`
	EventTypes  []string `json:"event_types"`
	Amenities   []string `json:"amenities"`

	AvailabilitySyncedAt *time.Time `json:"availability_synced_at,omitempty"`
	ProfileUpdatedAt     *time.Time `json:"profile_updated_at,omitempty"`

	// DistKm is recomputed from the user location on every rank call.
	// Nil when the user location or the venue coordinates are unknown.
	DistKm *float64 `json:"dist_km,omitempty"`
}

// Criteria is the customer's current query state. Zero values mean "unset"
// throughout: an empty LocationText skips the text predicate, a zero Pax
// skips the capacity predicate, and so on. Dates are ISO calendar dates
// (YYYY-MM-DD) so lexicographic comparison is chronological.
type Criteria struct {
	LocationText string
	EventType    string
	Pax          int
	BudgetMin    float64
	BudgetMax    float64
	DateStart    string
	DateEnd      string
	RatingMin    float64
	ReviewsMin   int
	MaxKm        float64
	Amenities    []string
	Sort         SortMode
}

// HasDateRange reports whether both ends of the desired date range are set.
func (c Criteria) HasDateRange() bool {
	return c.DateStart != "" && c.DateEnd != ""
}
