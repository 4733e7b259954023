package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fptr(f float64) *float64 { return &f }

func baseVenue() *Venue {
	return &Venue{
		ID:          "v1",
		Name:        "Garden Terrace",
		Area:        "Makati",
		Address:     "123 Ayala Ave",
		PaxMin:      50,
		PaxMax:      200,
		PriceFrom:   fptr(45000),
		PriceTo:     fptr(120000),
		Rating:      4.6,
		ReviewCount: 132,
		Confidence:  ConfidenceVerified,
		EventTypes:  []string{"wedding", "corporate"},
		Amenities:   []string{"Parking", "Catering", "WiFi"},
	}
}

func TestMatchesEmptyCriteria(t *testing.T) {
	assert.True(t, Matches(baseVenue(), Criteria{}, nil))
}

func TestMatchesLocationText(t *testing.T) {
	v := baseVenue()

	assert.True(t, Matches(v, Criteria{LocationText: "makati"}, nil))
	assert.True(t, Matches(v, Criteria{LocationText: "ayala"}, nil))
	assert.True(t, Matches(v, Criteria{LocationText: "Garden"}, nil))
	assert.False(t, Matches(v, Criteria{LocationText: "tagaytay"}, nil))
}

func TestMatchesEventType(t *testing.T) {
	v := baseVenue()

	assert.True(t, Matches(v, Criteria{EventType: "wedding"}, nil))
	assert.False(t, Matches(v, Criteria{EventType: "concert"}, nil))
}

func TestMatchesPaxRange(t *testing.T) {
	v := baseVenue()

	assert.True(t, Matches(v, Criteria{Pax: 50}, nil))
	assert.True(t, Matches(v, Criteria{Pax: 200}, nil))
	assert.False(t, Matches(v, Criteria{Pax: 49}, nil))
	assert.False(t, Matches(v, Criteria{Pax: 201}, nil))
}

func TestMatchesBudgetFloorExcludesLowCeiling(t *testing.T) {
	// priceTo 120000 below the requested floor 150000
	v := baseVenue()
	assert.False(t, Matches(v, Criteria{BudgetMin: 150000}, nil))
}

func TestMatchesBudgetAbsenceTolerant(t *testing.T) {
	// No stated ceiling: a budget floor alone never excludes
	v := baseVenue()
	v.PriceTo = nil
	assert.True(t, Matches(v, Criteria{BudgetMin: 150000}, nil))

	// No stated floor: a budget ceiling alone never excludes
	v2 := baseVenue()
	v2.PriceFrom = nil
	assert.True(t, Matches(v2, Criteria{BudgetMax: 10000}, nil))
}

func TestMatchesBudgetCeilingExcludesHighFloor(t *testing.T) {
	v := baseVenue()
	assert.False(t, Matches(v, Criteria{BudgetMax: 40000}, nil))
	assert.True(t, Matches(v, Criteria{BudgetMax: 50000}, nil))
}

func TestMatchesRatingAndReviewFloors(t *testing.T) {
	v := baseVenue()

	assert.True(t, Matches(v, Criteria{RatingMin: 4, ReviewsMin: 100}, nil))
	assert.False(t, Matches(v, Criteria{RatingMin: 4.7}, nil))
	assert.False(t, Matches(v, Criteria{ReviewsMin: 200}, nil))
}

func TestMatchesAmenitiesSetContainment(t *testing.T) {
	v := baseVenue()

	assert.True(t, Matches(v, Criteria{Amenities: []string{"Parking"}}, nil))
	assert.True(t, Matches(v, Criteria{Amenities: []string{"Parking", "WiFi"}}, nil))
	assert.False(t, Matches(v, Criteria{Amenities: []string{"Parking", "Pool"}}, nil))
}

func TestMatchesDistanceCapFailsClosed(t *testing.T) {
	// Venue passes every other filter but has no coordinates, so a distance
	// cap with a known user location must exclude it.
	v := baseVenue()
	v.Coordinates = nil
	v.DistKm = nil
	loc := &LatLng{Lat: 14.55, Lng: 121.02}

	c := Criteria{RatingMin: 4, Amenities: []string{"Parking"}}
	assert.True(t, Matches(v, c, loc))

	c.MaxKm = 10
	assert.False(t, Matches(v, c, loc))
}

func TestMatchesDistanceCap(t *testing.T) {
	v := baseVenue()
	v.DistKm = fptr(12)
	loc := &LatLng{Lat: 14.55, Lng: 121.02}

	assert.False(t, Matches(v, Criteria{MaxKm: 10}, loc))
	assert.True(t, Matches(v, Criteria{MaxKm: 15}, loc))

	// Without a user location the cap does not apply at all
	assert.True(t, Matches(v, Criteria{MaxKm: 10}, nil))
}
