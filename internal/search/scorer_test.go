package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBaseQualityAndPopularity(t *testing.T) {
	v := &Venue{Rating: 4.6, ReviewCount: 132, Confidence: ConfidenceUnverified}

	// 4.6*20 + 132*0.05 = 92 + 6.6
	assert.InDelta(t, 98.6, Score(v, Criteria{}, nil, false), 1e-9)
}

func TestScorePopularityCap(t *testing.T) {
	low := &Venue{Rating: 4, ReviewCount: 300, Confidence: ConfidenceUnverified}
	high := &Venue{Rating: 4, ReviewCount: 5000, Confidence: ConfidenceUnverified}

	assert.Equal(t, Score(low, Criteria{}, nil, false), Score(high, Criteria{}, nil, false))
}

func TestScoreProximityDecay(t *testing.T) {
	loc := &LatLng{Lat: 14.55, Lng: 121.02}
	near := &Venue{Rating: 4, ReviewCount: 50, Confidence: ConfidenceVerified, DistKm: fptr(2)}
	far := &Venue{Rating: 4, ReviewCount: 50, Confidence: ConfidenceVerified, DistKm: fptr(40)}

	// Proximity term: 33 for 2 km, 0 past the 35 km cap
	assert.InDelta(t, 33, Score(near, Criteria{}, loc, false)-Score(far, Criteria{}, loc, false), 1e-9)
}

func TestScoreNoProximityWithoutLocation(t *testing.T) {
	v := &Venue{Rating: 4, Confidence: ConfidenceUnverified, DistKm: fptr(2)}
	assert.InDelta(t, 80, Score(v, Criteria{}, nil, false), 1e-9)
}

func TestScoreTrustTierBonus(t *testing.T) {
	verified := &Venue{Rating: 4, Confidence: ConfidenceVerified}
	likely := &Venue{Rating: 4, Confidence: ConfidenceLikely}
	unverified := &Venue{Rating: 4, Confidence: ConfidenceUnverified}

	assert.InDelta(t, 100, Score(verified, Criteria{}, nil, false), 1e-9)
	assert.InDelta(t, 90, Score(likely, Criteria{}, nil, false), 1e-9)
	assert.InDelta(t, 80, Score(unverified, Criteria{}, nil, false), 1e-9)
}

func TestScoreBudgetCloseness(t *testing.T) {
	v := &Venue{Rating: 4, Confidence: ConfidenceUnverified, PriceFrom: fptr(40000), PriceTo: fptr(60000)}

	// midpoint 50000, target (40000+60000)/2 = 50000, perfect closeness
	exact := Score(v, Criteria{BudgetMin: 40000, BudgetMax: 60000}, nil, false)
	assert.InDelta(t, 100, exact, 1e-9)

	// target 100000, |50000-100000|/5000 = 10 points lost
	offset := Score(v, Criteria{BudgetMax: 100000}, nil, false)
	assert.InDelta(t, 90, offset, 1e-9)

	// far beyond the decay floor contributes nothing
	far := Score(v, Criteria{BudgetMax: 500000}, nil, false)
	assert.InDelta(t, 80, far, 1e-9)
}

func TestScoreAvailabilityBonusAndPenalty(t *testing.T) {
	v := &Venue{Rating: 4, Confidence: ConfidenceVerified}
	c := Criteria{DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	clear := Score(v, c, nil, false)
	conflicted := Score(v, c, nil, true)

	assert.InDelta(t, 18, clear-Score(v, Criteria{}, nil, false), 1e-9)
	assert.InDelta(t, -25, conflicted-Score(v, Criteria{}, nil, false), 1e-9)
}

func TestScoreAvailabilitySkippedForUnverified(t *testing.T) {
	v := &Venue{Rating: 4, Confidence: ConfidenceUnverified}
	c := Criteria{DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	// Unverified venues get neither the bonus nor the penalty
	assert.Equal(t, Score(v, Criteria{}, nil, false), Score(v, c, nil, false))
	assert.Equal(t, Score(v, c, nil, false), Score(v, c, nil, true))
}

func TestScoreAmenityEngagement(t *testing.T) {
	v := &Venue{Rating: 4, Confidence: ConfidenceUnverified}

	with := Score(v, Criteria{Amenities: []string{"Parking"}}, nil, false)
	without := Score(v, Criteria{}, nil, false)
	assert.InDelta(t, 8, with-without, 1e-9)
}

func TestScoreDeterministic(t *testing.T) {
	v := &Venue{Rating: 4.3, ReviewCount: 87, Confidence: ConfidenceLikely,
		PriceFrom: fptr(30000), PriceTo: fptr(90000), DistKm: fptr(7.2)}
	loc := &LatLng{Lat: 14.55, Lng: 121.02}
	c := Criteria{BudgetMin: 20000, BudgetMax: 80000, DateStart: "2026-05-01", DateEnd: "2026-05-02",
		Amenities: []string{"Parking"}}

	assert.Equal(t, Score(v, c, loc, false), Score(v, c, loc, false))
}
