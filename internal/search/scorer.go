package search

import "math"

// Score computes a relevance score for a venue under the current criteria.
// Used when the sort mode is "best". The formula is additive and every term
// is independent, so the score is exactly reproducible for fixed inputs.
// The conflict flag reflects whether a conflicting availability block was
// found among the fetched blocks for this venue.
func Score(v *Venue, c Criteria, loc *LatLng, conflict bool) float64 {
	score := v.Rating * 20

	// Popularity, capped so very high review counts stop mattering
	score += math.Min(float64(v.ReviewCount), 300) * 0.05

	// Proximity decays linearly to zero past 35 km, never negative
	if loc != nil && v.DistKm != nil {
		score += math.Max(0, 35-*v.DistKm)
	}

	switch v.Confidence {
	case ConfidenceVerified:
		score += 20
	case ConfidenceLikely:
		score += 10
	}

	// Budget closeness: 1 point lost per 5000 units of distance between the
	// venue's price midpoint and the budget target, floored at 0.
	if c.BudgetMin > 0 || c.BudgetMax > 0 {
		var from, to float64
		if v.PriceFrom != nil {
			from = *v.PriceFrom
		}
		if v.PriceTo != nil {
			to = *v.PriceTo
		}
		mid := (from + to) / 2

		var target float64
		if c.BudgetMin > 0 && c.BudgetMax > 0 {
			target = (c.BudgetMin + c.BudgetMax) / 2
		} else if c.BudgetMax > 0 {
			target = c.BudgetMax
		} else {
			target = c.BudgetMin
		}

		if mid > 0 && target > 0 {
			score += math.Max(0, 20-math.Abs(mid-target)/5000)
		}
	}

	// Availability only counts when a date range is requested and the
	// venue's data is trusted enough to validate against.
	if c.HasDateRange() && v.Confidence != ConfidenceUnverified {
		if conflict {
			score -= 25
		} else {
			score += 18
		}
	}

	// Venues that survived an amenity filter are more relevantly engaged
	if len(c.Amenities) > 0 {
		score += 8
	}

	return score
}
