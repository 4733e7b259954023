package search

import "strings"

// Matches decides whether a single venue satisfies the current criteria.
// All predicates are ANDed and any failure short-circuits the rest. Pure and
// side-effect-free; called once per venue per criteria change.
func Matches(v *Venue, c Criteria, loc *LatLng) bool {
	// Free-text location against area, name and address
	if c.LocationText != "" {
		haystack := strings.ToLower(v.Area + " " + v.Name + " " + v.Address)
		if !strings.Contains(haystack, strings.ToLower(c.LocationText)) {
			return false
		}
	}

	if c.EventType != "" && !containsString(v.EventTypes, c.EventType) {
		return false
	}

	if c.Pax > 0 {
		if c.Pax < v.PaxMin || c.Pax > v.PaxMax {
			return false
		}
	}

	// Budget bounds are absence-tolerant: a venue with no stated price
	// ceiling is never excluded by a budget floor, and vice versa.
	if c.BudgetMin > 0 && v.PriceTo != nil && *v.PriceTo < c.BudgetMin {
		return false
	}
	if c.BudgetMax > 0 && v.PriceFrom != nil && *v.PriceFrom > c.BudgetMax {
		return false
	}

	if v.Rating < c.RatingMin {
		return false
	}
	if v.ReviewCount < c.ReviewsMin {
		return false
	}

	// Set containment: every required amenity must be present
	for _, a := range c.Amenities {
		if !containsString(v.Amenities, a) {
			return false
		}
	}

	// Distance cap fails closed: a venue with no computed distance cannot
	// verify the constraint and is excluded.
	if loc != nil && c.MaxKm > 0 {
		if v.DistKm == nil {
			return false
		}
		if *v.DistKm > c.MaxKm {
			return false
		}
	}

	return true
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
