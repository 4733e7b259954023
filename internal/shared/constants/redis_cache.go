package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the VenueScout application
// Pattern: venuescout:{module}:{operation}:{identifier}:{params?}

// ================== CACHE TTL DURATIONS ==================

// Static Data (Long TTL: rarely changes)
const (
	TTL_STATIC_LONG   = 24 * time.Hour // 24 hours - for very stable data
	TTL_STATIC_MEDIUM = 12 * time.Hour // 12 hours - for amenity/event-type universes
	TTL_STATIC_SHORT  = 6 * time.Hour  // 6 hours - for staff profiles
)

// Semi-Static Data (Medium TTL: changes occasionally)
const (
	TTL_SEMI_STATIC_LONG   = 4 * time.Hour    // 4 hours - for venue details
	TTL_SEMI_STATIC_MEDIUM = 1 * time.Hour    // 1 hour - for the assembled venue catalog
	TTL_SEMI_STATIC_SHORT  = 15 * time.Minute // 15 minutes - for venue listings
)

// Dynamic Data (Short TTL: changes frequently)
const (
	TTL_DYNAMIC_MEDIUM = 10 * time.Minute // 10 minutes - for inbox summaries
	TTL_DYNAMIC_SHORT  = 5 * time.Minute  // 5 minutes - for availability blocks
	TTL_DYNAMIC_QUICK  = 2 * time.Minute  // 2 minutes - for shortlist resolution
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX = "venuescout"
)

// ================== VENUES MODULE ==================

const (
	// Assembled search aggregates (base + confidence + amenities + event types)
	CACHE_KEY_VENUE_CATALOG = CACHE_PREFIX + ":venues:catalog" // + :limit:X

	// Venue listings and details
	CACHE_KEY_VENUES_LIST  = CACHE_PREFIX + ":venues:list"        // + :page:X:limit:Y
	CACHE_KEY_VENUE_DETAIL = CACHE_PREFIX + ":venues:detail:uuid:" // + venue-id
)

// ================== AVAILABILITY MODULE ==================

const (
	CACHE_KEY_VENUE_BLOCKS = CACHE_PREFIX + ":availability:blocks:uuid:" // + venue-id
)

// ================== SHORTLISTS MODULE ==================

const (
	CACHE_KEY_SHORTLIST_TOKEN = CACHE_PREFIX + ":shortlists:token:" // + share-token
)

// BuildVenueCatalogKey builds the catalog cache key for a given fetch limit
func BuildVenueCatalogKey(limit int) string {
	return fmt.Sprintf("%s:limit:%d", CACHE_KEY_VENUE_CATALOG, limit)
}

// BuildVenueDetailKey builds the detail cache key for a venue
func BuildVenueDetailKey(venueID string) string {
	return CACHE_KEY_VENUE_DETAIL + venueID
}
