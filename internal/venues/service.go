package venues

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"venuescout/internal/search"
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/constants"
	"venuescout/pkg/cache"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrInvalidConfidence  = errors.New("invalid confidence tier")
	ErrInvalidPriceRange  = errors.New("price_from must not exceed price_to")
	ErrInvalidPaxRange    = errors.New("pax_min must not exceed pax_max")
)

type Service interface {
	CreateVenue(ctx context.Context, req *CreateVenueRequest) (*VenueDetailResponse, error)
	GetVenue(ctx context.Context, id string) (*VenueDetailResponse, error)
	ListVenues(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error)
	UpdateVenue(ctx context.Context, id string, req *UpdateVenueRequest) (*VenueDetailResponse, error)
	DeleteVenue(ctx context.Context, id string) error
	SetConfidence(ctx context.Context, id string, confidence string) error

	// VenueAggregates assembles the ranking aggregates for the search engine.
	VenueAggregates(ctx context.Context, limit int) ([]*search.Venue, error)

	ListAmenities(ctx context.Context) ([]string, error)
	ListEventTypes(ctx context.Context) ([]string, error)
}

type service struct {
	repo  Repository
	cache cache.Service
	cfg   *config.Config
}

func NewService(repo Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:  repo,
		cache: cacheService,
		cfg:   cfg,
	}
}

func (s *service) CreateVenue(ctx context.Context, req *CreateVenueRequest) (*VenueDetailResponse, error) {
	if req.PriceFrom != nil && req.PriceTo != nil && *req.PriceFrom > *req.PriceTo {
		return nil, ErrInvalidPriceRange
	}
	if req.PaxMin > req.PaxMax {
		return nil, ErrInvalidPaxRange
	}

	now := time.Now().UTC()
	venue := &Venue{
		Name:             req.Name,
		Area:             req.Area,
		Address:          req.Address,
		Lat:              req.Lat,
		Lng:              req.Lng,
		PaxMin:           req.PaxMin,
		PaxMax:           req.PaxMax,
		PriceFrom:        req.PriceFrom,
		PriceTo:          req.PriceTo,
		Rating:           req.Rating,
		ReviewCount:      req.ReviewCount,
		ProfileUpdatedAt: &now,
	}

	if err := s.repo.Create(ctx, venue); err != nil {
		return nil, fmt.Errorf("failed to create venue: %w", err)
	}

	confidence := req.Confidence
	if confidence == "" {
		confidence = "unverified"
	}
	if !IsValidConfidence(confidence) {
		return nil, ErrInvalidConfidence
	}
	if err := s.repo.SetConfidence(ctx, venue.ID, confidence); err != nil {
		return nil, fmt.Errorf("failed to set confidence: %w", err)
	}

	if len(req.Amenities) > 0 {
		if err := s.repo.ReplaceAmenities(ctx, venue.ID, req.Amenities); err != nil {
			return nil, fmt.Errorf("failed to set amenities: %w", err)
		}
	}
	if len(req.EventTypes) > 0 {
		if err := s.repo.ReplaceEventTypes(ctx, venue.ID, req.EventTypes); err != nil {
			return nil, fmt.Errorf("failed to set event types: %w", err)
		}
	}

	s.invalidateCatalog(ctx, venue.ID.String())

	return s.buildDetail(ctx, venue)
}

func (s *service) GetVenue(ctx context.Context, id string) (*VenueDetailResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	var detail VenueDetailResponse
	cacheKey := constants.BuildVenueDetailKey(id)
	err = s.cache.GetOrSet(ctx, cacheKey, constants.TTL_SEMI_STATIC_LONG, func() (interface{}, error) {
		venue, err := s.repo.GetByID(ctx, venueID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrVenueNotFound
			}
			return nil, err
		}
		return s.buildDetail(ctx, venue)
	}, &detail)
	if err != nil {
		if errors.Is(err, ErrVenueNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	return &detail, nil
}

func (s *service) ListVenues(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error) {
	if filters.Page == 0 {
		filters.Page = 1
	}
	if filters.Limit == 0 {
		filters.Limit = 20
	}
	return s.repo.List(ctx, filters)
}

func (s *service) UpdateVenue(ctx context.Context, id string, req *UpdateVenueRequest) (*VenueDetailResponse, error) {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrVenueNotFound
	}

	if _, err := s.repo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVenueNotFound
		}
		return nil, err
	}

	updates := req.ToUpdates()
	if len(updates) > 0 {
		updates["profile_updated_at"] = time.Now().UTC()
		if err := s.repo.Update(ctx, venueID, updates); err != nil {
			return nil, fmt.Errorf("failed to update venue: %w", err)
		}
	}

	if req.Amenities != nil {
		if err := s.repo.ReplaceAmenities(ctx, venueID, req.Amenities); err != nil {
			return nil, fmt.Errorf("failed to update amenities: %w", err)
		}
	}
	if req.EventTypes != nil {
		if err := s.repo.ReplaceEventTypes(ctx, venueID, req.EventTypes); err != nil {
			return nil, fmt.Errorf("failed to update event types: %w", err)
		}
	}

	s.invalidateCatalog(ctx, id)

	venue, err := s.repo.GetByID(ctx, venueID)
	if err != nil {
		return nil, err
	}
	return s.buildDetail(ctx, venue)
}

func (s *service) DeleteVenue(ctx context.Context, id string) error {
	venueID, err := uuid.Parse(id)
	if err != nil {
		return ErrVenueNotFound
	}

	if _, err := s.repo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, venueID); err != nil {
		return fmt.Errorf("failed to delete venue: %w", err)
	}

	s.invalidateCatalog(ctx, id)
	return nil
}

func (s *service) SetConfidence(ctx context.Context, id string, confidence string) error {
	if !IsValidConfidence(confidence) {
		return ErrInvalidConfidence
	}

	venueID, err := uuid.Parse(id)
	if err != nil {
		return ErrVenueNotFound
	}

	if _, err := s.repo.GetByID(ctx, venueID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVenueNotFound
		}
		return err
	}

	if err := s.repo.SetConfidence(ctx, venueID, confidence); err != nil {
		return fmt.Errorf("failed to set confidence: %w", err)
	}

	s.invalidateCatalog(ctx, id)
	return nil
}

// VenueAggregates loads the full catalog and joins confidence, amenities and
// event types onto each venue, producing the immutable aggregates the
// ranking engine consumes. The assembled catalog is cached per fetch limit.
func (s *service) VenueAggregates(ctx context.Context, limit int) ([]*search.Venue, error) {
	var aggregates []*search.Venue
	cacheKey := constants.BuildVenueCatalogKey(limit)

	err := s.cache.GetOrSet(ctx, cacheKey, s.cfg.Redis.CatalogTTL, func() (interface{}, error) {
		return s.assembleAggregates(ctx, limit)
	}, &aggregates)
	if err != nil {
		return nil, err
	}

	return aggregates, nil
}

func (s *service) assembleAggregates(ctx context.Context, limit int) ([]*search.Venue, error) {
	base, err := s.repo.VenuesBase(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load venues: %w", err)
	}

	confidenceRows, err := s.repo.Confidence(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load confidence: %w", err)
	}
	amenityRows, err := s.repo.Amenities(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load amenities: %w", err)
	}
	eventTypeRows, err := s.repo.EventTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load event types: %w", err)
	}

	confidenceByVenue := make(map[uuid.UUID]string, len(confidenceRows))
	for _, row := range confidenceRows {
		confidenceByVenue[row.VenueID] = row.Confidence
	}
	amenitiesByVenue := make(map[uuid.UUID][]string)
	for _, row := range amenityRows {
		amenitiesByVenue[row.VenueID] = append(amenitiesByVenue[row.VenueID], row.Amenity)
	}
	eventTypesByVenue := make(map[uuid.UUID][]string)
	for _, row := range eventTypeRows {
		eventTypesByVenue[row.VenueID] = append(eventTypesByVenue[row.VenueID], row.EventType)
	}

	aggregates := make([]*search.Venue, 0, len(base))
	for _, v := range base {
		confidence := confidenceByVenue[v.ID]
		if confidence == "" {
			confidence = "unverified"
		}

		var coords *search.LatLng
		if v.Lat != nil && v.Lng != nil {
			coords = &search.LatLng{Lat: *v.Lat, Lng: *v.Lng}
		}

		aggregates = append(aggregates, &search.Venue{
			ID:                   v.ID.String(),
			Name:                 v.Name,
			Area:                 v.Area,
			Address:              v.Address,
			Coordinates:          coords,
			PaxMin:               v.PaxMin,
			PaxMax:               v.PaxMax,
			PriceFrom:            v.PriceFrom,
			PriceTo:              v.PriceTo,
			Rating:               v.Rating,
			ReviewCount:          v.ReviewCount,
			Confidence:           confidence,
			EventTypes:           eventTypesByVenue[v.ID],
			Amenities:            amenitiesByVenue[v.ID],
			AvailabilitySyncedAt: v.AvailabilitySyncedAt,
			ProfileUpdatedAt:     v.ProfileUpdatedAt,
		})
	}

	return aggregates, nil
}

func (s *service) ListAmenities(ctx context.Context) ([]string, error) {
	rows, err := s.repo.Amenities(ctx)
	if err != nil {
		return nil, err
	}
	return distinctSorted(rowsToStrings(len(rows), func(i int) string { return rows[i].Amenity })), nil
}

func (s *service) ListEventTypes(ctx context.Context) ([]string, error) {
	rows, err := s.repo.EventTypes(ctx)
	if err != nil {
		return nil, err
	}
	return distinctSorted(rowsToStrings(len(rows), func(i int) string { return rows[i].EventType })), nil
}

func (s *service) buildDetail(ctx context.Context, venue *Venue) (*VenueDetailResponse, error) {
	confidence, err := s.repo.ConfidenceForVenue(ctx, venue.ID)
	if err != nil {
		return nil, err
	}
	amenities, err := s.repo.AmenitiesForVenue(ctx, venue.ID)
	if err != nil {
		return nil, err
	}
	eventTypes, err := s.repo.EventTypesForVenue(ctx, venue.ID)
	if err != nil {
		return nil, err
	}

	return &VenueDetailResponse{
		Venue:      *venue,
		Confidence: confidence,
		Amenities:  amenities,
		EventTypes: eventTypes,
	}, nil
}

// invalidateCatalog drops every cached view affected by a catalog mutation.
func (s *service) invalidateCatalog(ctx context.Context, venueID string) {
	s.cache.DeletePattern(ctx, constants.CACHE_KEY_VENUE_CATALOG+"*")
	s.cache.Delete(ctx, constants.BuildVenueDetailKey(venueID))
}

func rowsToStrings(n int, get func(int) string) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = get(i)
	}
	return out
}

func distinctSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}
