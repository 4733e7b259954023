package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuescout/internal/shared/config"
	"venuescout/pkg/logger"
)

var ErrInvalidDateRange = errors.New("end date is before start date")

// VenueSource loads the full venue catalog as ranking aggregates.
type VenueSource interface {
	VenueAggregates(ctx context.Context, limit int) ([]*Venue, error)
}

type Service interface {
	Search(ctx context.Context, c Criteria, loc *LatLng) ([]*Venue, error)
}

type service struct {
	venues VenueSource
	engine *Engine
	cfg    config.SearchConfig
	log    *logger.Logger
}

func NewService(venues VenueSource, engine *Engine, cfg config.SearchConfig, log *logger.Logger) Service {
	return &service{
		venues: venues,
		engine: engine,
		cfg:    cfg,
		log:    log,
	}
}

// Search loads the catalog, ranks it under the given criteria and returns
// the ordered candidate list. Invalid criteria are rejected here, before the
// matcher or scorer ever see them. A catalog load failure aborts the whole
// search; a block-fetch failure inside the engine only degrades scoring.
func (s *service) Search(ctx context.Context, c Criteria, loc *LatLng) ([]*Venue, error) {
	if c.HasDateRange() && c.DateEnd < c.DateStart {
		return nil, ErrInvalidDateRange
	}
	if c.Sort == "" {
		c.Sort = SortBest
	}

	venues, err := s.venues.VenueAggregates(ctx, s.cfg.MaxVenuesFetch)
	if err != nil {
		return nil, fmt.Errorf("failed to load venue catalog: %w", err)
	}

	start := time.Now()
	ranked := s.engine.RankWithRefresh(ctx, venues, c, loc)

	if s.log != nil {
		s.log.LogSearchExecuted(ctx, len(ranked), len(venues), time.Since(start))
	}

	return ranked, nil
}
