package search

import (
	"context"
	"sort"
	"sync"

	"venuescout/internal/shared/config"
	"venuescout/pkg/logger"
)

// BlockSource fetches availability blocks overlapping a date range for a
// bounded set of venues. Implementations must apply the inclusive overlap
// rule server-side (block.start <= rangeEnd AND block.end >= rangeStart).
type BlockSource interface {
	BlocksForRange(ctx context.Context, venueIDs []string, startDate, endDate string) ([]Block, error)
}

// Engine orchestrates the matcher, scorer and explicit sort modes into the
// final ordered candidate list. Conflict data is fetched only for the
// visible window of results, which bounds the cost of conflict-checking per
// refresh cycle.
type Engine struct {
	blocks        BlockSource
	log           *logger.Logger
	visibleWindow int
	conflictTypes ConflictTypes

	mu       sync.Mutex
	seq      uint64
	blockMap map[string][]Block
}

// NewEngine creates a ranking engine.
func NewEngine(blocks BlockSource, cfg config.SearchConfig, log *logger.Logger) *Engine {
	return &Engine{
		blocks:        blocks,
		log:           log,
		visibleWindow: cfg.VisibleWindow,
		conflictTypes: NewConflictTypes(cfg.ConflictBlockTypes),
	}
}

// Rank filters venues through the matcher and orders the survivors by the
// requested sort mode. It recomputes each venue's transient distance before
// matching. Deterministic over its inputs: blocksByVenue is the only
// availability state consulted, and all sorts are stable.
func (e *Engine) Rank(venues []*Venue, c Criteria, loc *LatLng, blocksByVenue map[string][]Block) []*Venue {
	for _, v := range venues {
		v.DistKm = nil
		if loc != nil && v.Coordinates != nil {
			d := DistanceKm(*loc, *v.Coordinates)
			v.DistKm = &d
		}
	}

	matched := make([]*Venue, 0, len(venues))
	for _, v := range venues {
		if Matches(v, c, loc) {
			matched = append(matched, v)
		}
	}

	switch c.Sort {
	case SortDistance:
		sort.SliceStable(matched, func(i, j int) bool {
			return distOrInf(matched[i]) < distOrInf(matched[j])
		})
	case SortRating:
		sort.SliceStable(matched, func(i, j int) bool {
			if matched[i].Rating != matched[j].Rating {
				return matched[i].Rating > matched[j].Rating
			}
			return matched[i].ReviewCount > matched[j].ReviewCount
		})
	case SortPriceLow:
		sort.SliceStable(matched, func(i, j int) bool {
			return priceFromOrInf(matched[i]) < priceFromOrInf(matched[j])
		})
	case SortPriceHigh:
		sort.SliceStable(matched, func(i, j int) bool {
			return priceToOrZero(matched[i]) > priceToOrZero(matched[j])
		})
	default: // best
		scores := make(map[string]float64, len(matched))
		for _, v := range matched {
			conflict := HasConflict(blocksByVenue[v.ID], e.conflictTypes)
			scores[v.ID] = Score(v, c, loc, conflict)
		}
		sort.SliceStable(matched, func(i, j int) bool {
			return scores[matched[i].ID] > scores[matched[j].ID]
		})
	}

	return matched
}

// RankCached ranks against the engine's most recently fetched block data
// without issuing any network calls.
func (e *Engine) RankCached(venues []*Venue, c Criteria, loc *LatLng) []*Venue {
	return e.Rank(venues, c, loc, e.cachedBlocks())
}

// RankWithRefresh runs the two-stage pipeline: a coarse rank over stale
// conflict data determines the visible window, fresh blocks are fetched for
// just that subset, and the final rank uses the refreshed data. Without a
// date range the coarse result is already final.
func (e *Engine) RankWithRefresh(ctx context.Context, venues []*Venue, c Criteria, loc *LatLng) []*Venue {
	coarse := e.RankCached(venues, c, loc)

	if !c.HasDateRange() || e.blocks == nil {
		return coarse
	}

	window := coarse
	if len(window) > e.visibleWindow {
		window = window[:e.visibleWindow]
	}
	ids := make([]string, len(window))
	for i, v := range window {
		ids[i] = v.ID
	}

	e.RefreshBlocks(ctx, ids, c)

	return e.RankCached(venues, c, loc)
}

// RefreshBlocks replaces the engine's conflict data with fresh blocks for
// the given venues and the criteria's date range. Each refresh carries a
// monotonically increasing sequence number; a response that arrives after a
// newer refresh has been issued is discarded. A fetch failure degrades to an
// empty conflict set so ranking can proceed.
func (e *Engine) RefreshBlocks(ctx context.Context, venueIDs []string, c Criteria) {
	if !c.HasDateRange() {
		e.mu.Lock()
		e.blockMap = nil
		e.mu.Unlock()
		return
	}

	e.mu.Lock()
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	blocks, err := e.blocks.BlocksForRange(ctx, venueIDs, c.DateStart, c.DateEnd)

	e.mu.Lock()
	defer e.mu.Unlock()

	if seq != e.seq {
		// superseded by a newer refresh
		return
	}

	if err != nil {
		if e.log != nil {
			e.log.LogSearchDegraded(ctx, err.Error())
		}
		e.blockMap = map[string][]Block{}
		return
	}

	m := make(map[string][]Block, len(venueIDs))
	for _, b := range blocks {
		m[b.VenueID] = append(m[b.VenueID], b)
	}
	e.blockMap = m
}

func (e *Engine) cachedBlocks() map[string][]Block {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.blockMap
}

func distOrInf(v *Venue) float64 {
	if v.DistKm == nil {
		return 1e9
	}
	return *v.DistKm
}

func priceFromOrInf(v *Venue) float64 {
	if v.PriceFrom == nil {
		return 1e9
	}
	return *v.PriceFrom
}

func priceToOrZero(v *Venue) float64 {
	if v.PriceTo == nil {
		return 0
	}
	return *v.PriceTo
}
