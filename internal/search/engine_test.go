package search

import (
	"context"
	"errors"
	"testing"

	"venuescout/internal/shared/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubBlockSource struct {
	blocks []Block
	err    error
	calls  int

	// onFetch, when set, runs inside BlocksForRange before returning
	onFetch func()
}

func (s *stubBlockSource) BlocksForRange(ctx context.Context, venueIDs []string, startDate, endDate string) ([]Block, error) {
	s.calls++
	if s.onFetch != nil {
		s.onFetch()
	}
	return s.blocks, s.err
}

func testSearchConfig() config.SearchConfig {
	return config.SearchConfig{
		VisibleWindow:      80,
		MaxVenuesFetch:     500,
		ConflictBlockTypes: []string{"confirmed", "unavailable", "maintenance", "hold"},
	}
}

func testVenues() []*Venue {
	return []*Venue{
		{
			ID: "near", Name: "Near Hall", Area: "Makati", Rating: 4.0, ReviewCount: 50,
			Confidence:  ConfidenceVerified,
			Coordinates: &LatLng{Lat: 14.5547, Lng: 121.0244},
		},
		{
			ID: "far", Name: "Far Hall", Area: "Tagaytay", Rating: 4.0, ReviewCount: 50,
			Confidence:  ConfidenceVerified,
			Coordinates: &LatLng{Lat: 14.1153, Lng: 120.9621},
		},
		{
			ID: "nocoords", Name: "Mystery Hall", Area: "Pasig", Rating: 4.8, ReviewCount: 300,
			Confidence: ConfidenceVerified,
		},
	}
}

func TestRankExcludesNonMatching(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)
	venues := testVenues()

	ranked := engine.Rank(venues, Criteria{LocationText: "makati"}, nil, nil)

	require.Len(t, ranked, 1)
	assert.Equal(t, "near", ranked[0].ID)
}

func TestRankBestPrefersProximity(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)
	loc := &LatLng{Lat: 14.5547, Lng: 121.0244}

	venues := []*Venue{
		{ID: "far", Rating: 4.0, ReviewCount: 50, Confidence: ConfidenceVerified,
			Coordinates: &LatLng{Lat: 14.1153, Lng: 120.9621}}, // ~50 km out
		{ID: "near", Rating: 4.0, ReviewCount: 50, Confidence: ConfidenceVerified,
			Coordinates: &LatLng{Lat: 14.5607, Lng: 121.0320}}, // ~1 km out
	}

	ranked := engine.Rank(venues, Criteria{Sort: SortBest}, loc, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "far", ranked[1].ID)
}

func TestRankDistanceSortUnknownLast(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)
	loc := &LatLng{Lat: 14.5547, Lng: 121.0244}

	ranked := engine.Rank(testVenues(), Criteria{Sort: SortDistance}, loc, nil)

	require.Len(t, ranked, 3)
	// nocoords has the best rating but no distance, so it sorts last
	assert.Equal(t, "near", ranked[0].ID)
	assert.Equal(t, "far", ranked[1].ID)
	assert.Equal(t, "nocoords", ranked[2].ID)
}

func TestRankRatingSortTieBreaksOnReviews(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)

	venues := []*Venue{
		{ID: "a", Rating: 4.5, ReviewCount: 10, Confidence: ConfidenceVerified},
		{ID: "b", Rating: 4.5, ReviewCount: 90, Confidence: ConfidenceVerified},
		{ID: "c", Rating: 4.9, ReviewCount: 5, Confidence: ConfidenceVerified},
	}

	ranked := engine.Rank(venues, Criteria{Sort: SortRating}, nil, nil)

	assert.Equal(t, []string{"c", "b", "a"}, venueIDs(ranked))
}

func TestRankPriceSortsMissingValues(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)

	venues := []*Venue{
		{ID: "cheap", PriceFrom: fptr(10000), PriceTo: fptr(50000), Confidence: ConfidenceVerified},
		{ID: "pricey", PriceFrom: fptr(90000), PriceTo: fptr(200000), Confidence: ConfidenceVerified},
		{ID: "unpriced", Confidence: ConfidenceVerified},
	}

	low := engine.Rank(venues, Criteria{Sort: SortPriceLow}, nil, nil)
	assert.Equal(t, []string{"cheap", "pricey", "unpriced"}, venueIDs(low))

	high := engine.Rank(venues, Criteria{Sort: SortPriceHigh}, nil, nil)
	assert.Equal(t, []string{"pricey", "cheap", "unpriced"}, venueIDs(high))
}

func TestRankIdempotent(t *testing.T) {
	engine := NewEngine(nil, testSearchConfig(), nil)
	venues := testVenues()
	loc := &LatLng{Lat: 14.5547, Lng: 121.0244}
	c := Criteria{Sort: SortBest, RatingMin: 3}

	first := venueIDs(engine.Rank(venues, c, loc, nil))
	second := venueIDs(engine.Rank(venues, c, loc, nil))

	assert.Equal(t, first, second)
}

func TestRankWithRefreshAppliesConflictPenalty(t *testing.T) {
	// Two otherwise identical venues; a confirmed block on one of them for
	// the requested range must push it below the other on the second pass.
	source := &stubBlockSource{
		blocks: []Block{
			{VenueID: "blocked", StartDate: "2026-03-12", EndDate: "2026-03-12", BlockType: "confirmed"},
		},
	}
	engine := NewEngine(source, testSearchConfig(), nil)

	venues := []*Venue{
		{ID: "blocked", Rating: 4.0, ReviewCount: 50, Confidence: ConfidenceVerified},
		{ID: "open", Rating: 4.0, ReviewCount: 50, Confidence: ConfidenceVerified},
	}
	c := Criteria{Sort: SortBest, DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	ranked := engine.RankWithRefresh(context.Background(), venues, c, nil)

	require.Len(t, ranked, 2)
	assert.Equal(t, "open", ranked[0].ID)
	assert.Equal(t, "blocked", ranked[1].ID)
	assert.Equal(t, 1, source.calls)
}

func TestRankWithRefreshSkipsFetchWithoutDateRange(t *testing.T) {
	source := &stubBlockSource{}
	engine := NewEngine(source, testSearchConfig(), nil)

	engine.RankWithRefresh(context.Background(), testVenues(), Criteria{}, nil)

	assert.Equal(t, 0, source.calls)
}

func TestRankWithRefreshDegradesOnFetchFailure(t *testing.T) {
	source := &stubBlockSource{err: errors.New("connection refused")}
	engine := NewEngine(source, testSearchConfig(), nil)

	venues := []*Venue{
		{ID: "a", Rating: 4.0, ReviewCount: 50, Confidence: ConfidenceVerified},
		{ID: "b", Rating: 3.5, ReviewCount: 20, Confidence: ConfidenceVerified},
	}
	c := Criteria{Sort: SortBest, DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	ranked := engine.RankWithRefresh(context.Background(), venues, c, nil)

	// Ranking proceeds treating every venue as conflict-free
	require.Len(t, ranked, 2)
	assert.Equal(t, "a", ranked[0].ID)
}

func TestRankWithRefreshLimitsFetchToVisibleWindow(t *testing.T) {
	var fetchedIDs []string
	source := &recordingBlockSource{ids: &fetchedIDs}

	cfg := testSearchConfig()
	cfg.VisibleWindow = 2
	engine := NewEngine(source, cfg, nil)

	venues := []*Venue{
		{ID: "a", Rating: 4.9, Confidence: ConfidenceVerified},
		{ID: "b", Rating: 4.5, Confidence: ConfidenceVerified},
		{ID: "c", Rating: 4.1, Confidence: ConfidenceVerified},
		{ID: "d", Rating: 3.8, Confidence: ConfidenceVerified},
	}
	c := Criteria{Sort: SortBest, DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	engine.RankWithRefresh(context.Background(), venues, c, nil)

	assert.Equal(t, []string{"a", "b"}, fetchedIDs)
}

func TestRefreshBlocksDiscardsStaleResponse(t *testing.T) {
	// The first fetch triggers a second refresh before it returns, so its
	// own (stale) response must be discarded in favor of the newer data.
	engine := NewEngine(nil, testSearchConfig(), nil)
	c := Criteria{DateStart: "2026-03-10", DateEnd: "2026-03-12"}

	newer := &stubBlockSource{blocks: []Block{
		{VenueID: "v1", StartDate: "2026-03-11", EndDate: "2026-03-11", BlockType: "hold"},
	}}

	stale := &stubBlockSource{
		blocks: []Block{
			{VenueID: "v1", StartDate: "2026-03-10", EndDate: "2026-03-10", BlockType: "confirmed"},
		},
	}
	stale.onFetch = func() {
		engine.blocks = newer
		engine.RefreshBlocks(context.Background(), []string{"v1"}, c)
	}

	engine.blocks = stale
	engine.RefreshBlocks(context.Background(), []string{"v1"}, c)

	cached := engine.cachedBlocks()
	require.Len(t, cached["v1"], 1)
	assert.Equal(t, "hold", cached["v1"][0].BlockType)
}

type recordingBlockSource struct {
	ids *[]string
}

func (r *recordingBlockSource) BlocksForRange(ctx context.Context, venueIDs []string, startDate, endDate string) ([]Block, error) {
	*r.ids = append(*r.ids, venueIDs...)
	return nil, nil
}

func venueIDs(venues []*Venue) []string {
	ids := make([]string, len(venues))
	for i, v := range venues {
		ids[i] = v.ID
	}
	return ids
}
