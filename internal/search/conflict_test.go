package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlapsInclusiveBoundary(t *testing.T) {
	// Block on the last day of the requested range still overlaps
	assert.True(t, Overlaps("2026-03-10", "2026-03-12", "2026-03-12", "2026-03-12"))
	assert.True(t, Overlaps("2026-03-10", "2026-03-12", "2026-03-01", "2026-03-10"))
}

func TestOverlapsDisjoint(t *testing.T) {
	assert.False(t, Overlaps("2026-03-10", "2026-03-12", "2026-03-13", "2026-03-15"))
	assert.False(t, Overlaps("2026-03-10", "2026-03-12", "2026-03-01", "2026-03-09"))
}

func TestOverlapsZeroLengthRange(t *testing.T) {
	// start == end is a valid single-day range
	assert.True(t, Overlaps("2026-03-11", "2026-03-11", "2026-03-10", "2026-03-12"))
	assert.True(t, Overlaps("2026-03-11", "2026-03-11", "2026-03-11", "2026-03-11"))
	assert.False(t, Overlaps("2026-03-11", "2026-03-11", "2026-03-12", "2026-03-12"))
}

func TestHasConflict(t *testing.T) {
	types := NewConflictTypes([]string{"confirmed", "unavailable", "maintenance", "hold"})

	blocks := []Block{
		{VenueID: "v1", StartDate: "2026-03-12", EndDate: "2026-03-12", BlockType: "confirmed"},
	}
	assert.True(t, HasConflict(blocks, types))

	nonConflicting := []Block{
		{VenueID: "v1", StartDate: "2026-03-12", EndDate: "2026-03-12", BlockType: "tentative"},
	}
	assert.False(t, HasConflict(nonConflicting, types))

	assert.False(t, HasConflict(nil, types))
}
