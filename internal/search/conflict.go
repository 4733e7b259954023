package search

// Block is a date interval during which a venue is reserved or unavailable.
// Dates are inclusive ISO calendar dates with no time-of-day component.
type Block struct {
	VenueID   string `json:"venue_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	BlockType string `json:"block_type"`
	Source    string `json:"source"`
}

// Overlaps reports whether two inclusive date ranges intersect. A zero-length
// range (start == end) is valid and matches blocks covering that single day.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return aStart <= bEnd && bStart <= aEnd
}

// ConflictTypes is the configured set of block types that count as booking
// conflicts.
type ConflictTypes map[string]bool

// NewConflictTypes builds the lookup set from a configured type list.
func NewConflictTypes(types []string) ConflictTypes {
	set := make(ConflictTypes, len(types))
	for _, t := range types {
		set[t] = true
	}
	return set
}

// HasConflict reports whether at least one block's type is in the conflicting
// set. Blocks are assumed pre-filtered to overlap the requested date range.
func HasConflict(blocks []Block, conflictTypes ConflictTypes) bool {
	for _, b := range blocks {
		if conflictTypes[b.BlockType] {
			return true
		}
	}
	return false
}
