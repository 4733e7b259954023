package search

// SearchResponse is the ordered result list returned to the caller.
type SearchResponse struct {
	Venues []*Venue `json:"venues"`
	Count  int      `json:"count"`
}
