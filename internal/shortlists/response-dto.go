package shortlists

// ShortlistDetailResponse is a shortlist with its venue items in order.
type ShortlistDetailResponse struct {
	Shortlist Shortlist       `json:"shortlist"`
	Items     []ShortlistItem `json:"items"`
}
