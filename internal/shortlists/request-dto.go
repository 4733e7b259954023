package shortlists

// CreateShortlistRequest creates a shareable shortlist from search results.
type CreateShortlistRequest struct {
	Title    string   `json:"title" validate:"omitempty,max=120"`
	Notes    string   `json:"notes" validate:"omitempty,max=2000"`
	VenueIDs []string `json:"venue_ids" validate:"required,min=1,max=30,dive,uuid"`
}

// AddItemRequest adds one venue to an existing shortlist.
type AddItemRequest struct {
	VenueID string `json:"venue_id" validate:"required,uuid"`
	Note    string `json:"note" validate:"omitempty,max=500"`
}
