package availability

// CreateBlockRequest is the staff payload for blocking out venue dates.
type CreateBlockRequest struct {
	VenueID   string `json:"venue_id" validate:"required,uuid"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
	BlockType string `json:"block_type" validate:"required,min=2,max=50"`
	Source    string `json:"source" validate:"omitempty,max=100"`
}

// UpdateBlockRequest carries partial block updates; empty fields are untouched.
type UpdateBlockRequest struct {
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	BlockType string `json:"block_type" validate:"omitempty,min=2,max=50"`
	Source    string `json:"source" validate:"omitempty,max=100"`
}
