package inquiries

// CreateInquiryRequest is the customer payload for submitting an inquiry to
// one or more venues.
type CreateInquiryRequest struct {
	ClientName     string   `json:"client_name" validate:"required,min=2,max=200"`
	ContactDetails string   `json:"contact_details" validate:"required,min=3,max=300"`
	EventType      string   `json:"event_type" validate:"omitempty,max=100"`
	Pax            int      `json:"pax" validate:"omitempty,min=1"`
	StartDate      string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate        string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	BudgetMin      *float64 `json:"budget_min" validate:"omitempty,min=0"`
	BudgetMax      *float64 `json:"budget_max" validate:"omitempty,min=0"`
	Notes          string   `json:"notes" validate:"omitempty,max=2000"`
	VenueIDs       []string `json:"venue_ids" validate:"required,min=1,dive,uuid"`
}

// UpdateStatusRequest moves an inquiry through the workflow.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=inquiry pencil confirmed cancelled"`
}

// RecordPaymentRequest updates the payment state of an inquiry.
type RecordPaymentRequest struct {
	Status string  `json:"status" validate:"required,oneof=unpaid deposit partial paid"`
	Amount float64 `json:"amount" validate:"omitempty,min=0"`
	Notes  string  `json:"notes" validate:"omitempty,max=1000"`
}

// ProposeDatesRequest offers alternative dates back to the client.
type ProposeDatesRequest struct {
	Dates []string `json:"dates" validate:"required,min=1,dive,datetime=2006-01-02"`
}
