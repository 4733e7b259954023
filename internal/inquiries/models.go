package inquiries

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a customer's booking request routed to one or more venues. It
// moves through the pencil-hold workflow managed by venue staff.
type Inquiry struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	ClientName     string    `gorm:"not null" json:"client_name"`
	ContactDetails string    `gorm:"not null" json:"contact_details"`
	EventType      string    `json:"event_type"`
	Pax            int       `gorm:"default:0" json:"pax"`
	StartDate      time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null" json:"end_date"`
	BudgetMin      *float64  `json:"budget_min,omitempty"`
	BudgetMax      *float64  `json:"budget_max,omitempty"`
	Notes          string    `json:"notes"`

	Status InquiryStatus `gorm:"not null;default:'inquiry';index" json:"status"`

	// Pencil hold window, present only while Status is pencil
	HoldCreatedAt *time.Time `json:"hold_created_at,omitempty"`
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`

	PaymentStatus PaymentStatus `gorm:"not null;default:'unpaid'" json:"payment_status"`
	PaymentAmount float64       `gorm:"default:0" json:"payment_amount"`
	PaymentNotes  string        `json:"payment_notes"`

	// Alternative dates offered back to the client
	ProposedDates []string `gorm:"serializer:json" json:"proposed_dates,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// InquiryRecipient links an inquiry to a venue it was sent to.
type InquiryRecipient struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	InquiryID uuid.UUID `gorm:"type:uuid;not null;index" json:"inquiry_id"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	Status    string    `gorm:"not null;default:'sent'" json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"
