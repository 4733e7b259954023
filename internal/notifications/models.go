package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// InquiryEventType identifies what happened to an inquiry.
type InquiryEventType string

const (
	InquiryEventCreated       InquiryEventType = "INQUIRY_CREATED"
	InquiryEventStatusChanged InquiryEventType = "INQUIRY_STATUS_CHANGED"
)

type EventPriority string

const (
	EventPriorityLow    EventPriority = "LOW"
	EventPriorityMedium EventPriority = "MEDIUM"
	EventPriorityHigh   EventPriority = "HIGH"
)

// InquiryEvent is the wire format for inquiry lifecycle events on the
// notification topic. Partitioned by inquiry so per-inquiry ordering holds.
type InquiryEvent struct {
	ID       uuid.UUID        `json:"id"`
	Type     InquiryEventType `json:"type"`
	Priority EventPriority    `json:"priority"`

	InquiryID      uuid.UUID `json:"inquiry_id"`
	ClientName     string    `json:"client_name"`
	ContactDetails string    `json:"contact_details"`
	EventType      string    `json:"event_type"`
	Pax            int       `json:"pax"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`

	// VenueIDs are the recipients of a new inquiry. Empty for status changes.
	VenueIDs []string `json:"venue_ids,omitempty"`

	// Status transition context. Empty for creation events.
	FromStatus string `json:"from_status,omitempty"`
	ToStatus   string `json:"to_status,omitempty"`

	// HoldExpiresAt is set when the transition created a pencil hold.
	HoldExpiresAt *time.Time `json:"hold_expires_at,omitempty"`

	RetryCount int       `json:"retry_count"`
	CreatedAt  time.Time `json:"created_at"`
}

func (e *InquiryEvent) GetPartitionKey() string {
	return e.InquiryID.String()
}

func (e *InquiryEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DefaultPriority maps event types to delivery priority. Holds are time
// sensitive, so status changes outrank plain creations.
func DefaultPriority(eventType InquiryEventType) EventPriority {
	switch eventType {
	case InquiryEventStatusChanged:
		return EventPriorityHigh
	case InquiryEventCreated:
		return EventPriorityMedium
	default:
		return EventPriorityLow
	}
}
