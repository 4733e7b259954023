package notifications

import (
	"context"
	"time"

	"venuescout/internal/inquiries"

	"github.com/google/uuid"
)

// Publisher adapts the Kafka producer to the inquiry workflow's
// EventPublisher seam.
type Publisher struct {
	producer EventProducer
}

func NewPublisher(producer EventProducer) *Publisher {
	return &Publisher{producer: producer}
}

func (p *Publisher) PublishInquiryCreated(ctx context.Context, inquiry *inquiries.Inquiry, venueIDs []string) error {
	event := newInquiryEvent(InquiryEventCreated, inquiry)
	event.VenueIDs = venueIDs
	return p.producer.PublishEvent(ctx, event)
}

func (p *Publisher) PublishStatusChanged(ctx context.Context, inquiry *inquiries.Inquiry, from inquiries.InquiryStatus) error {
	event := newInquiryEvent(InquiryEventStatusChanged, inquiry)
	event.FromStatus = string(from)
	event.ToStatus = string(inquiry.Status)
	event.HoldExpiresAt = inquiry.HoldExpiresAt
	return p.producer.PublishEvent(ctx, event)
}

func newInquiryEvent(eventType InquiryEventType, inquiry *inquiries.Inquiry) *InquiryEvent {
	return &InquiryEvent{
		ID:             uuid.New(),
		Type:           eventType,
		Priority:       DefaultPriority(eventType),
		InquiryID:      inquiry.ID,
		ClientName:     inquiry.ClientName,
		ContactDetails: inquiry.ContactDetails,
		EventType:      inquiry.EventType,
		Pax:            inquiry.Pax,
		StartDate:      inquiry.StartDate.Format(inquiries.DateLayout),
		EndDate:        inquiry.EndDate.Format(inquiries.DateLayout),
		CreatedAt:      time.Now(),
	}
}

// NoopPublisher drops events. Used when the broker is unavailable so the
// inquiry workflow keeps working without notifications.
type NoopPublisher struct{}

func (NoopPublisher) PublishInquiryCreated(ctx context.Context, inquiry *inquiries.Inquiry, venueIDs []string) error {
	return nil
}

func (NoopPublisher) PublishStatusChanged(ctx context.Context, inquiry *inquiries.Inquiry, from inquiries.InquiryStatus) error {
	return nil
}
