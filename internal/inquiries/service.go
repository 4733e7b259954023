package inquiries

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuescout/internal/shared/config"
	"venuescout/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrInquiryNotFound      = errors.New("inquiry not found")
	ErrInvalidDateRange     = errors.New("end date is before start date")
	ErrNoRecipients         = errors.New("at least one venue recipient is required")
	ErrTooManyRecipients    = errors.New("too many venue recipients")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
)

// EventPublisher emits inquiry lifecycle events to the notification pipeline.
// Publishing is best-effort: a failure never rolls back the workflow change.
type EventPublisher interface {
	PublishInquiryCreated(ctx context.Context, inquiry *Inquiry, venueIDs []string) error
	PublishStatusChanged(ctx context.Context, inquiry *Inquiry, from InquiryStatus) error
}

type Service interface {
	CreateInquiry(ctx context.Context, req *CreateInquiryRequest) (*InquiryDetailResponse, error)
	GetInquiry(ctx context.Context, id string) (*InquiryDetailResponse, error)
	ListInbox(ctx context.Context, filters InboxFilters) (*PaginatedInquiries, error)
	UpdateStatus(ctx context.Context, id string, status string) (*Inquiry, error)
	RecordPayment(ctx context.Context, id string, req *RecordPaymentRequest) (*Inquiry, error)
	ProposeDates(ctx context.Context, id string, dates []string) (*Inquiry, error)

	// ExpireHolds lapses pencil holds past their expiry back to inquiry.
	// Returns how many holds were expired.
	ExpireHolds(ctx context.Context) (int, error)

	Calendar(ctx context.Context, year int, month time.Month) (*CalendarResponse, error)
}

type service struct {
	repo      Repository
	publisher EventPublisher
	cfg       *config.Config
	log       *logger.Logger
}

func NewService(repo Repository, publisher EventPublisher, cfg *config.Config, log *logger.Logger) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
	}
}

func (s *service) CreateInquiry(ctx context.Context, req *CreateInquiryRequest) (*InquiryDetailResponse, error) {
	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	venueIDs, err := parseVenueIDs(req.VenueIDs)
	if err != nil {
		return nil, err
	}
	if len(venueIDs) == 0 {
		return nil, ErrNoRecipients
	}
	if len(venueIDs) > s.cfg.Inquiry.MaxRecipients {
		return nil, ErrTooManyRecipients
	}

	inquiry := &Inquiry{
		ClientName:     req.ClientName,
		ContactDetails: req.ContactDetails,
		EventType:      req.EventType,
		Pax:            req.Pax,
		StartDate:      start,
		EndDate:        end,
		BudgetMin:      req.BudgetMin,
		BudgetMax:      req.BudgetMax,
		Notes:          req.Notes,
		Status:         StatusInquiry,
		PaymentStatus:  PaymentUnpaid,
	}

	if err := s.repo.Create(ctx, inquiry); err != nil {
		return nil, fmt.Errorf("failed to create inquiry: %w", err)
	}

	// Recipient registration is a best-effort sequential step with no
	// transaction spanning the inquiry insert.
	recipients := make([]InquiryRecipient, len(venueIDs))
	for i, venueID := range venueIDs {
		recipients[i] = InquiryRecipient{
			InquiryID: inquiry.ID,
			VenueID:   venueID,
			Status:    "sent",
		}
	}
	if err := s.repo.AddRecipients(ctx, recipients); err != nil {
		return nil, fmt.Errorf("failed to register recipients: %w", err)
	}

	if s.publisher != nil {
		if err := s.publisher.PublishInquiryCreated(ctx, inquiry, req.VenueIDs); err != nil && s.log != nil {
			s.log.ErrorWithContext(ctx, "Failed to publish inquiry created event", err,
				map[string]interface{}{"inquiry_id": inquiry.ID.String()})
		}
	}

	if s.log != nil {
		s.log.LogInquiryCreated(ctx, inquiry.ID.String(), len(venueIDs))
	}

	return &InquiryDetailResponse{Inquiry: *inquiry, Recipients: recipients}, nil
}

func (s *service) GetInquiry(ctx context.Context, id string) (*InquiryDetailResponse, error) {
	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	recipients, err := s.repo.Recipients(ctx, inquiry.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load recipients: %w", err)
	}

	return &InquiryDetailResponse{Inquiry: *inquiry, Recipients: recipients}, nil
}

func (s *service) ListInbox(ctx context.Context, filters InboxFilters) (*PaginatedInquiries, error) {
	if filters.Page == 0 {
		filters.Page = 1
	}
	if filters.Limit == 0 {
		filters.Limit = 20
	}
	return s.repo.List(ctx, filters)
}

func (s *service) UpdateStatus(ctx context.Context, id string, status string) (*Inquiry, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidTransition
	}
	to := InquiryStatus(status)

	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanTransition(inquiry.Status, to) {
		return nil, ErrInvalidTransition
	}

	return s.transition(ctx, inquiry, to)
}

// transition applies a validated status change along with its hold side
// effects: entering pencil opens a hold, every other state clears it.
func (s *service) transition(ctx context.Context, inquiry *Inquiry, to InquiryStatus) (*Inquiry, error) {
	from := inquiry.Status
	updates := map[string]interface{}{"status": to}

	if to == StatusPencil {
		now := time.Now().UTC()
		expires := now.AddDate(0, 0, s.cfg.Inquiry.HoldDays)
		updates["hold_created_at"] = now
		updates["hold_expires_at"] = expires

		if s.log != nil {
			s.log.LogHoldCreated(ctx, inquiry.ID.String(), expires)
		}
	} else {
		updates["hold_created_at"] = nil
		updates["hold_expires_at"] = nil
	}

	if err := s.repo.Update(ctx, inquiry.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to update status: %w", err)
	}

	updated, err := s.repo.GetByID(ctx, inquiry.ID)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.PublishStatusChanged(ctx, updated, from); err != nil && s.log != nil {
			s.log.ErrorWithContext(ctx, "Failed to publish status changed event", err,
				map[string]interface{}{"inquiry_id": inquiry.ID.String()})
		}
	}

	if s.log != nil {
		s.log.LogInquiryStatusChanged(ctx, inquiry.ID.String(), string(from), string(to))
	}

	return updated, nil
}

func (s *service) RecordPayment(ctx context.Context, id string, req *RecordPaymentRequest) (*Inquiry, error) {
	if !IsValidPaymentStatus(req.Status) {
		return nil, ErrInvalidPaymentStatus
	}

	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{
		"payment_status": req.Status,
		"payment_amount": req.Amount,
		"payment_notes":  req.Notes,
	}
	if err := s.repo.Update(ctx, inquiry.ID, updates); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}

	inquiry, err = s.repo.GetByID(ctx, inquiry.ID)
	if err != nil {
		return nil, err
	}

	// Full payment confirms the booking unless it was already cancelled
	if PaymentStatus(req.Status) == PaymentPaid &&
		inquiry.Status != StatusCancelled && inquiry.Status != StatusConfirmed {
		return s.transition(ctx, inquiry, StatusConfirmed)
	}

	return inquiry, nil
}

func (s *service) ProposeDates(ctx context.Context, id string, dates []string) (*Inquiry, error) {
	inquiry, err := s.getByID(ctx, id)
	if err != nil {
		return nil, err
	}

	for _, d := range dates {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return nil, fmt.Errorf("invalid proposed date %q: %w", d, err)
		}
	}

	if err := s.repo.Update(ctx, inquiry.ID, map[string]interface{}{"proposed_dates": dates}); err != nil {
		return nil, fmt.Errorf("failed to save proposed dates: %w", err)
	}

	return s.repo.GetByID(ctx, inquiry.ID)
}

func (s *service) ExpireHolds(ctx context.Context) (int, error) {
	expired, err := s.repo.ExpiredHolds(ctx, time.Now().UTC())
	if err != nil {
		return 0, fmt.Errorf("failed to find expired holds: %w", err)
	}

	lapsed := 0
	for i := range expired {
		if _, err := s.transition(ctx, &expired[i], StatusInquiry); err != nil {
			if s.log != nil {
				s.log.ErrorWithContext(ctx, "Failed to lapse expired hold", err,
					map[string]interface{}{"inquiry_id": expired[i].ID.String()})
			}
			continue
		}
		lapsed++
	}

	return lapsed, nil
}

func (s *service) Calendar(ctx context.Context, year int, month time.Month) (*CalendarResponse, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	inquiries, err := s.repo.ListForRange(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load calendar inquiries: %w", err)
	}

	return BuildCalendar(inquiries, year, month), nil
}

// BuildCalendar buckets staff-actioned inquiries into the days of a month.
// An inquiry appears on every day its inclusive date range covers.
func BuildCalendar(inquiries []Inquiry, year int, month time.Month) *CalendarResponse {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	days := make(map[string][]CalendarEntry, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		key := date.Format(DateLayout)

		for _, inq := range inquiries {
			if !date.Before(truncateToDay(inq.StartDate)) && !date.After(truncateToDay(inq.EndDate)) {
				days[key] = append(days[key], CalendarEntry{
					InquiryID:  inq.ID.String(),
					ClientName: inq.ClientName,
					EventType:  inq.EventType,
					Status:     inq.Status,
				})
			}
		}
	}

	return &CalendarResponse{
		Year:  year,
		Month: int(month),
		Days:  days,
	}
}

func (s *service) getByID(ctx context.Context, id string) (*Inquiry, error) {
	inquiryID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrInquiryNotFound
	}

	inquiry, err := s.repo.GetByID(ctx, inquiryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInquiryNotFound
		}
		return nil, err
	}
	return inquiry, nil
}

func parseDateRange(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := time.Parse(DateLayout, endDate)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, ErrInvalidDateRange
	}
	return start, end, nil
}

func parseVenueIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(r)
		if err != nil {
			return nil, fmt.Errorf("invalid venue id %q: %w", r, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
