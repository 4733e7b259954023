package inquiries

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for inquiry operations
type Repository interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	List(ctx context.Context, filters InboxFilters) (*PaginatedInquiries, error)

	AddRecipients(ctx context.Context, recipients []InquiryRecipient) error
	Recipients(ctx context.Context, inquiryID uuid.UUID) ([]InquiryRecipient, error)

	// ListForRange returns staff-actioned inquiries (anything past the raw
	// inquiry state) whose inclusive date range overlaps [start, end].
	ListForRange(ctx context.Context, start, end time.Time) ([]Inquiry, error)

	// ExpiredHolds returns pencil inquiries whose hold lapsed before now.
	ExpiredHolds(ctx context.Context, now time.Time) ([]Inquiry, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new inquiry repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, inquiry *Inquiry) error {
	return r.db.WithContext(ctx).Create(inquiry).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Inquiry, error) {
	var inquiry Inquiry
	err := r.db.WithContext(ctx).First(&inquiry, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &inquiry, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Inquiry{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) List(ctx context.Context, filters InboxFilters) (*PaginatedInquiries, error) {
	var inquiries []Inquiry
	var total int64

	query := r.db.WithContext(ctx).Model(&Inquiry{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if filters.Search != "" {
		pattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where(
			"client_name ILIKE ? OR contact_details ILIKE ? OR notes ILIKE ? OR event_type ILIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (filters.Page - 1) * filters.Limit
	err := query.Order("created_at DESC").
		Offset(offset).Limit(filters.Limit).
		Find(&inquiries).Error
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))

	return &PaginatedInquiries{
		Inquiries:  inquiries,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (r *repository) AddRecipients(ctx context.Context, recipients []InquiryRecipient) error {
	if len(recipients) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&recipients).Error
}

func (r *repository) Recipients(ctx context.Context, inquiryID uuid.UUID) ([]InquiryRecipient, error) {
	var recipients []InquiryRecipient
	err := r.db.WithContext(ctx).
		Where("inquiry_id = ?", inquiryID).
		Order("created_at ASC").
		Find(&recipients).Error
	return recipients, err
}

func (r *repository) ListForRange(ctx context.Context, start, end time.Time) ([]Inquiry, error) {
	var inquiries []Inquiry
	err := r.db.WithContext(ctx).
		Where("status <> ?", StatusInquiry).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Order("start_date ASC").
		Find(&inquiries).Error
	return inquiries, err
}

func (r *repository) ExpiredHolds(ctx context.Context, now time.Time) ([]Inquiry, error) {
	var inquiries []Inquiry
	err := r.db.WithContext(ctx).
		Where("status = ?", StatusPencil).
		Where("hold_expires_at IS NOT NULL AND hold_expires_at < ?", now).
		Find(&inquiries).Error
	return inquiries, err
}

// ============= FILTER STRUCTS =============

type InboxFilters struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=inquiry pencil confirmed cancelled"`
	Search string `form:"search"`
}

type PaginatedInquiries struct {
	Inquiries  []Inquiry `json:"inquiries"`
	TotalCount int64     `json:"total_count"`
	Page       int       `json:"page"`
	Limit      int       `json:"limit"`
	TotalPages int       `json:"total_pages"`
}
