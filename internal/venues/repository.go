package venues

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for venue catalog operations
type Repository interface {
	// Venue CRUD
	Create(ctx context.Context, venue *Venue) error
	GetByID(ctx context.Context, id uuid.UUID) (*Venue, error)
	List(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Bulk catalog loads for the ranking engine
	VenuesBase(ctx context.Context, limit int) ([]Venue, error)
	Confidence(ctx context.Context) ([]VenueConfidence, error)
	Amenities(ctx context.Context) ([]VenueAmenity, error)
	EventTypes(ctx context.Context) ([]VenueEventType, error)

	// Per-venue attribute management
	SetConfidence(ctx context.Context, venueID uuid.UUID, confidence string) error
	ReplaceAmenities(ctx context.Context, venueID uuid.UUID, amenities []string) error
	ReplaceEventTypes(ctx context.Context, venueID uuid.UUID, eventTypes []string) error
	AmenitiesForVenue(ctx context.Context, venueID uuid.UUID) ([]string, error)
	EventTypesForVenue(ctx context.Context, venueID uuid.UUID) ([]string, error)
	ConfidenceForVenue(ctx context.Context, venueID uuid.UUID) (string, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new venue repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, venue *Venue) error {
	return r.db.WithContext(ctx).Create(venue).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Venue, error) {
	var venue Venue
	err := r.db.WithContext(ctx).First(&venue, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &venue, nil
}

func (r *repository) List(ctx context.Context, filters VenueFilters) (*PaginatedVenues, error) {
	var venues []Venue
	var total int64

	query := r.db.WithContext(ctx).Model(&Venue{})

	if filters.Search != "" {
		searchPattern := fmt.Sprintf("%%%s%%", filters.Search)
		query = query.Where("name ILIKE ? OR area ILIKE ? OR address ILIKE ?",
			searchPattern, searchPattern, searchPattern)
	}

	if filters.Area != "" {
		query = query.Where("area = ?", filters.Area)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := filters.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("%s %s", sortBy, sortOrder))

	offset := (filters.Page - 1) * filters.Limit
	if err := query.Offset(offset).Limit(filters.Limit).Find(&venues).Error; err != nil {
		return nil, err
	}

	totalPages := int((total + int64(filters.Limit) - 1) / int64(filters.Limit))

	return &PaginatedVenues{
		Venues:     venues,
		TotalCount: total,
		Page:       filters.Page,
		Limit:      filters.Limit,
		TotalPages: totalPages,
	}, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Venue{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VenueConfidence{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&VenueAmenity{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&VenueEventType{}, "venue_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&Venue{}, "id = ?", id).Error
	})
}

// ============= BULK CATALOG LOADS =============

func (r *repository) VenuesBase(ctx context.Context, limit int) ([]Venue, error) {
	var venues []Venue
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(limit).
		Find(&venues).Error
	return venues, err
}

func (r *repository) Confidence(ctx context.Context) ([]VenueConfidence, error) {
	var rows []VenueConfidence
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *repository) Amenities(ctx context.Context) ([]VenueAmenity, error) {
	var rows []VenueAmenity
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

func (r *repository) EventTypes(ctx context.Context) ([]VenueEventType, error) {
	var rows []VenueEventType
	err := r.db.WithContext(ctx).Find(&rows).Error
	return rows, err
}

// ============= PER-VENUE ATTRIBUTES =============

func (r *repository) SetConfidence(ctx context.Context, venueID uuid.UUID, confidence string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VenueConfidence{}, "venue_id = ?", venueID).Error; err != nil {
			return err
		}
		return tx.Create(&VenueConfidence{VenueID: venueID, Confidence: confidence}).Error
	})
}

func (r *repository) ReplaceAmenities(ctx context.Context, venueID uuid.UUID, amenities []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VenueAmenity{}, "venue_id = ?", venueID).Error; err != nil {
			return err
		}
		for _, a := range amenities {
			if err := tx.Create(&VenueAmenity{VenueID: venueID, Amenity: a}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) ReplaceEventTypes(ctx context.Context, venueID uuid.UUID, eventTypes []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VenueEventType{}, "venue_id = ?", venueID).Error; err != nil {
			return err
		}
		for _, et := range eventTypes {
			if err := tx.Create(&VenueEventType{VenueID: venueID, EventType: et}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *repository) AmenitiesForVenue(ctx context.Context, venueID uuid.UUID) ([]string, error) {
	var amenities []string
	err := r.db.WithContext(ctx).Model(&VenueAmenity{}).
		Where("venue_id = ?", venueID).
		Order("amenity ASC").
		Pluck("amenity", &amenities).Error
	return amenities, err
}

func (r *repository) EventTypesForVenue(ctx context.Context, venueID uuid.UUID) ([]string, error) {
	var eventTypes []string
	err := r.db.WithContext(ctx).Model(&VenueEventType{}).
		Where("venue_id = ?", venueID).
		Order("event_type ASC").
		Pluck("event_type", &eventTypes).Error
	return eventTypes, err
}

func (r *repository) ConfidenceForVenue(ctx context.Context, venueID uuid.UUID) (string, error) {
	var row VenueConfidence
	err := r.db.WithContext(ctx).Where("venue_id = ?", venueID).First(&row).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return "unverified", nil
		}
		return "", err
	}
	return row.Confidence, nil
}

// ============= FILTER STRUCTS =============

type VenueFilters struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search    string `form:"search"`
	Area      string `form:"area"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=name area rating created_at updated_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

type PaginatedVenues struct {
	Venues     []Venue `json:"venues"`
	TotalCount int64   `json:"total_count"`
	Page       int     `json:"page"`
	Limit      int     `json:"limit"`
	TotalPages int     `json:"total_pages"`
}
