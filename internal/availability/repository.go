package availability

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository interface for availability block operations
type Repository interface {
	Create(ctx context.Context, block *Block) error
	GetByID(ctx context.Context, id uuid.UUID) (*Block, error)
	Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListForVenue(ctx context.Context, venueID uuid.UUID) ([]Block, error)

	// BlocksForRange returns every block for the given venues whose inclusive
	// interval overlaps [start, end].
	BlocksForRange(ctx context.Context, venueIDs []uuid.UUID, start, end time.Time) ([]Block, error)

	// TouchVenueSync records when a venue's availability data last changed.
	TouchVenueSync(ctx context.Context, venueID uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository creates a new availability repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, block *Block) error {
	return r.db.WithContext(ctx).Create(block).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Block, error) {
	var block Block
	err := r.db.WithContext(ctx).First(&block, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *repository) Update(ctx context.Context, id uuid.UUID, updates map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&Block{}).Where("id = ?", id).Updates(updates).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Block{}, "id = ?", id).Error
}

func (r *repository) ListForVenue(ctx context.Context, venueID uuid.UUID) ([]Block, error) {
	var blocks []Block
	err := r.db.WithContext(ctx).
		Where("venue_id = ?", venueID).
		Order("start_date ASC").
		Find(&blocks).Error
	return blocks, err
}

func (r *repository) BlocksForRange(ctx context.Context, venueIDs []uuid.UUID, start, end time.Time) ([]Block, error) {
	var blocks []Block
	err := r.db.WithContext(ctx).
		Where("venue_id IN ?", venueIDs).
		Where("start_date <= ? AND end_date >= ?", end, start).
		Find(&blocks).Error
	return blocks, err
}

func (r *repository) TouchVenueSync(ctx context.Context, venueID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Table("venues").
		Where("id = ?", venueID).
		Update("availability_synced_at", time.Now().UTC()).Error
}
