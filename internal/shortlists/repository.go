package shortlists

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, shortlist *Shortlist, items []ShortlistItem) error
	GetByToken(ctx context.Context, token string) (*Shortlist, error)
	Items(ctx context.Context, shortlistID uuid.UUID) ([]ShortlistItem, error)
	AddItem(ctx context.Context, item *ShortlistItem) error
	RemoveItem(ctx context.Context, shortlistID, itemID uuid.UUID) error
	NextPosition(ctx context.Context, shortlistID uuid.UUID) (int, error)
	TokenExists(ctx context.Context, token string) (bool, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, shortlist *Shortlist, items []ShortlistItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(shortlist).Error; err != nil {
			return fmt.Errorf("failed to create shortlist: %w", err)
		}
		for i := range items {
			items[i].ShortlistID = shortlist.ID
			items[i].Position = i
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("failed to create shortlist items: %w", err)
			}
		}
		return nil
	})
}

func (r *repository) GetByToken(ctx context.Context, token string) (*Shortlist, error) {
	var shortlist Shortlist
	err := r.db.WithContext(ctx).Where("share_token = ?", token).First(&shortlist).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get shortlist: %w", err)
	}
	return &shortlist, nil
}

func (r *repository) Items(ctx context.Context, shortlistID uuid.UUID) ([]ShortlistItem, error) {
	var items []ShortlistItem
	err := r.db.WithContext(ctx).
		Where("shortlist_id = ?", shortlistID).
		Order("position ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlist items: %w", err)
	}
	return items, nil
}

func (r *repository) AddItem(ctx context.Context, item *ShortlistItem) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to add shortlist item: %w", err)
	}
	return nil
}

func (r *repository) RemoveItem(ctx context.Context, shortlistID, itemID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND shortlist_id = ?", itemID, shortlistID).
		Delete(&ShortlistItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove shortlist item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) NextPosition(ctx context.Context, shortlistID uuid.UUID) (int, error) {
	var max *int
	err := r.db.WithContext(ctx).
		Model(&ShortlistItem{}).
		Where("shortlist_id = ?", shortlistID).
		Select("MAX(position)").
		Scan(&max).Error
	if err != nil {
		return 0, fmt.Errorf("failed to get max position: %w", err)
	}
	if max == nil {
		return 0, nil
	}
	return *max + 1, nil
}

func (r *repository) TokenExists(ctx context.Context, token string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Shortlist{}).
		Where("share_token = ?", token).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check share token: %w", err)
	}
	return count > 0, nil
}
