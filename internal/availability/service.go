package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"venuescout/internal/search"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrBlockNotFound     = errors.New("block not found")
	ErrInvalidDateRange  = errors.New("end date is before start date")
	ErrInvalidBlockType  = errors.New("block type is required")
)

type Service interface {
	CreateBlock(ctx context.Context, req *CreateBlockRequest) (*Block, error)
	GetBlock(ctx context.Context, id string) (*Block, error)
	UpdateBlock(ctx context.Context, id string, req *UpdateBlockRequest) (*Block, error)
	DeleteBlock(ctx context.Context, id string) error
	ListForVenue(ctx context.Context, venueID string) ([]Block, error)

	// BlocksForRange implements the search engine's block source. The date
	// strings are ISO calendar dates and the overlap test is inclusive on
	// both ends.
	BlocksForRange(ctx context.Context, venueIDs []string, startDate, endDate string) ([]search.Block, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateBlock(ctx context.Context, req *CreateBlockRequest) (*Block, error) {
	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue id: %w", err)
	}

	start, end, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	if req.BlockType == "" {
		return nil, ErrInvalidBlockType
	}

	source := req.Source
	if source == "" {
		source = "manual"
	}

	block := &Block{
		VenueID:   venueID,
		StartDate: start,
		EndDate:   end,
		BlockType: req.BlockType,
		Source:    source,
	}

	if err := s.repo.Create(ctx, block); err != nil {
		return nil, fmt.Errorf("failed to create block: %w", err)
	}

	if err := s.repo.TouchVenueSync(ctx, venueID); err != nil {
		return nil, fmt.Errorf("failed to touch venue sync time: %w", err)
	}

	return block, nil
}

func (s *service) GetBlock(ctx context.Context, id string) (*Block, error) {
	blockID, err := uuid.Parse(id)
	if err != nil {
		return nil, ErrBlockNotFound
	}

	block, err := s.repo.GetByID(ctx, blockID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlockNotFound
		}
		return nil, err
	}
	return block, nil
}

func (s *service) UpdateBlock(ctx context.Context, id string, req *UpdateBlockRequest) (*Block, error) {
	block, err := s.GetBlock(ctx, id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	startDate := block.StartDate
	endDate := block.EndDate

	if req.StartDate != "" {
		startDate, err = time.Parse(DateLayout, req.StartDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start date: %w", err)
		}
		updates["start_date"] = startDate
	}
	if req.EndDate != "" {
		endDate, err = time.Parse(DateLayout, req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end date: %w", err)
		}
		updates["end_date"] = endDate
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}
	if req.BlockType != "" {
		updates["block_type"] = req.BlockType
	}
	if req.Source != "" {
		updates["source"] = req.Source
	}

	if len(updates) > 0 {
		if err := s.repo.Update(ctx, block.ID, updates); err != nil {
			return nil, fmt.Errorf("failed to update block: %w", err)
		}
		if err := s.repo.TouchVenueSync(ctx, block.VenueID); err != nil {
			return nil, fmt.Errorf("failed to touch venue sync time: %w", err)
		}
	}

	return s.repo.GetByID(ctx, block.ID)
}

func (s *service) DeleteBlock(ctx context.Context, id string) error {
	block, err := s.GetBlock(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, block.ID); err != nil {
		return fmt.Errorf("failed to delete block: %w", err)
	}

	return s.repo.TouchVenueSync(ctx, block.VenueID)
}

func (s *service) ListForVenue(ctx context.Context, venueID string) ([]Block, error) {
	id, err := uuid.Parse(venueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue id: %w", err)
	}
	return s.repo.ListForVenue(ctx, id)
}

func (s *service) BlocksForRange(ctx context.Context, venueIDs []string, startDate, endDate string) ([]search.Block, error) {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(venueIDs))
	for _, raw := range venueIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			// skip ids that never came from this catalog
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	blocks, err := s.repo.BlocksForRange(ctx, ids, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocks: %w", err)
	}

	out := make([]search.Block, len(blocks))
	for i, b := range blocks {
		out[i] = search.Block{
			VenueID:   b.VenueID.String(),
			StartDate: b.StartDate.Format(DateLayout),
			EndDate:   b.EndDate.Format(DateLayout),
			BlockType: b.BlockType,
			Source:    b.Source,
		}
	}
	return out, nil
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
