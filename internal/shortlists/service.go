package shortlists

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"venuescout/internal/shared/config"
	"venuescout/internal/shared/constants"
	"venuescout/pkg/cache"
	"venuescout/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrShortlistNotFound = errors.New("shortlist not found")
	ErrItemNotFound      = errors.New("shortlist item not found")
	ErrNoItems           = errors.New("shortlist needs at least one venue")
	ErrTooManyItems      = errors.New("too many venues on shortlist")
)

// maxItems caps how many venues a single shortlist can carry.
const maxItems = 30

// shareTokenLength is the length of the public share token. Tokens come
// from a UUID with the hyphens stripped, which keeps them URL safe.
const shareTokenLength = 12

type Service interface {
	CreateShortlist(ctx context.Context, req *CreateShortlistRequest) (*ShortlistDetailResponse, error)
	GetByToken(ctx context.Context, token string) (*ShortlistDetailResponse, error)
	AddItem(ctx context.Context, token string, req *AddItemRequest) (*ShortlistDetailResponse, error)
	RemoveItem(ctx context.Context, token, itemID string) error
}

type service struct {
	repo   Repository
	cache  cache.Service
	config *config.Config
}

func NewService(repo Repository, cacheService cache.Service, cfg *config.Config) Service {
	return &service{
		repo:   repo,
		cache:  cacheService,
		config: cfg,
	}
}

func (s *service) CreateShortlist(ctx context.Context, req *CreateShortlistRequest) (*ShortlistDetailResponse, error) {
	if len(req.VenueIDs) == 0 {
		return nil, ErrNoItems
	}
	if len(req.VenueIDs) > maxItems {
		return nil, ErrTooManyItems
	}

	venueIDs, err := parseVenueIDs(req.VenueIDs)
	if err != nil {
		return nil, err
	}

	token, err := s.generateShareToken(ctx)
	if err != nil {
		return nil, err
	}

	shortlist := &Shortlist{
		ShareToken: token,
		Title:      req.Title,
		Notes:      req.Notes,
	}
	items := make([]ShortlistItem, 0, len(venueIDs))
	for _, venueID := range venueIDs {
		items = append(items, ShortlistItem{VenueID: venueID})
	}

	if err := s.repo.Create(ctx, shortlist, items); err != nil {
		return nil, err
	}

	logger.GetDefault().LogShortlistCreated(ctx, token, len(items))

	return &ShortlistDetailResponse{Shortlist: *shortlist, Items: items}, nil
}

func (s *service) GetByToken(ctx context.Context, token string) (*ShortlistDetailResponse, error) {
	if s.cache != nil {
		var detail ShortlistDetailResponse
		err := s.cache.GetOrSet(ctx, constants.CACHE_KEY_SHORTLIST_TOKEN+token,
			constants.TTL_DYNAMIC_QUICK, func() (interface{}, error) {
				return s.loadDetail(ctx, token)
			}, &detail)
		if err == nil {
			return &detail, nil
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShortlistNotFound
		}
		// fall through to the database on cache trouble
	}

	detail, err := s.loadDetail(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShortlistNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (s *service) AddItem(ctx context.Context, token string, req *AddItemRequest) (*ShortlistDetailResponse, error) {
	shortlist, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrShortlistNotFound
		}
		return nil, err
	}

	venueID, err := uuid.Parse(req.VenueID)
	if err != nil {
		return nil, fmt.Errorf("invalid venue id: %w", err)
	}

	existing, err := s.repo.Items(ctx, shortlist.ID)
	if err != nil {
		return nil, err
	}
	if len(existing) >= maxItems {
		return nil, ErrTooManyItems
	}

	position, err := s.repo.NextPosition(ctx, shortlist.ID)
	if err != nil {
		return nil, err
	}

	item := &ShortlistItem{
		ShortlistID: shortlist.ID,
		VenueID:     venueID,
		Note:        req.Note,
		Position:    position,
	}
	if err := s.repo.AddItem(ctx, item); err != nil {
		return nil, err
	}

	s.invalidateToken(ctx, token)

	return s.loadDetail(ctx, token)
}

func (s *service) RemoveItem(ctx context.Context, token, itemID string) error {
	shortlist, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrShortlistNotFound
		}
		return err
	}

	id, err := uuid.Parse(itemID)
	if err != nil {
		return ErrItemNotFound
	}

	if err := s.repo.RemoveItem(ctx, shortlist.ID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrItemNotFound
		}
		return err
	}

	s.invalidateToken(ctx, token)
	return nil
}

func (s *service) loadDetail(ctx context.Context, token string) (*ShortlistDetailResponse, error) {
	shortlist, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	items, err := s.repo.Items(ctx, shortlist.ID)
	if err != nil {
		return nil, err
	}
	return &ShortlistDetailResponse{Shortlist: *shortlist, Items: items}, nil
}

// generateShareToken mints a short token and retries on the unlikely
// collision with an existing shortlist.
func (s *service) generateShareToken(ctx context.Context) (string, error) {
	for attempt := 0; attempt < 5; attempt++ {
		raw := strings.ReplaceAll(uuid.New().String(), "-", "")
		token := raw[:shareTokenLength]

		exists, err := s.repo.TokenExists(ctx, token)
		if err != nil {
			return "", err
		}
		if !exists {
			return token, nil
		}
	}
	return "", errors.New("failed to generate unique share token")
}

func (s *service) invalidateToken(ctx context.Context, token string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, constants.CACHE_KEY_SHORTLIST_TOKEN+token); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "Failed to invalidate shortlist cache", err, map[string]interface{}{
			"token": token,
		})
	}
}

func parseVenueIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]bool, len(raw))
	ids := make([]uuid.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := uuid.Parse(value)
		if err != nil {
			return nil, fmt.Errorf("invalid venue id %q: %w", value, err)
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	return ids, nil
}
