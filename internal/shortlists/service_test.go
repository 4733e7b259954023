package shortlists

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubRepository struct {
	shortlists map[string]*Shortlist
	items      map[uuid.UUID][]ShortlistItem

	// tokenCollisions makes the first N generated tokens look taken.
	tokenCollisions int
	tokensChecked   []string
}

func newStubRepository() *stubRepository {
	return &stubRepository{
		shortlists: make(map[string]*Shortlist),
		items:      make(map[uuid.UUID][]ShortlistItem),
	}
}

func (s *stubRepository) Create(ctx context.Context, shortlist *Shortlist, items []ShortlistItem) error {
	shortlist.ID = uuid.New()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].ShortlistID = shortlist.ID
		items[i].Position = i
	}
	s.shortlists[shortlist.ShareToken] = shortlist
	s.items[shortlist.ID] = items
	return nil
}

func (s *stubRepository) GetByToken(ctx context.Context, token string) (*Shortlist, error) {
	shortlist, ok := s.shortlists[token]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return shortlist, nil
}

func (s *stubRepository) Items(ctx context.Context, shortlistID uuid.UUID) ([]ShortlistItem, error) {
	return s.items[shortlistID], nil
}

func (s *stubRepository) AddItem(ctx context.Context, item *ShortlistItem) error {
	item.ID = uuid.New()
	s.items[item.ShortlistID] = append(s.items[item.ShortlistID], *item)
	return nil
}

func (s *stubRepository) RemoveItem(ctx context.Context, shortlistID, itemID uuid.UUID) error {
	items := s.items[shortlistID]
	for i, item := range items {
		if item.ID == itemID {
			s.items[shortlistID] = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (s *stubRepository) NextPosition(ctx context.Context, shortlistID uuid.UUID) (int, error) {
	return len(s.items[shortlistID]), nil
}

func (s *stubRepository) TokenExists(ctx context.Context, token string) (bool, error) {
	s.tokensChecked = append(s.tokensChecked, token)
	if s.tokenCollisions > 0 {
		s.tokenCollisions--
		return true, nil
	}
	_, ok := s.shortlists[token]
	return ok, nil
}

func TestCreateShortlistGeneratesShareToken(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil, nil)

	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		Title:    "March wedding options",
		VenueIDs: []string{uuid.New().String(), uuid.New().String()},
	})
	require.NoError(t, err)

	assert.Len(t, detail.Shortlist.ShareToken, shareTokenLength)
	assert.Len(t, detail.Items, 2)
	assert.Equal(t, 0, detail.Items[0].Position)
	assert.Equal(t, 1, detail.Items[1].Position)
}

func TestCreateShortlistDeduplicatesVenues(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil, nil)

	venueID := uuid.New().String()
	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		VenueIDs: []string{venueID, venueID, uuid.New().String()},
	})
	require.NoError(t, err)

	assert.Len(t, detail.Items, 2)
}

func TestCreateShortlistRejectsEmpty(t *testing.T) {
	svc := NewService(newStubRepository(), nil, nil)

	_, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{})
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestCreateShortlistRetriesOnTokenCollision(t *testing.T) {
	repo := newStubRepository()
	repo.tokenCollisions = 2
	svc := NewService(repo, nil, nil)

	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		VenueIDs: []string{uuid.New().String()},
	})
	require.NoError(t, err)

	assert.Len(t, repo.tokensChecked, 3)
	assert.Len(t, detail.Shortlist.ShareToken, shareTokenLength)
}

func TestGetByTokenNotFound(t *testing.T) {
	svc := NewService(newStubRepository(), nil, nil)

	_, err := svc.GetByToken(context.Background(), "missing-token")
	assert.ErrorIs(t, err, ErrShortlistNotFound)
}

func TestAddItemAppendsAtNextPosition(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil, nil)

	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		VenueIDs: []string{uuid.New().String()},
	})
	require.NoError(t, err)

	updated, err := svc.AddItem(context.Background(), detail.Shortlist.ShareToken, &AddItemRequest{
		VenueID: uuid.New().String(),
		Note:    "backup option",
	})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.Equal(t, 1, updated.Items[1].Position)
	assert.Equal(t, "backup option", updated.Items[1].Note)
}

func TestRemoveItemNotFound(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil, nil)

	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		VenueIDs: []string{uuid.New().String()},
	})
	require.NoError(t, err)

	err = svc.RemoveItem(context.Background(), detail.Shortlist.ShareToken, uuid.New().String())
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemDeletes(t *testing.T) {
	repo := newStubRepository()
	svc := NewService(repo, nil, nil)

	detail, err := svc.CreateShortlist(context.Background(), &CreateShortlistRequest{
		VenueIDs: []string{uuid.New().String()},
	})
	require.NoError(t, err)

	items := repo.items[detail.Shortlist.ID]
	require.Len(t, items, 1)

	err = svc.RemoveItem(context.Background(), detail.Shortlist.ShareToken, items[0].ID.String())
	require.NoError(t, err)

	assert.Empty(t, repo.items[detail.Shortlist.ID])
}
