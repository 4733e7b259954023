package shortlists

import (
	"time"

	"github.com/google/uuid"
)

// Shortlist is a shareable collection of venues a customer is considering.
// It is resolved publicly by its share token, never by its primary key.
type Shortlist struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShareToken string    `json:"share_token" gorm:"uniqueIndex;not null"`
	Title      string    `json:"title"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Shortlist) TableName() string {
	return "shortlists"
}

// ShortlistItem references a venue on a shortlist, with an optional
// customer note about that venue.
type ShortlistItem struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ShortlistID uuid.UUID `json:"shortlist_id" gorm:"type:uuid;not null;index"`
	VenueID     uuid.UUID `json:"venue_id" gorm:"type:uuid;not null"`
	Note        string    `json:"note"`
	Position    int       `json:"position" gorm:"not null;default:0"`
	CreatedAt   time.Time `json:"created_at"`
}

func (ShortlistItem) TableName() string {
	return "shortlist_items"
}
