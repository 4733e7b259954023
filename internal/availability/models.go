package availability

import (
	"time"

	"github.com/google/uuid"
)

// Block is a date interval during which a venue is reserved or unavailable.
// Both dates are inclusive calendar dates.
type Block struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	StartDate time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate   time.Time `gorm:"type:date;not null" json:"end_date"`
	BlockType string    `gorm:"not null" json:"block_type"`
	Source    string    `gorm:"default:'manual'" json:"source"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Block) TableName() string {
	return "availability_blocks"
}

// DateLayout is the ISO calendar date format used on the wire.
const DateLayout = "2006-01-02"
