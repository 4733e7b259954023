package venues

import (
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Area        string    `gorm:"index" json:"area"`
	Address     string    `json:"address"`
	Lat         *float64  `json:"lat,omitempty"`
	Lng         *float64  `json:"lng,omitempty"`
	PaxMin      int       `gorm:"default:0" json:"pax_min"`
	PaxMax      int       `gorm:"default:0" json:"pax_max"`
	PriceFrom   *float64  `json:"price_from,omitempty"`
	PriceTo     *float64  `json:"price_to,omitempty"`
	Rating      float64   `gorm:"default:0" json:"rating"`
	ReviewCount int       `gorm:"default:0" json:"review_count"`

	AvailabilitySyncedAt *time.Time `json:"availability_synced_at,omitempty"`
	ProfileUpdatedAt     *time.Time `json:"profile_updated_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VenueConfidence records the trust tier of a venue's data, one row per venue.
type VenueConfidence struct {
	ID         uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID    uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	Confidence string    `gorm:"not null;default:'unverified'" json:"confidence"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type VenueAmenity struct {
	ID      uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	Amenity string    `gorm:"not null" json:"amenity"`
}

type VenueEventType struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	VenueID   uuid.UUID `gorm:"type:uuid;not null;index" json:"venue_id"`
	EventType string    `gorm:"not null" json:"event_type"`
}

// IsValidConfidence reports whether the given string is a known trust tier.
func IsValidConfidence(confidence string) bool {
	switch confidence {
	case "verified", "likely", "unverified":
		return true
	default:
		return false
	}
}
