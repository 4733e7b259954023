package database

import (
	"venuescout/internal/availability"
	"venuescout/internal/inquiries"
	"venuescout/internal/shortlists"
	"venuescout/internal/users"
	"venuescout/internal/venues"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&users.User{},
		&venues.Venue{},
		&venues.VenueConfidence{},
		&venues.VenueAmenity{},
		&venues.VenueEventType{},
		&availability.Block{},
		&inquiries.Inquiry{},
		&inquiries.InquiryRecipient{},
		&shortlists.Shortlist{},
		&shortlists.ShortlistItem{},
	)
}
