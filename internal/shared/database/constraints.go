package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds database constraints and indexes the automigration
// does not cover.
func MigrateConstraints(db *gorm.DB) error {
	// One confidence row per venue
	err := db.Exec(`
		ALTER TABLE venue_confidences
		ADD CONSTRAINT IF NOT EXISTS unique_confidence_per_venue
		UNIQUE (venue_id);
	`).Error
	if err != nil {
		return err
	}

	// Availability blocks are queried by (venue_id, start_date, end_date) overlap
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_blocks_venue_range
		ON availability_blocks (venue_id, start_date, end_date);
	`).Error
	if err != nil {
		return err
	}

	// Inbox filters by status, calendar scans by date range
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_inquiries_status
		ON inquiries (status);
	`).Error
	if err != nil {
		return err
	}

	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_inquiries_date_range
		ON inquiries (start_date, end_date);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
