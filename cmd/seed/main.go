package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"venuescout/internal/availability"
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/constants"
	"venuescout/internal/shared/database"
	"venuescout/internal/users"
	"venuescout/internal/venues"
	"venuescout/pkg/cache"

	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

type venueSeed struct {
	Name        string
	Area        string
	Address     string
	Lat         float64
	Lng         float64
	PaxMin      int
	PaxMax      int
	PriceFrom   float64
	PriceTo     float64
	Rating      float64
	ReviewCount int
	Confidence  string
	EventTypes  []string
	Amenities   []string
	BlockedDays []string
}

func main() {
	fmt.Println("Starting VenueScout database seeder...")

	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\nCleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("Database cleaned")

	fmt.Println("\nSeeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("Database seeded")

	if err := flushCatalogCache(cfg); err != nil {
		fmt.Printf("Warning: could not flush catalog cache: %v\n", err)
	} else {
		fmt.Println("Catalog cache flushed")
	}

	fmt.Println("\nSeeding completed. Database is ready.")
}

// CleanDatabase truncates all tables in reverse dependency order.
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"shortlist_items",
		"shortlists",
		"inquiry_recipients",
		"inquiries",
		"availability_blocks",
		"venue_event_types",
		"venue_amenities",
		"venue_confidences",
		"venues",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds staff users, demo venues, and availability blocks.
func (s *Seeder) SeedAll() error {
	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	if err := s.SeedVenues(); err != nil {
		return fmt.Errorf("failed to seed venues: %w", err)
	}
	return nil
}

// SeedUsers creates a staff account and an admin account.
func (s *Seeder) SeedUsers() error {
	accounts := []struct {
		FirstName string
		LastName  string
		Email     string
		Role      users.Role
	}{
		{"Admin", "User", "admin@venuescout.app", users.RoleAdmin},
		{"Staff", "User", "staff@venuescout.app", users.RoleStaff},
	}

	for _, account := range accounts {
		hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		user := users.User{
			FirstName: account.FirstName,
			LastName:  account.LastName,
			Email:     account.Email,
			Password:  string(hashed),
			Role:      account.Role,
		}
		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", account.Email, err)
		}
		fmt.Printf("  Created user: %s (%s)\n", account.Email, account.Role)
	}

	return nil
}

// SeedVenues creates the demo Metro Manila venue catalog with confidence
// tiers, amenities, event types, and sample availability blocks.
func (s *Seeder) SeedVenues() error {
	now := time.Now().UTC()

	for _, seed := range demoVenues() {
		lat, lng := seed.Lat, seed.Lng
		priceFrom, priceTo := seed.PriceFrom, seed.PriceTo

		venue := venues.Venue{
			Name:                 seed.Name,
			Area:                 seed.Area,
			Address:              seed.Address,
			Lat:                  &lat,
			Lng:                  &lng,
			PaxMin:               seed.PaxMin,
			PaxMax:               seed.PaxMax,
			PriceFrom:            &priceFrom,
			PriceTo:              &priceTo,
			Rating:               seed.Rating,
			ReviewCount:          seed.ReviewCount,
			AvailabilitySyncedAt: &now,
			ProfileUpdatedAt:     &now,
		}
		if err := s.db.PostgreSQL.Create(&venue).Error; err != nil {
			return fmt.Errorf("failed to create venue %s: %w", seed.Name, err)
		}

		confidence := venues.VenueConfidence{VenueID: venue.ID, Confidence: seed.Confidence}
		if err := s.db.PostgreSQL.Create(&confidence).Error; err != nil {
			return fmt.Errorf("failed to set confidence for %s: %w", seed.Name, err)
		}

		for _, amenity := range seed.Amenities {
			row := venues.VenueAmenity{VenueID: venue.ID, Amenity: amenity}
			if err := s.db.PostgreSQL.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to add amenity for %s: %w", seed.Name, err)
			}
		}

		for _, eventType := range seed.EventTypes {
			row := venues.VenueEventType{VenueID: venue.ID, EventType: eventType}
			if err := s.db.PostgreSQL.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to add event type for %s: %w", seed.Name, err)
			}
		}

		for _, day := range seed.BlockedDays {
			date, err := time.Parse(availability.DateLayout, day)
			if err != nil {
				return fmt.Errorf("invalid blocked day %s: %w", day, err)
			}
			block := availability.Block{
				VenueID:   venue.ID,
				StartDate: date,
				EndDate:   date,
				BlockType: "confirmed",
				Source:    "seed",
			}
			if err := s.db.PostgreSQL.Create(&block).Error; err != nil {
				return fmt.Errorf("failed to add block for %s: %w", seed.Name, err)
			}
		}

		fmt.Printf("  Created venue: %s (%s, %d blocks)\n", seed.Name, seed.Confidence, len(seed.BlockedDays))
	}

	return nil
}

// flushCatalogCache drops cached venue catalog entries so the next search
// sees the fresh seed data.
func flushCatalogCache(cfg *config.Config) error {
	err := cache.Init(cache.Config{
		Address:  cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer cache.Close()

	cacheService := cache.NewService(cache.Client())
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return cacheService.DeletePattern(ctx, constants.CACHE_KEY_VENUE_CATALOG+"*")
}

func demoVenues() []venueSeed {
	return []venueSeed{
		{
			Name: "Garden Terrace Makati", Area: "Makati",
			Address: "Ayala Avenue, Makati, Metro Manila",
			Lat:     14.5547, Lng: 121.0244,
			PaxMin: 40, PaxMax: 120,
			PriceFrom: 45000, PriceTo: 120000,
			Rating: 4.6, ReviewCount: 132,
			Confidence: "verified",
			EventTypes: []string{"Wedding", "Debut", "Birthday", "Corporate"},
			Amenities:  []string{"Parking", "Catering", "Outdoor", "Aircon", "Stage", "Photo spots"},
			BlockedDays: []string{
				"2026-02-14", "2026-03-07", "2026-03-21",
			},
		},
		{
			Name: "BGC Loft Hall", Area: "BGC",
			Address: "5th Avenue, Bonifacio Global City, Taguig",
			Lat:     14.5509, Lng: 121.0509,
			PaxMin: 60, PaxMax: 180,
			PriceFrom: 65000, PriceTo: 180000,
			Rating: 4.4, ReviewCount: 88,
			Confidence: "likely",
			EventTypes: []string{"Wedding", "Corporate", "Birthday"},
			Amenities:  []string{"Parking", "Aircon", "Stage", "AV system", "Security"},
			BlockedDays: []string{
				"2026-02-22", "2026-03-01",
			},
		},
		{
			Name: "QC Events Pavilion", Area: "Quezon City",
			Address: "Commonwealth Avenue, Quezon City",
			Lat:     14.6760, Lng: 121.0437,
			PaxMin: 80, PaxMax: 300,
			PriceFrom: 80000, PriceTo: 250000,
			Rating: 4.2, ReviewCount: 215,
			Confidence: "verified",
			EventTypes: []string{"Debut", "Wedding", "Corporate"},
			Amenities:  []string{"Parking", "Catering", "Aircon", "Stage", "Bridal room", "LED wall"},
			BlockedDays: []string{
				"2026-03-15",
			},
		},
		{
			Name: "Alabang Boutique Venue", Area: "Alabang",
			Address: "Madrigal Business Park, Alabang, Muntinlupa",
			Lat:     14.4186, Lng: 121.0410,
			PaxMin: 30, PaxMax: 90,
			PriceFrom: 35000, PriceTo: 95000,
			Rating: 4.7, ReviewCount: 54,
			Confidence: "unverified",
			EventTypes: []string{"Wedding", "Birthday", "Other"},
			Amenities:  []string{"Outdoor", "Photo spots", "Catering", "Parking"},
			BlockedDays: []string{
				"2026-02-10", "2026-02-11", "2026-02-12",
			},
		},
		{
			Name: "Pasay Bayview Ballroom", Area: "Pasay",
			Address: "Roxas Boulevard, Pasay, Metro Manila",
			Lat:     14.5378, Lng: 120.9907,
			PaxMin: 100, PaxMax: 500,
			PriceFrom: 120000, PriceTo: 400000,
			Rating: 4.1, ReviewCount: 401,
			Confidence: "likely",
			EventTypes: []string{"Corporate", "Wedding", "Debut"},
			Amenities:  []string{"Parking", "Aircon", "Stage", "AV system", "Catering", "Accessibility"},
			BlockedDays: []string{
				"2026-04-05",
			},
		},
	}
}
