package routes

import (
	"net/http"
	"time"

	"venuescout/internal/auth"
	"venuescout/internal/availability"
	"venuescout/internal/inquiries"
	"venuescout/internal/search"
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/database"
	"venuescout/internal/shortlists"
	"venuescout/internal/venues"
	"venuescout/pkg/cache"
	"venuescout/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	cache     cache.Service
	publisher inquiries.EventPublisher

	// inquiryService is exposed so main can drive the hold expiry sweep.
	inquiryService inquiries.Service
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, cacheService cache.Service, publisher inquiries.EventPublisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		cache:     cacheService,
		publisher: publisher,
	}
}

// InquiryService returns the inquiry workflow service once routes are set up.
func (r *Router) InquiryService() inquiries.Service {
	return r.inquiryService
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	r.setupHealthRoutes(engine)

	api := engine.Group(r.config.GetAPIBasePath())
	{
		r.setupAuthRoutes(api)

		// Venues before search: the search engine ranks over the venue
		// catalog and the availability block source.
		venueService := r.setupVenueRoutes(api)
		blockSource := r.setupAvailabilityRoutes(api)
		r.setupSearchRoutes(api, venueService, blockSource)

		r.setupInquiryRoutes(api)
		r.setupShortlistRoutes(api)
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "venuescout-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "venuescout-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "operational",
			"api_version": r.config.APIVersion,
			"timestamp":   time.Now(),
		})
	})
}

// setupAuthRoutes configures authentication routes
func (r *Router) setupAuthRoutes(rg *gin.RouterGroup) {
	authRepo := auth.NewRepository(r.db.GetPostgreSQL())
	authService := auth.NewService(authRepo, r.config)
	authController := auth.NewController(authService)
	authRouter := auth.NewRouter(authController)

	authRouter.SetupRoutes(rg)
}

// setupVenueRoutes configures the venue catalog routes and returns the
// service for injection into search.
func (r *Router) setupVenueRoutes(rg *gin.RouterGroup) venues.Service {
	venueRepo := venues.NewRepository(r.db.GetPostgreSQL())
	venueService := venues.NewService(venueRepo, r.cache, r.config)
	venueController := venues.NewController(venueService)
	venueRouter := venues.NewRouter(venueController)

	venueRouter.SetupRoutes(rg)
	return venueService
}

// setupAvailabilityRoutes configures availability block routes and returns
// the block source for injection into search.
func (r *Router) setupAvailabilityRoutes(rg *gin.RouterGroup) search.BlockSource {
	blockRepo := availability.NewRepository(r.db.GetPostgreSQL())
	blockService := availability.NewService(blockRepo)
	blockController := availability.NewController(blockService)
	blockRouter := availability.NewRouter(blockController)

	blockRouter.SetupRoutes(rg)
	return blockService
}

// setupSearchRoutes configures the venue search and ranking routes
func (r *Router) setupSearchRoutes(rg *gin.RouterGroup, venueSource search.VenueSource, blockSource search.BlockSource) {
	appLogger := logger.GetDefault()

	engine := search.NewEngine(blockSource, r.config.Search, appLogger)
	searchService := search.NewService(venueSource, engine, r.config.Search, appLogger)
	searchController := search.NewController(searchService)
	searchRouter := search.NewRouter(searchController)

	searchRouter.SetupRoutes(rg)
}

// setupInquiryRoutes configures the inquiry workflow routes
func (r *Router) setupInquiryRoutes(rg *gin.RouterGroup) {
	inquiryRepo := inquiries.NewRepository(r.db.GetPostgreSQL())
	inquiryService := inquiries.NewService(inquiryRepo, r.publisher, r.config, logger.GetDefault())
	inquiryController := inquiries.NewController(inquiryService)
	inquiryRouter := inquiries.NewRouter(inquiryController)

	r.inquiryService = inquiryService

	inquiryRouter.SetupRoutes(rg)
}

// setupShortlistRoutes configures shareable shortlist routes
func (r *Router) setupShortlistRoutes(rg *gin.RouterGroup) {
	shortlistRepo := shortlists.NewRepository(r.db.GetPostgreSQL())
	shortlistService := shortlists.NewService(shortlistRepo, r.cache, r.config)
	shortlistController := shortlists.NewController(shortlistService)
	shortlistRouter := shortlists.NewRouter(shortlistController)

	shortlistRouter.SetupRoutes(rg)
}
