package venues

import (
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles venue catalog routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new venues router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all venue routes
func (venueRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	venues := rg.Group("/venues")
	{
		// Public browsing routes
		venues.GET("", venueRouter.controller.ListVenues)
		venues.GET("/:id", venueRouter.controller.GetVenue)

		// Staff catalog management
		staff := venues.Group("")
		staff.Use(middleware.JWTAuthWithConfig(venueRouter.config), middleware.RequireStaff())
		{
			staff.POST("", venueRouter.controller.CreateVenue)
			staff.PUT("/:id", venueRouter.controller.UpdateVenue)
			staff.DELETE("/:id", venueRouter.controller.DeleteVenue)
			staff.PUT("/:id/confidence", venueRouter.controller.SetConfidence)
		}
	}

	// Filter vocabularies for the search UI
	rg.GET("/amenities", venueRouter.controller.ListAmenities)
	rg.GET("/event-types", venueRouter.controller.ListEventTypes)
}
