package availability

import (
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles availability block routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new availability router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all availability routes
func (blockRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	// Public read of a venue's blocks (calendars need this)
	rg.GET("/venues/:id/blocks", blockRouter.controller.ListForVenue)

	// Staff block management
	blocks := rg.Group("/blocks")
	blocks.Use(middleware.JWTAuthWithConfig(blockRouter.config), middleware.RequireStaff())
	{
		blocks.POST("", blockRouter.controller.CreateBlock)
		blocks.GET("/:id", blockRouter.controller.GetBlock)
		blocks.PUT("/:id", blockRouter.controller.UpdateBlock)
		blocks.DELETE("/:id", blockRouter.controller.DeleteBlock)
	}
}
