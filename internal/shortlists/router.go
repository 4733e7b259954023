package shortlists

import (
	"github.com/gin-gonic/gin"
)

// Router handles shortlist routes. Shortlists are shared by token, so
// every route here is public.
type Router struct {
	controller *Controller
}

// NewRouter creates a new shortlists router
func NewRouter(controller *Controller) *Router {
	return &Router{controller: controller}
}

// SetupRoutes registers all shortlist routes
func (shortlistRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	shortlists := rg.Group("/shortlists")
	{
		shortlists.POST("", shortlistRouter.controller.CreateShortlist)
		shortlists.GET("/:token", shortlistRouter.controller.GetByToken)
		shortlists.POST("/:token/items", shortlistRouter.controller.AddItem)
		shortlists.DELETE("/:token/items/:itemId", shortlistRouter.controller.RemoveItem)
	}
}
