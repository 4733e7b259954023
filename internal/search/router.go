package search

import (
	"github.com/gin-gonic/gin"
)

// Router handles search routes
type Router struct {
	controller *Controller
}

// NewRouter creates a new search router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
	}
}

// SetupRoutes registers the search routes
func (searchRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	rg.GET("/search", searchRouter.controller.Search)
}
