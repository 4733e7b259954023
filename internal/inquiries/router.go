package inquiries

import (
	"venuescout/internal/shared/config"
	"venuescout/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// Router handles inquiry workflow routes
type Router struct {
	controller *Controller
	config     *config.Config
}

// NewRouter creates a new inquiries router
func NewRouter(controller *Controller) *Router {
	return &Router{
		controller: controller,
		config:     config.Load(),
	}
}

// SetupRoutes registers all inquiry routes
func (inquiryRouter *Router) SetupRoutes(rg *gin.RouterGroup) {
	inquiries := rg.Group("/inquiries")
	{
		// Customers submit inquiries without an account
		inquiries.POST("", inquiryRouter.controller.CreateInquiry)

		// Staff inbox and workflow
		staff := inquiries.Group("")
		staff.Use(middleware.JWTAuthWithConfig(inquiryRouter.config), middleware.RequireStaff())
		{
			staff.GET("", inquiryRouter.controller.ListInbox)
			staff.GET("/calendar", inquiryRouter.controller.Calendar)
			staff.GET("/:id", inquiryRouter.controller.GetInquiry)
			staff.PUT("/:id/status", inquiryRouter.controller.UpdateStatus)
			staff.PUT("/:id/payment", inquiryRouter.controller.RecordPayment)
			staff.PUT("/:id/proposed-dates", inquiryRouter.controller.ProposeDates)
		}
	}
}
