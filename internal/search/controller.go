package search

import (
	"net/http"

	"venuescout/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Controller struct {
	service   Service
	validator *validator.Validate
}

func NewController(service Service) *Controller {
	return &Controller{
		service:   service,
		validator: validator.New(),
	}
}

// Search handles GET /search.
func (c *Controller) Search(ctx *gin.Context) {
	var req SearchRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	if (req.Lat == nil) != (req.Lng == nil) {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "lat and lng must be provided together", nil, nil)
		return
	}

	criteria := req.ToCriteria()
	if criteria.HasDateRange() && criteria.DateEnd < criteria.DateStart {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "date_end must not be before date_start", nil, nil)
		return
	}

	venues, err := c.service.Search(ctx.Request.Context(), criteria, req.UserLocation())
	if err != nil {
		if err == ErrInvalidDateRange {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "date_end must not be before date_start", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to search venues", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", SearchResponse{
		Venues: venues,
		Count:  len(venues),
	}, nil)
}
