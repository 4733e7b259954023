package venues

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

func (c *Controller) CreateVenue(ctx *gin.Context) {
	var req CreateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	detail, err := c.service.CreateVenue(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidPriceRange, ErrInvalidPaxRange, ErrInvalidConfidence:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create venue", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Venue created successfully", detail, nil)
}

func (c *Controller) GetVenue(ctx *gin.Context) {
	detail, err := c.service.GetVenue(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if err == ErrVenueNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get venue", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue retrieved successfully", detail, nil)
}

func (c *Controller) ListVenues(ctx *gin.Context) {
	var filters VenueFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListVenues(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list venues", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venues retrieved successfully", result, nil)
}

func (c *Controller) UpdateVenue(ctx *gin.Context) {
	var req UpdateVenueRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	detail, err := c.service.UpdateVenue(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		switch err {
		case ErrVenueNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update venue", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue updated successfully", detail, nil)
}

func (c *Controller) DeleteVenue(ctx *gin.Context) {
	err := c.service.DeleteVenue(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if err == ErrVenueNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete venue", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue deleted successfully", nil, nil)
}

func (c *Controller) SetConfidence(ctx *gin.Context) {
	var req SetConfidenceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	err := c.service.SetConfidence(ctx.Request.Context(), ctx.Param("id"), req.Confidence)
	if err != nil {
		switch err {
		case ErrVenueNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Venue not found", nil, nil)
		case ErrInvalidConfidence:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid confidence tier", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to set confidence", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Confidence updated successfully", nil, nil)
}

func (c *Controller) ListAmenities(ctx *gin.Context) {
	amenities, err := c.service.ListAmenities(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list amenities", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Amenities retrieved successfully", amenities, nil)
}

func (c *Controller) ListEventTypes(ctx *gin.Context) {
	eventTypes, err := c.service.ListEventTypes(ctx.Request.Context())
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list event types", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Event types retrieved successfully", eventTypes, nil)
}
