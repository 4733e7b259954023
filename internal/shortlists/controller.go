package shortlists

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

func (c *Controller) CreateShortlist(ctx *gin.Context) {
	var req CreateShortlistRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	detail, err := c.service.CreateShortlist(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrNoItems, ErrTooManyItems:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create shortlist", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Shortlist created successfully", detail, nil)
}

func (c *Controller) GetByToken(ctx *gin.Context) {
	detail, err := c.service.GetByToken(ctx.Request.Context(), ctx.Param("token"))
	if err != nil {
		if err == ErrShortlistNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Shortlist not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get shortlist", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Shortlist retrieved successfully", detail, nil)
}

func (c *Controller) AddItem(ctx *gin.Context) {
	var req AddItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	detail, err := c.service.AddItem(ctx.Request.Context(), ctx.Param("token"), &req)
	if err != nil {
		switch err {
		case ErrShortlistNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Shortlist not found", nil, nil)
		case ErrTooManyItems:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to add venue", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue added to shortlist", detail, nil)
}

func (c *Controller) RemoveItem(ctx *gin.Context) {
	err := c.service.RemoveItem(ctx.Request.Context(), ctx.Param("token"), ctx.Param("itemId"))
	if err != nil {
		switch err {
		case ErrShortlistNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Shortlist not found", nil, nil)
		case ErrItemNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Shortlist item not found", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to remove venue", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Venue removed from shortlist", nil, nil)
}
