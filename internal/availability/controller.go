package availability

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

func (c *Controller) CreateBlock(ctx *gin.Context) {
	var req CreateBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	block, err := c.service.CreateBlock(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidDateRange, ErrInvalidBlockType:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create block", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Block created successfully", block, nil)
}

func (c *Controller) GetBlock(ctx *gin.Context) {
	block, err := c.service.GetBlock(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if err == ErrBlockNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Block not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get block", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Block retrieved successfully", block, nil)
}

func (c *Controller) UpdateBlock(ctx *gin.Context) {
	var req UpdateBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	block, err := c.service.UpdateBlock(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		switch err {
		case ErrBlockNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Block not found", nil, nil)
		case ErrInvalidDateRange:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update block", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Block updated successfully", block, nil)
}

func (c *Controller) DeleteBlock(ctx *gin.Context) {
	err := c.service.DeleteBlock(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if err == ErrBlockNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Block not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to delete block", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Block deleted successfully", nil, nil)
}

func (c *Controller) ListForVenue(ctx *gin.Context) {
	blocks, err := c.service.ListForVenue(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Failed to list blocks", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Blocks retrieved successfully", blocks, nil)
}
