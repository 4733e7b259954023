package inquiries

import (
	"net/http"
	"strconv"
	"time"

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

func (c *Controller) CreateInquiry(ctx *gin.Context) {
	var req CreateInquiryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	detail, err := c.service.CreateInquiry(ctx.Request.Context(), &req)
	if err != nil {
		switch err {
		case ErrInvalidDateRange, ErrNoRecipients, ErrTooManyRecipients:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, err.Error(), nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to create inquiry", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusCreated, "Inquiry created successfully", detail, nil)
}

func (c *Controller) GetInquiry(ctx *gin.Context) {
	detail, err := c.service.GetInquiry(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		if err == ErrInquiryNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Inquiry not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to get inquiry", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiry retrieved successfully", detail, nil)
}

func (c *Controller) ListInbox(ctx *gin.Context) {
	var filters InboxFilters
	if err := ctx.ShouldBindQuery(&filters); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid query parameters", nil, err.Error())
		return
	}

	result, err := c.service.ListInbox(ctx.Request.Context(), filters)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to list inquiries", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Inquiries retrieved successfully", result, nil)
}

func (c *Controller) UpdateStatus(ctx *gin.Context) {
	var req UpdateStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	inquiry, err := c.service.UpdateStatus(ctx.Request.Context(), ctx.Param("id"), req.Status)
	if err != nil {
		switch err {
		case ErrInquiryNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Inquiry not found", nil, nil)
		case ErrInvalidTransition:
			response.RespondJSON(ctx, "error", http.StatusConflict, "Invalid status transition", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to update status", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Status updated successfully", inquiry, nil)
}

func (c *Controller) RecordPayment(ctx *gin.Context) {
	var req RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	inquiry, err := c.service.RecordPayment(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		switch err {
		case ErrInquiryNotFound:
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Inquiry not found", nil, nil)
		case ErrInvalidPaymentStatus:
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid payment status", nil, nil)
		default:
			response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to record payment", nil, nil)
		}
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Payment recorded successfully", inquiry, nil)
}

func (c *Controller) ProposeDates(ctx *gin.Context) {
	var req ProposeDatesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	if err := c.validator.Struct(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Validation failed", nil, err.Error())
		return
	}

	inquiry, err := c.service.ProposeDates(ctx.Request.Context(), ctx.Param("id"), req.Dates)
	if err != nil {
		if err == ErrInquiryNotFound {
			response.RespondJSON(ctx, "error", http.StatusNotFound, "Inquiry not found", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to propose dates", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Proposed dates saved successfully", inquiry, nil)
}

func (c *Controller) Calendar(ctx *gin.Context) {
	now := time.Now().UTC()

	year := now.Year()
	if raw := ctx.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 2000 || parsed > 2200 {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid year", nil, nil)
			return
		}
		year = parsed
	}

	month := now.Month()
	if raw := ctx.Query("month"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 12 {
			response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid month", nil, nil)
			return
		}
		month = time.Month(parsed)
	}

	calendar, err := c.service.Calendar(ctx.Request.Context(), year, month)
	if err != nil {
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to build calendar", nil, nil)
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Calendar retrieved successfully", calendar, nil)
}
