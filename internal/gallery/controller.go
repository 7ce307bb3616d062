package gallery

import (
	"net/http"

	"eventx/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// ListGallery handles GET /api/v1/gallery
func (c *Controller) ListGallery(ctx *gin.Context) {
	list, err := c.service.ListAttendedEvents(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load gallery", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Gallery retrieved successfully", list)
}

// AddToGallery handles POST /api/v1/gallery
func (c *Controller) AddToGallery(ctx *gin.Context) {
	var req AttendedEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid gallery entry", err.Error())
		return
	}

	event, err := c.service.AddAttendedEvent(ctx.Request.Context(), req)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to add gallery entry", err.Error())
		return
	}
	response.Success(ctx, http.StatusCreated, "Gallery entry added successfully", event)
}
