package events

import (
	"errors"
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

// ListEvents handles GET /api/v1/events
func (c *Controller) ListEvents(ctx *gin.Context) {
	list, err := c.service.ListEvents(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load events", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Events retrieved successfully", list)
}

// GetEvent handles GET /api/v1/events/:id
func (c *Controller) GetEvent(ctx *gin.Context) {
	event, err := c.service.GetEvent(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, ErrNotFound) {
		response.Error(ctx, http.StatusNotFound, "Event not found", nil)
		return
	}
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load event", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Event retrieved successfully", event)
}
