package tickets

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

// ListTickets handles GET /api/v1/tickets
func (c *Controller) ListTickets(ctx *gin.Context) {
	list, err := c.service.ListTickets(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load tickets", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Tickets retrieved successfully", list)
}

// GetPass handles GET /api/v1/tickets/:id/pass
func (c *Controller) GetPass(ctx *gin.Context) {
	pass, err := c.service.GetPass(ctx.Request.Context(), ctx.Param("id"))
	if errors.Is(err, ErrNotFound) {
		response.Error(ctx, http.StatusNotFound, "Ticket not found", nil)
		return
	}
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to generate pass", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Pass generated successfully", pass)
}

// GetQR handles GET /api/v1/tickets/:id/qr
func (c *Controller) GetQR(ctx *gin.Context) {
	png, err := c.service.RenderQR(ctx.Request.Context(), ctx.Param("id"), 256)
	if errors.Is(err, ErrNotFound) {
		response.Error(ctx, http.StatusNotFound, "Ticket not found", nil)
		return
	}
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to generate QR code", err.Error())
		return
	}
	ctx.Data(http.StatusOK, "image/png", png)
}

// ValidateTicket handles POST /api/v1/tickets/validate
func (c *Controller) ValidateTicket(ctx *gin.Context) {
	var req struct {
		QRData string `json:"qr_data" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result := c.service.Validate(req.QRData)
	response.Success(ctx, http.StatusOK, "Validation complete", result)
}
