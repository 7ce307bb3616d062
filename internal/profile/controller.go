package profile

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

// GetProfile handles GET /api/v1/profile
func (c *Controller) GetProfile(ctx *gin.Context) {
	p, err := c.service.GetProfile(ctx.Request.Context())
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to load profile", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Profile retrieved successfully", p)
}

// UpdateProfile handles PUT /api/v1/profile
func (c *Controller) UpdateProfile(ctx *gin.Context) {
	var p UserProfile
	if err := ctx.ShouldBindJSON(&p); err != nil {
		response.Error(ctx, http.StatusBadRequest, "Invalid profile data", err.Error())
		return
	}

	saved, err := c.service.UpdateProfile(ctx.Request.Context(), p)
	if err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to save profile", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "Profile updated successfully", saved)
}

// WipeData handles DELETE /api/v1/data
func (c *Controller) WipeData(ctx *gin.Context) {
	if err := c.service.WipeData(ctx.Request.Context()); err != nil {
		response.Error(ctx, http.StatusInternalServerError, "Failed to clear data", err.Error())
		return
	}
	response.Success(ctx, http.StatusOK, "All data cleared successfully", nil)
}
