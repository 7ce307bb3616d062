package profile

import "github.com/gin-gonic/gin"

// SetupProfileRoutes configures the profile and data-management routes
func SetupProfileRoutes(rg *gin.RouterGroup, controller *Controller) {
	rg.GET("/profile", controller.GetProfile)    // GET /api/v1/profile
	rg.PUT("/profile", controller.UpdateProfile) // PUT /api/v1/profile
	rg.DELETE("/data", controller.WipeData)      // DELETE /api/v1/data
}
