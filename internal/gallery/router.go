package gallery

import "github.com/gin-gonic/gin"

// SetupGalleryRoutes configures the attended-events gallery routes
func SetupGalleryRoutes(rg *gin.RouterGroup, controller *Controller) {
	galleryGroup := rg.Group("/gallery")
	{
		galleryGroup.GET("", controller.ListGallery)   // GET /api/v1/gallery
		galleryGroup.POST("", controller.AddToGallery) // POST /api/v1/gallery
	}
}
