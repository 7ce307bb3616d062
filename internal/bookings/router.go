package bookings

import "github.com/gin-gonic/gin"

// SetupBookingRoutes configures the booking routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller *Controller) {
	bookingsGroup := rg.Group("/bookings")
	{
		bookingsGroup.POST("", controller.CreateBooking) // POST /api/v1/bookings
		bookingsGroup.GET("", controller.ListBookings)   // GET /api/v1/bookings
	}
}
