package tickets

import "github.com/gin-gonic/gin"

// SetupTicketRoutes configures the ticket retrieval routes
func SetupTicketRoutes(rg *gin.RouterGroup, controller *Controller) {
	tickets := rg.Group("/tickets")
	{
		tickets.GET("", controller.ListTickets)              // GET /api/v1/tickets
		tickets.GET("/:id/pass", controller.GetPass)         // GET /api/v1/tickets/:id/pass
		tickets.GET("/:id/qr", controller.GetQR)             // GET /api/v1/tickets/:id/qr
		tickets.POST("/validate", controller.ValidateTicket) // POST /api/v1/tickets/validate
	}
}
