// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"eventx/internal/bookings"
	"eventx/internal/events"
	"eventx/internal/gallery"
	"eventx/internal/notifications"
	"eventx/internal/payments"
	"eventx/internal/profile"
	"eventx/internal/shared/config"
	"eventx/internal/shared/database"
	"eventx/internal/shared/storage"
	"eventx/internal/tickets"
	"eventx/internal/wallet"
	"eventx/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Dependencies holds the collaborators built in main that the routers
// wire into the domain services.
type Dependencies struct {
	KV      storage.KV
	Gateway payments.Gateway
	Wallet  wallet.Sink
	Notify  notifications.Sink
	Logger  *logger.Logger
}

// Router holds all route dependencies
type Router struct {
	config *config.Config
	db     *database.DB
	deps   Dependencies

	// Services shared across route groups (dependency injection)
	eventService   events.Service
	profileService profile.Service
	ticketRepo     tickets.Repository
	passEncoder    *tickets.PassEncoder
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, deps Dependencies) *Router {
	return &Router{
		config: cfg,
		db:     db,
		deps:   deps,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	// Prometheus metrics
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := engine.Group(r.config.GetAPIBasePath())
	{
		// Setup catalog routes (must be first: bookings depend on the
		// event service)
		r.setupEventRoutes(api)

		// Setup profile routes (bookings gate notifications on it)
		r.setupProfileRoutes(api)

		// Setup ticket retrieval routes
		r.setupTicketRoutes(api)

		// Setup booking routes
		r.setupBookingRoutes(api)

		// Setup gallery routes (only when the structured store is up)
		if r.db.Gallery != nil {
			r.setupGalleryRoutes(api)
		}
	}
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/health", func(c *gin.Context) {
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "eventx-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "eventx-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})
}

// setupEventRoutes configures event catalog routes
func (r *Router) setupEventRoutes(rg *gin.RouterGroup) {
	eventRepo := events.NewRepository(r.deps.KV)
	r.eventService = events.NewService(eventRepo)
	eventController := events.NewController(r.eventService)

	events.SetupEventRoutes(rg, eventController)
}

// setupProfileRoutes configures profile and data-management routes
func (r *Router) setupProfileRoutes(rg *gin.RouterGroup) {
	profileRepo := profile.NewRepository(r.deps.KV)
	r.profileService = profile.NewService(profileRepo, r.deps.KV)
	profileController := profile.NewController(r.profileService)

	profile.SetupProfileRoutes(rg, profileController)
}

// setupTicketRoutes configures ticket retrieval routes
func (r *Router) setupTicketRoutes(rg *gin.RouterGroup) {
	r.ticketRepo = tickets.NewRepository(r.deps.KV, r.deps.Logger)
	r.passEncoder = tickets.NewPassEncoder(
		r.config.Wallet.PassTypeIdentifier,
		r.config.Wallet.TeamIdentifier,
		r.config.Wallet.OrganizationName,
	)
	ticketService := tickets.NewService(r.ticketRepo, r.passEncoder)
	ticketController := tickets.NewController(ticketService)

	tickets.SetupTicketRoutes(rg, ticketController)
}

// setupBookingRoutes configures the issuance pipeline routes
func (r *Router) setupBookingRoutes(rg *gin.RouterGroup) {
	bookingRepo := bookings.NewRepository(r.deps.KV, r.deps.Logger)
	bookingService := bookings.NewService(
		bookings.Options{
			Currency:      r.config.Payment.Currency,
			ChargeTimeout: r.config.Payment.Timeout,
		},
		r.eventService,
		r.deps.Gateway,
		bookingRepo,
		r.ticketRepo,
		r.passEncoder,
		r.deps.Wallet,
		r.deps.Notify,
		r.profileService,
		r.deps.Logger,
	)
	bookingController := bookings.NewController(bookingService)

	bookings.SetupBookingRoutes(rg, bookingController)
}

// setupGalleryRoutes configures attended-events gallery routes
func (r *Router) setupGalleryRoutes(rg *gin.RouterGroup) {
	galleryRepo := gallery.NewRepository(r.db.Gallery)
	galleryService := gallery.NewService(galleryRepo)
	galleryController := gallery.NewController(galleryService)

	gallery.SetupGalleryRoutes(rg, galleryController)
}
