// api/routes/router.go
package routes

import (
	"net/http"
	"time"

	"busline/internal/auth"
	"busline/internal/bookings"
	"busline/internal/buses"
	"busline/internal/notifications"
	"busline/internal/shared/config"
	"busline/internal/shared/database"
	"busline/internal/shared/database/tx"
	"busline/internal/shared/metrics"
	"busline/internal/staging"
	"busline/internal/wallets"
	"busline/pkg/cache"

	_ "busline/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Router holds all route dependencies
type Router struct {
	config    *config.Config
	db        *database.DB
	publisher notifications.Publisher
}

// NewRouter creates a new router instance
func NewRouter(cfg *config.Config, db *database.DB, publisher notifications.Publisher) *Router {
	return &Router{
		config:    cfg,
		db:        db,
		publisher: publisher,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes(engine *gin.Engine) {
	// Health check and basic info endpoints
	r.setupHealthRoutes(engine)

	pg := r.db.PostgreSQL
	transactor := tx.NewManager(pg)
	cacheService := cache.NewService(r.db.Redis)

	// Repositories
	busRepo := buses.NewRepository(pg)
	walletRepo := wallets.NewRepository(pg)
	bookingRepo := bookings.NewRepository(pg)
	authRepo := auth.NewRepository(pg)

	// Services
	stagingService := staging.NewService(staging.NewRedisStore(r.db.Redis, r.config.Redis.SessionTTL), r.config.Booking.MaxTickets)
	busService := buses.NewService(busRepo, cacheService, r.config.Redis.CacheTTL, r.config.Booking.MaxTickets)
	walletService := wallets.NewService(walletRepo)
	authService := auth.NewService(authRepo, transactor, walletRepo, stagingService, r.config)
	bookingService := bookings.NewService(bookingRepo, transactor, busRepo, walletRepo, stagingService,
		r.publisher, busService, bookings.Options{PreventOverbooking: r.config.Booking.PreventOverbooking})

	// Domain routes
	auth.NewRouter(auth.NewController(authService), r.config).SetupRoutes(engine)
	buses.SetupBusRoutes(engine, buses.NewController(busService), r.config)
	bookings.SetupBookingRoutes(engine, bookings.NewController(bookingService), r.config)
	wallets.SetupWalletRoutes(engine, wallets.NewController(walletService), r.config)

	// API docs
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// setupHealthRoutes sets up health check and system status routes
func (r *Router) setupHealthRoutes(engine *gin.Engine) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "busline",
			"version": r.config.APIVersion,
			"links": gin.H{
				"register":       "/register/",
				"login":          "/login/",
				"ticket_booking": "/ticket_booking/",
				"add_money":      "/add_money/",
				"docs":           "/swagger/index.html",
			},
		})
	})

	engine.GET("/health", func(c *gin.Context) {
		// Perform health checks
		if err := r.db.HealthCheck(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":    "unhealthy",
				"error":     err.Error(),
				"timestamp": time.Now(),
				"service":   "busline-backend",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now(),
			"service":   "busline-backend",
		})
	})

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
			"version": r.config.APIVersion,
		})
	})

	engine.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":                 "operational",
			"api_version":            r.config.APIVersion,
			"timestamp":              time.Now(),
			"kafka":                  r.config.Kafka.Enabled,
			"overbooking_protection": r.config.Booking.PreventOverbooking,
		})
	})

	if r.config.MetricsEnabled {
		engine.GET("/metrics", metrics.Handler())
	}
}
