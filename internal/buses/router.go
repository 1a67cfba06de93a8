package buses

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBusRoutes configures search and admin inventory routes
func SetupBusRoutes(r gin.IRouter, controller *Controller, cfg *config.Config) {
	auth := middleware.JWTAuthWithConfig(cfg)

	// Search requires a logged in user
	search := r.Group("/ticket_booking")
	search.Use(auth)
	{
		search.GET("/", controller.Search)  // GET /ticket_booking/?source=&destination=&date=&num_tickets=
		search.POST("/", controller.Search) // POST /ticket_booking/
	}

	// Admin inventory management
	r.GET("/admin_dashboard/", auth, middleware.RequireAdmin(), controller.Dashboard)
	r.POST("/add_bus/", auth, middleware.RequireAdmin(), controller.CreateBus)
}
