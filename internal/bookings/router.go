package bookings

import (
	"busline/internal/shared/config"
	"busline/internal/shared/middleware"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes configures the passenger, confirmation and success routes
func SetupBookingRoutes(r gin.IRouter, controller *Controller, cfg *config.Config) {
	auth := middleware.JWTAuthWithConfig(cfg)

	passengers := r.Group("/passenger_details")
	passengers.Use(auth)
	{
		passengers.GET("/:bus_id/", controller.PassengerProgress) // GET /passenger_details/:bus_id/?num_tickets=N
		passengers.POST("/:bus_id/", controller.AddPassenger)     // POST /passenger_details/:bus_id/?num_tickets=N
	}

	confirm := r.Group("/confirm_booking")
	confirm.Use(auth)
	{
		confirm.GET("/:bus_id/", controller.Summary)  // GET /confirm_booking/:bus_id/
		confirm.POST("/:bus_id/", controller.Confirm) // POST /confirm_booking/:bus_id/
	}

	success := r.Group("/booking_success")
	success.Use(auth)
	{
		success.GET("/:booking_id/", controller.Success)          // GET /booking_success/:booking_id/
		success.GET("/:booking_id/ticket.pdf", controller.Ticket) // GET /booking_success/:booking_id/ticket.pdf
	}
}
