package bookings

import (
	"fmt"
	"net/http"
	"strconv"

	"busline/internal/buses"
	"busline/internal/shared/apperrors"
	"busline/internal/shared/middleware"
	"busline/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// PassengerProgress handles GET /passenger_details/:bus_id/
//
// @Summary Start or resume passenger entry
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bus_id path int true "Bus ID"
// @Param num_tickets query int false "Ticket count"
// @Success 200 {object} response.StandardApiResponse{data=StagingResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /passenger_details/{bus_id}/ [get]
func (ctrl *Controller) PassengerProgress(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	busID, err := parseID(c, "bus_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var query StagingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}

	bus, area, err := ctrl.service.Progress(c.Request.Context(), sc, busID, query.Tickets())
	if err != nil {
		response.RespondError(c, err)
		return
	}

	resp := ToStagingResponse(bus, area)
	if area.IsComplete() {
		resp.Redirect = ConfirmBookingURL(busID)
	}
	response.RespondJSON(c, "success", http.StatusOK,
		fmt.Sprintf("Enter details for passenger %d of %d", area.CurrentPassenger(), area.NumTickets), resp, nil)
}

// AddPassenger handles POST /passenger_details/:bus_id/
//
// @Summary Stage one passenger
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bus_id path int true "Bus ID"
// @Param num_tickets query int false "Ticket count"
// @Param request body PassengerRequest true "Passenger"
// @Success 200 {object} response.StandardApiResponse{data=StagingResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /passenger_details/{bus_id}/ [post]
func (ctrl *Controller) AddPassenger(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	busID, err := parseID(c, "bus_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}
	var query StagingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}
	var req PassengerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}

	bus, area, err := ctrl.service.StagePassenger(c.Request.Context(), sc, busID, query.Tickets(), req.ToEntry())
	if err != nil {
		response.RespondError(c, err)
		return
	}

	resp := ToStagingResponse(bus, area)
	message := fmt.Sprintf("Passenger %d of %d saved", area.Count(), area.NumTickets)
	if area.IsComplete() {
		resp.Redirect = ConfirmBookingURL(busID)
		message = "All passengers entered, confirm your booking"
	} else {
		resp.Redirect = buses.PassengerDetailsURL(busID, area.NumTickets)
	}
	response.RespondJSON(c, "success", http.StatusOK, message, resp, nil)
}

// Summary handles GET /confirm_booking/:bus_id/
//
// @Summary Staged booking summary
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bus_id path int true "Bus ID"
// @Success 200 {object} response.StandardApiResponse{data=SummaryResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /confirm_booking/{bus_id}/ [get]
func (ctrl *Controller) Summary(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	busID, err := parseID(c, "bus_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	summary, err := ctrl.service.Summary(c.Request.Context(), sc, busID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusOK, "Booking summary retrieved", ToSummaryResponse(summary), nil)
}

// Confirm handles POST /confirm_booking/:bus_id/
//
// @Summary Commit the staged booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param bus_id path int true "Bus ID"
// @Success 201 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 402 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Failure 409 {object} response.StandardApiResponse
// @Failure 503 {object} response.StandardApiResponse
// @Router /confirm_booking/{bus_id}/ [post]
func (ctrl *Controller) Confirm(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	busID, err := parseID(c, "bus_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	booking, err := ctrl.service.Commit(c.Request.Context(), sc, busID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	resp := ToBookingResponse(booking)
	resp.Redirect = BookingSuccessURL(booking.ID)
	response.RespondJSON(c, "success", http.StatusCreated, "Booking confirmed", resp, nil)
}

// Success handles GET /booking_success/:booking_id/
//
// @Summary Booking confirmation
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param booking_id path int true "Booking ID"
// @Success 200 {object} response.StandardApiResponse{data=BookingResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /booking_success/{booking_id}/ [get]
func (ctrl *Controller) Success(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	bookingID, err := parseID(c, "booking_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	booking, balance, err := ctrl.service.GetForOwner(c.Request.Context(), sc, bookingID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	resp := ToBookingResponse(booking)
	resp.WalletBalance = &balance
	response.RespondJSON(c, "success", http.StatusOK, "Booking retrieved successfully", resp, nil)
}

// Ticket handles GET /booking_success/:booking_id/ticket.pdf
//
// @Summary E-ticket PDF
// @Tags bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param booking_id path int true "Booking ID"
// @Success 200 {file} file
// @Failure 401 {object} response.StandardApiResponse
// @Failure 404 {object} response.StandardApiResponse
// @Router /booking_success/{booking_id}/ticket.pdf [get]
func (ctrl *Controller) Ticket(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}
	bookingID, err := parseID(c, "booking_id")
	if err != nil {
		response.RespondError(c, err)
		return
	}

	pdf, err := ctrl.service.Ticket(c.Request.Context(), sc, bookingID)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`inline; filename="ticket-%d.pdf"`, bookingID))
	c.Data(http.StatusOK, "application/pdf", pdf)
}

func parseID(c *gin.Context, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.Validation("Invalid "+param,
			apperrors.FieldError{Field: param, Message: "must be a positive integer"})
	}
	return uint(id), nil
}
