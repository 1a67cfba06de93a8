package buses

import (
	"net/http"

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

// Search handles GET and POST /ticket_booking/
//
// @Summary Search buses by route and date
// @Tags buses
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param source query string false "Source"
// @Param destination query string false "Destination"
// @Param date query string false "Date (YYYY-MM-DD)"
// @Param num_tickets query int false "Ticket count"
// @Success 200 {object} response.StandardApiResponse{data=SearchResponse}
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Router /ticket_booking/ [get]
// @Router /ticket_booking/ [post]
func (ctrl *Controller) Search(c *gin.Context) {
	var req SearchRequest
	var err error
	if c.Request.Method == http.MethodGet {
		err = c.ShouldBindQuery(&req)
		// A bare GET is the empty search form
		if req.IsEmpty() {
			response.RespondJSON(c, "success", http.StatusOK,
				"Provide source, destination, date and num_tickets to search",
				SearchResponse{Buses: []BusResponse{}}, nil)
			return
		}
	} else {
		err = c.ShouldBindJSON(&req)
	}
	if err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}

	list, err := ctrl.service.Search(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	results := make([]BusResponse, 0, len(list))
	for _, b := range list {
		item := ToBusResponse(b)
		item.BookURL = PassengerDetailsURL(b.ID, req.NumTickets)
		results = append(results, item)
	}

	response.RespondJSON(c, "success", http.StatusOK, "Buses retrieved successfully", SearchResponse{
		Source:      req.Source,
		Destination: req.Destination,
		Date:        req.Date,
		NumTickets:  req.NumTickets,
		Buses:       results,
	}, nil)
}

// Dashboard handles GET /admin_dashboard/
//
// @Summary List all buses
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.StandardApiResponse{data=DashboardResponse}
// @Failure 401 {object} response.StandardApiResponse
// @Failure 403 {object} response.StandardApiResponse
// @Router /admin_dashboard/ [get]
func (ctrl *Controller) Dashboard(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	list, err := ctrl.service.ListBuses(c.Request.Context(), sc)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	results := make([]BusResponse, 0, len(list))
	for _, b := range list {
		results = append(results, ToBusResponse(b))
	}

	response.RespondJSON(c, "success", http.StatusOK, "Buses retrieved successfully",
		DashboardResponse{Buses: results, Total: len(results)}, nil)
}

// CreateBus handles POST /add_bus/
//
// @Summary Add a bus
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateBusRequest true "Bus"
// @Success 201 {object} response.StandardApiResponse
// @Failure 400 {object} response.StandardApiResponse
// @Failure 401 {object} response.StandardApiResponse
// @Failure 403 {object} response.StandardApiResponse
// @Router /add_bus/ [post]
func (ctrl *Controller) CreateBus(c *gin.Context) {
	sc, err := middleware.CurrentSession(c)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	var req CreateBusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, apperrors.FromBinding(err))
		return
	}

	bus, err := ctrl.service.CreateBus(c.Request.Context(), sc, req)
	if err != nil {
		response.RespondError(c, err)
		return
	}

	response.RespondJSON(c, "success", http.StatusCreated, "Bus added successfully", gin.H{
		"bus":      ToBusResponse(*bus),
		"redirect": "/admin_dashboard/",
	}, nil)
}
