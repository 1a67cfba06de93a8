package buses

import (
	"time"

	"busline/pkg/money"
)

// SearchRequest binds from the query string on GET and from JSON on POST.
type SearchRequest struct {
	Source      string `form:"source" json:"source" binding:"required,max=100"`
	Destination string `form:"destination" json:"destination" binding:"required,max=100"`
	Date        string `form:"date" json:"date" binding:"required,datetime=2006-01-02"`
	NumTickets  int    `form:"num_tickets" json:"num_tickets" binding:"required,min=1"`
}

func (r SearchRequest) IsEmpty() bool {
	return r.Source == "" && r.Destination == "" && r.Date == "" && r.NumTickets == 0
}

type CreateBusRequest struct {
	BusName       string       `json:"bus_name" binding:"required,max=100"`
	BusNumber     string       `json:"bus_number" binding:"required,max=20"`
	Source        string       `json:"source" binding:"required,max=100"`
	Destination   string       `json:"destination" binding:"required,max=100"`
	DepartureTime time.Time    `json:"departure_time" binding:"required"`
	ArrivalTime   *time.Time   `json:"arrival_time"`
	Fare          money.Amount `json:"fare" binding:"min=0"`
	TotalSeats    int          `json:"total_seats" binding:"required,min=1"`
}
