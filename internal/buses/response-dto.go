package buses

import (
	"fmt"
	"time"

	"busline/pkg/money"
)

type BusResponse struct {
	ID             uint         `json:"id"`
	BusName        string       `json:"bus_name"`
	BusNumber      string       `json:"bus_number"`
	Source         string       `json:"source"`
	Destination    string       `json:"destination"`
	DepartureTime  time.Time    `json:"departure_time"`
	ArrivalTime    *time.Time   `json:"arrival_time,omitempty"`
	Fare           money.Amount `json:"fare"`
	TotalSeats     int          `json:"total_seats"`
	AvailableSeats int          `json:"available_seats"`
	BookURL        string       `json:"book_url,omitempty"`
}

type SearchResponse struct {
	Source      string        `json:"source"`
	Destination string        `json:"destination"`
	Date        string        `json:"date"`
	NumTickets  int           `json:"num_tickets"`
	Buses       []BusResponse `json:"buses"`
}

type DashboardResponse struct {
	Buses []BusResponse `json:"buses"`
	Total int           `json:"total"`
}

func ToBusResponse(b Bus) BusResponse {
	return BusResponse{
		ID:             b.ID,
		BusName:        b.BusName,
		BusNumber:      b.BusNumber,
		Source:         b.Source,
		Destination:    b.Destination,
		DepartureTime:  b.DepartureTime,
		ArrivalTime:    b.ArrivalTime,
		Fare:           b.Fare,
		TotalSeats:     b.TotalSeats,
		AvailableSeats: b.AvailableSeats,
	}
}

// PassengerDetailsURL is where the booking flow continues for a chosen bus.
func PassengerDetailsURL(busID uint, numTickets int) string {
	return fmt.Sprintf("/passenger_details/%d/?num_tickets=%d", busID, numTickets)
}
