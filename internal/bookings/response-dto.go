package bookings

import (
	"fmt"
	"time"

	"busline/internal/buses"
	"busline/internal/staging"
	"busline/pkg/money"
)

type StagingResponse struct {
	Bus              buses.BusResponse        `json:"bus"`
	NumTickets       int                      `json:"num_tickets"`
	Count            int                      `json:"count"`
	CurrentPassenger int                      `json:"current_passenger"`
	Remaining        int                      `json:"remaining"`
	Complete         bool                     `json:"complete"`
	Passengers       []staging.PassengerEntry `json:"passengers"`
	Redirect         string                   `json:"redirect,omitempty"`
}

type SummaryResponse struct {
	Bus           buses.BusResponse        `json:"bus"`
	NumTickets    int                      `json:"num_tickets"`
	Passengers    []staging.PassengerEntry `json:"passengers"`
	TotalFare     money.Amount             `json:"total_fare"`
	WalletBalance money.Amount             `json:"wallet_balance"`
	Complete      bool                     `json:"complete"`
	CanAfford     bool                     `json:"can_afford"`
}

type PassengerResponse struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	SeatPreference string `json:"seat_preference"`
	Position       int    `json:"position"`
}

type BookingResponse struct {
	ID            uint                `json:"id"`
	BookingRef    string              `json:"booking_ref"`
	Status        Status              `json:"status"`
	NumTickets    int                 `json:"num_tickets"`
	TotalFare     money.Amount        `json:"total_fare"`
	CreatedAt     time.Time           `json:"created_at"`
	Bus           *buses.BusResponse  `json:"bus,omitempty"`
	Passengers    []PassengerResponse `json:"passengers"`
	WalletBalance *money.Amount       `json:"wallet_balance,omitempty"`
	TicketURL     string              `json:"ticket_url"`
	Redirect      string              `json:"redirect,omitempty"`
}

func ToStagingResponse(bus *buses.Bus, area *staging.Area) StagingResponse {
	resp := StagingResponse{
		Bus:              buses.ToBusResponse(*bus),
		NumTickets:       area.NumTickets,
		Count:            area.Count(),
		CurrentPassenger: area.CurrentPassenger(),
		Remaining:        area.Remaining(),
		Complete:         area.IsComplete(),
		Passengers:       area.Passengers,
	}
	if resp.Passengers == nil {
		resp.Passengers = []staging.PassengerEntry{}
	}
	return resp
}

func ToSummaryResponse(s *Summary) SummaryResponse {
	resp := SummaryResponse{
		Bus:           buses.ToBusResponse(*s.Bus),
		Passengers:    []staging.PassengerEntry{},
		TotalFare:     s.TotalFare,
		WalletBalance: s.WalletBalance,
		Complete:      s.IsComplete(),
	}
	if s.Area != nil {
		resp.NumTickets = s.Area.NumTickets
		resp.Passengers = append(resp.Passengers, s.Area.Passengers...)
	}
	resp.CanAfford = !s.WalletBalance.LessThan(s.TotalFare)
	return resp
}

func ToBookingResponse(b *Booking) BookingResponse {
	resp := BookingResponse{
		ID:         b.ID,
		BookingRef: b.BookingRef,
		Status:     b.Status,
		NumTickets: b.NumTickets,
		TotalFare:  b.TotalFare,
		CreatedAt:  b.CreatedAt,
		Passengers: make([]PassengerResponse, 0, len(b.Passengers)),
		TicketURL:  TicketURL(b.ID),
	}
	if b.Bus != nil {
		bus := buses.ToBusResponse(*b.Bus)
		resp.Bus = &bus
	}
	for _, p := range b.Passengers {
		resp.Passengers = append(resp.Passengers, PassengerResponse{
			Name:           p.Name,
			Age:            p.Age,
			Gender:         string(p.Gender),
			SeatPreference: string(p.SeatPreference),
			Position:       p.Position,
		})
	}
	return resp
}

func ConfirmBookingURL(busID uint) string {
	return fmt.Sprintf("/confirm_booking/%d/", busID)
}

func BookingSuccessURL(bookingID uint) string {
	return fmt.Sprintf("/booking_success/%d/", bookingID)
}

func TicketURL(bookingID uint) string {
	return fmt.Sprintf("/booking_success/%d/ticket.pdf", bookingID)
}
