package notifications

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventTypeBookingConfirmed EventType = "booking.confirmed"
)

// PassengerInfo is the passenger view carried on booking events.
type PassengerInfo struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	SeatPreference string `json:"seat_preference"`
}

// BookingConfirmed is emitted once per committed booking.
type BookingConfirmed struct {
	EventID    uuid.UUID       `json:"event_id"`
	Type       EventType       `json:"type"`
	BookingID  uint            `json:"booking_id"`
	BookingRef string          `json:"booking_ref"`
	UserID     uuid.UUID       `json:"user_id"`
	BusID      uint            `json:"bus_id"`
	NumTickets int             `json:"num_tickets"`
	TotalFare  string          `json:"total_fare"`
	Passengers []PassengerInfo `json:"passengers"`
	CreatedAt  time.Time       `json:"created_at"`
}

// NewBookingConfirmed fills in the event id and type.
func NewBookingConfirmed(bookingID uint, ref string, userID uuid.UUID, busID uint, numTickets int, totalFare string, passengers []PassengerInfo, createdAt time.Time) BookingConfirmed {
	return BookingConfirmed{
		EventID:    uuid.New(),
		Type:       EventTypeBookingConfirmed,
		BookingID:  bookingID,
		BookingRef: ref,
		UserID:     userID,
		BusID:      busID,
		NumTickets: numTickets,
		TotalFare:  totalFare,
		Passengers: passengers,
		CreatedAt:  createdAt,
	}
}

// PartitionKey keeps every event of one booking on a single partition.
func (e BookingConfirmed) PartitionKey() string {
	if e.BookingRef != "" {
		return e.BookingRef
	}
	return strconv.FormatUint(uint64(e.BookingID), 10)
}

func (e BookingConfirmed) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}
