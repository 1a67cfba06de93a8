package bookings

import (
	"time"

	"busline/internal/buses"
	"busline/internal/staging"
	"busline/pkg/money"

	"github.com/google/uuid"
)

type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
)

func (s Status) String() string {
	return string(s)
}

// Booking is a committed purchase of NumTickets seats on one bus.
// TotalFare is frozen at commit time.
type Booking struct {
	ID         uint         `gorm:"primaryKey" json:"id"`
	BookingRef string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"booking_ref"`
	UserID     uuid.UUID    `gorm:"type:uuid;index;not null" json:"user_id"`
	BusID      uint         `gorm:"index;not null" json:"bus_id"`
	NumTickets int          `gorm:"not null" json:"num_tickets"`
	TotalFare  money.Amount `gorm:"type:numeric(12,2);not null" json:"total_fare"`
	Status     Status       `gorm:"type:varchar(20);not null;default:'CONFIRMED'" json:"status"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`

	// Relationships
	Passengers []Passenger `json:"passengers" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE;"`
	Bus        *buses.Bus  `json:"bus,omitempty" gorm:"foreignKey:BusID"`
}

// Passenger is one traveller on a booking. Position keeps staging order.
type Passenger struct {
	ID             uint                   `gorm:"primaryKey" json:"id"`
	BookingID      uint                   `gorm:"index;not null" json:"booking_id"`
	Name           string                 `gorm:"type:varchar(100);not null" json:"name"`
	Age            int                    `gorm:"not null" json:"age"`
	Gender         staging.Gender         `gorm:"type:varchar(1);not null" json:"gender"`
	SeatPreference staging.SeatPreference `gorm:"type:varchar(10);not null;default:'ANY'" json:"seat_preference"`
	Position       int                    `gorm:"not null" json:"position"`
	CreatedAt      time.Time              `json:"created_at"`
}

func (Booking) TableName() string {
	return "bookings"
}

func (Passenger) TableName() string {
	return "passengers"
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == StatusConfirmed
}

// passengersFromArea converts staged entries into rows, in entry order.
func passengersFromArea(area *staging.Area) []Passenger {
	out := make([]Passenger, 0, area.Count())
	for i, p := range area.Passengers {
		out = append(out, Passenger{
			Name:           p.Name,
			Age:            p.Age,
			Gender:         p.Gender,
			SeatPreference: p.SeatPreference,
			Position:       i,
		})
	}
	return out
}
