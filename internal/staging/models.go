package staging

import (
	"errors"
	"strings"
	"time"
)

type Gender string

const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
	GenderOther  Gender = "O"
)

type SeatPreference string

const (
	SeatWindow SeatPreference = "WINDOW"
	SeatAisle  SeatPreference = "AISLE"
	SeatAny    SeatPreference = "ANY"
)

var ErrAreaFull = errors.New("all passengers have already been entered")

// PassengerEntry is one passenger's details as submitted, before a booking exists.
type PassengerEntry struct {
	Name           string         `json:"name" validate:"required,max=100"`
	Age            int            `json:"age" validate:"required,min=1,max=120"`
	Gender         Gender         `json:"gender" validate:"required,oneof=M F O"`
	SeatPreference SeatPreference `json:"seat_preference" validate:"required,oneof=WINDOW AISLE ANY"`
}

// Normalize trims and upper-cases the enum fields and defaults the seat preference.
func (p PassengerEntry) Normalize() PassengerEntry {
	p.Name = strings.TrimSpace(p.Name)
	p.Gender = Gender(strings.ToUpper(strings.TrimSpace(string(p.Gender))))
	p.SeatPreference = SeatPreference(strings.ToUpper(strings.TrimSpace(string(p.SeatPreference))))
	if p.SeatPreference == "" {
		p.SeatPreference = SeatAny
	}
	return p
}

// Area is the passenger list a session accumulates for one bus across
// requests. It holds input only and never touches inventory or wallets.
type Area struct {
	BusID      uint             `json:"bus_id"`
	NumTickets int              `json:"num_tickets"`
	Passengers []PassengerEntry `json:"passengers"`
	StartedAt  time.Time        `json:"started_at"`
}

func NewArea(busID uint, numTickets int) *Area {
	return &Area{
		BusID:      busID,
		NumTickets: numTickets,
		Passengers: make([]PassengerEntry, 0, numTickets),
		StartedAt:  time.Now().UTC(),
	}
}

func (a *Area) Count() int {
	return len(a.Passengers)
}

func (a *Area) IsComplete() bool {
	return a.Count() == a.NumTickets
}

func (a *Area) Remaining() int {
	return a.NumTickets - a.Count()
}

// CurrentPassenger is the 1-based number of the next passenger to enter.
func (a *Area) CurrentPassenger() int {
	return a.Count() + 1
}

// Add appends p, keeping entry order.
func (a *Area) Add(p PassengerEntry) error {
	if a.Count() >= a.NumTickets {
		return ErrAreaFull
	}
	a.Passengers = append(a.Passengers, p)
	return nil
}

// IsFor reports whether the area was started for busID.
func (a *Area) IsFor(busID uint) bool {
	return a != nil && a.BusID == busID
}
