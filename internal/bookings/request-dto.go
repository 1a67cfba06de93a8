package bookings

import "busline/internal/staging"

// StagingQuery carries the ticket count through the passenger pages.
// A missing count resumes the staged area, or starts one ticket.
type StagingQuery struct {
	NumTickets *int `form:"num_tickets" binding:"omitempty,min=1"`
}

func (q StagingQuery) Tickets() int {
	if q.NumTickets == nil {
		return 0
	}
	return *q.NumTickets
}

// PassengerRequest is one passenger form submission. Field rules are
// enforced by the staging service after normalization.
type PassengerRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Gender         string `json:"gender"`
	SeatPreference string `json:"seat_preference"`
}

func (r PassengerRequest) ToEntry() staging.PassengerEntry {
	return staging.PassengerEntry{
		Name:           r.Name,
		Age:            r.Age,
		Gender:         staging.Gender(r.Gender),
		SeatPreference: staging.SeatPreference(r.SeatPreference),
	}
}
