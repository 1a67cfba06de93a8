package bookings

import (
	"bytes"
	"testing"
	"time"

	"busline/internal/buses"
	"busline/internal/staging"
	"busline/pkg/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderTicket(t *testing.T) {
	arrival := time.Date(2026, 1, 11, 5, 30, 0, 0, time.UTC)
	pdf, err := RenderTicket(&Booking{
		ID:         3,
		BookingRef: "BUS-20260105-ABCDEF",
		NumTickets: 2,
		TotalFare:  money.FromMajor(1000),
		Status:     StatusConfirmed,
		CreatedAt:  time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC),
		Bus: &buses.Bus{
			BusName:       "Night Rider",
			BusNumber:     "MH-12-AB-1234",
			Source:        "Pune",
			Destination:   "Mumbai",
			DepartureTime: time.Date(2026, 1, 10, 22, 0, 0, 0, time.UTC),
			ArrivalTime:   &arrival,
		},
		Passengers: []Passenger{
			{Name: "Asha", Age: 30, Gender: staging.GenderFemale, SeatPreference: staging.SeatWindow},
			{Name: "Ravi", Age: 34, Gender: staging.GenderMale, SeatPreference: staging.SeatAny, Position: 1},
		},
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF")))
}

func TestRenderTicket_WithoutBus(t *testing.T) {
	pdf, err := RenderTicket(&Booking{BookingRef: "BUS-20260105-ZZZZZZ", Status: StatusConfirmed})
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
}
