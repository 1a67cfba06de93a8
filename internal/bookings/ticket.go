package bookings

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// RenderTicket builds a one-page e-ticket for a loaded booking.
func RenderTicket(b *Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("E-Ticket "+b.BookingRef, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		"Booking Ref : " + b.BookingRef,
		"Status      : " + b.Status.String(),
		fmt.Sprintf("Tickets     : %d", b.NumTickets),
		"Total Fare  : " + b.TotalFare.String(),
		"Booked At   : " + b.CreatedAt.UTC().Format("2006-01-02 15:04") + " UTC",
	}
	if b.Bus != nil {
		lines = append(lines,
			fmt.Sprintf("Bus         : %s (%s)", b.Bus.BusName, b.Bus.BusNumber),
			fmt.Sprintf("Route       : %s -> %s", b.Bus.Source, b.Bus.Destination),
			"Departure   : "+formatTime(b.Bus.DepartureTime),
		)
		if b.Bus.ArrivalTime != nil {
			lines = append(lines, "Arrival     : "+formatTime(*b.Bus.ArrivalTime))
		}
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for i, p := range b.Passengers {
		pdf.Cell(0, 6, fmt.Sprintf("%d) %s, age %d, %s, seat %s", i+1, p.Name, p.Age, p.Gender, p.SeatPreference))
		pdf.Ln(6)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please show this ticket when boarding.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render ticket: %w", err)
	}
	return buf.Bytes(), nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format("2006-01-02 15:04") + " UTC"
}
