package buses

import (
	"time"

	"busline/pkg/money"
)

// Bus is one scheduled departure with its own seat pool.
type Bus struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	BusName        string       `gorm:"type:varchar(100);not null" json:"bus_name"`
	BusNumber      string       `gorm:"type:varchar(20);uniqueIndex;not null" json:"bus_number"`
	Source         string       `gorm:"type:varchar(100);not null;index:idx_buses_route,priority:1" json:"source"`
	Destination    string       `gorm:"type:varchar(100);not null;index:idx_buses_route,priority:2" json:"destination"`
	DepartureTime  time.Time    `gorm:"not null;index:idx_buses_route,priority:3" json:"departure_time"`
	ArrivalTime    *time.Time   `json:"arrival_time,omitempty"`
	Fare           money.Amount `gorm:"type:numeric(12,2);not null" json:"fare"`
	TotalSeats     int          `gorm:"not null" json:"total_seats"`
	AvailableSeats int          `gorm:"not null" json:"available_seats"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

func (Bus) TableName() string {
	return "buses"
}

// HasSeats reports whether n more tickets fit in the remaining pool.
func (b *Bus) HasSeats(n int) bool {
	return b.AvailableSeats >= n
}

// DayRange returns the UTC half-open interval [day 00:00, next day 00:00).
func DayRange(day time.Time) (time.Time, time.Time) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 0, 1)
}
