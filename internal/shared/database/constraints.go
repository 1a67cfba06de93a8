package database

import (
	"gorm.io/gorm"
)

// MigrateConstraints adds the CHECK constraints that back the commit workflow.
// Each statement is idempotent so it can run on every start.
func MigrateConstraints(db *gorm.DB) error {
	checks := []struct {
		table, name, expr string
	}{
		{"wallets", "chk_wallets_balance_non_negative", "balance >= 0"},
		{"buses", "chk_buses_fare_non_negative", "fare >= 0"},
		{"buses", "chk_buses_total_seats_positive", "total_seats > 0"},
		{"buses", "chk_buses_available_seats_max", "available_seats <= total_seats"},
		{"bookings", "chk_bookings_num_tickets_positive", "num_tickets > 0"},
		{"passengers", "chk_passengers_age_range", "age BETWEEN 1 AND 120"},
	}

	for _, c := range checks {
		err := db.Exec(`
			DO $$
			BEGIN
				IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = '` + c.name + `') THEN
					ALTER TABLE ` + c.table + ` ADD CONSTRAINT ` + c.name + ` CHECK (` + c.expr + `);
				END IF;
			END $$;
		`).Error
		if err != nil {
			return err
		}
	}

	// Confirmation reads load passengers by booking in staging order
	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_passengers_booking_position
		ON passengers (booking_id, position);
	`).Error
}
