package database

import (
	"busline/internal/bookings"
	"busline/internal/buses"
	"busline/internal/users"
	"busline/internal/wallets"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&users.User{},
		&wallets.Wallet{},
		&buses.Bus{},
		&bookings.Booking{},
		&bookings.Passenger{},
	); err != nil {
		return err
	}
	return MigrateConstraints(db)
}
