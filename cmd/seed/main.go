package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"busline/internal/buses"
	"busline/internal/shared/config"
	"busline/internal/shared/constants"
	"busline/internal/shared/database"
	"busline/internal/users"
	"busline/internal/wallets"
	"busline/pkg/cache"
	"busline/pkg/money"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Busline Database Seeder...")

	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	// Clean database
	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	// Seed data
	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Database is ready for testing.")
}

// CleanDatabase truncates all tables in reverse dependency order
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"passengers",
		"bookings",
		"buses",
		"wallets",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds all required data
func (s *Seeder) SeedAll() error {
	ctx := context.Background()

	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	if err := s.SeedBuses(time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to seed buses: %w", err)
	}

	// Drop cached searches and staging areas from previous runs
	if err := cache.NewService(s.db.Redis).DeletePattern(ctx, constants.CACHE_PREFIX+":*"); err != nil {
		log.Printf("Warning: Failed to clear Redis keys: %v", err)
	}

	return nil
}

// SeedUsers creates 1 admin and 2 riders, each with a wallet
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	// Hash password for all users (using "qwerty")
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
		balance   money.Amount
	}{
		{"Admin", "User", "admin@busline.local", users.RoleAdmin, 0},
		{"Asha", "Rao", "asha@busline.local", users.RoleUser, money.FromMajor(5000)},
		{"Ravi", "Kumar", "ravi@busline.local", users.RoleUser, money.FromMajor(800)},
	}

	for _, userData := range usersData {
		user := users.User{
			ID:        uuid.New(),
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
		}

		if err := s.db.PostgreSQL.Create(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}

		wallet := wallets.Wallet{UserID: user.ID, Balance: userData.balance}
		if err := s.db.PostgreSQL.Create(&wallet).Error; err != nil {
			return fmt.Errorf("failed to create wallet for %s: %w", userData.email, err)
		}

		fmt.Printf("    ✅ Created user: %s (%s, balance %s)\n", user.Email, user.Role, wallet.Balance)
	}

	return nil
}

// SeedBuses creates departures on a few routes for the next three days
func (s *Seeder) SeedBuses(now time.Time) error {
	fmt.Println("  🚌 Seeding buses...")

	routes := []struct {
		name        string
		source      string
		destination string
		hour        int
		duration    time.Duration
		fare        money.Amount
		seats       int
	}{
		{"Deccan Express", "Pune", "Mumbai", 6, 3 * time.Hour, money.FromMajor(500), 40},
		{"Night Rider", "Pune", "Mumbai", 22, 4 * time.Hour, money.FromMajor(650), 30},
		{"Coastal Line", "Mumbai", "Goa", 20, 10 * time.Hour, money.FromMajor(1200), 36},
		{"Hill Hopper", "Bengaluru", "Mysuru", 8, 3 * time.Hour, money.MustParse("299.50"), 2},
	}

	start, _ := buses.DayRange(now)
	count := 0
	for day := 1; day <= 3; day++ {
		for i, r := range routes {
			departure := start.AddDate(0, 0, day).Add(time.Duration(r.hour) * time.Hour)
			arrival := departure.Add(r.duration)
			bus := buses.Bus{
				BusName:        r.name,
				BusNumber:      fmt.Sprintf("BL-%d%02d", day, i+1),
				Source:         r.source,
				Destination:    r.destination,
				DepartureTime:  departure,
				ArrivalTime:    &arrival,
				Fare:           r.fare,
				TotalSeats:     r.seats,
				AvailableSeats: r.seats,
			}
			if err := s.db.PostgreSQL.Create(&bus).Error; err != nil {
				return fmt.Errorf("failed to create bus %s: %w", bus.BusNumber, err)
			}
			count++
		}
	}

	fmt.Printf("    ✅ Created %d buses\n", count)
	return nil
}
