package bookings

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"busline/internal/buses"
	"busline/internal/notifications"
	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/tx"
	"busline/internal/shared/metrics"
	"busline/internal/shared/session"
	"busline/internal/staging"
	"busline/internal/wallets"
	"busline/pkg/logger"
	"busline/pkg/money"

	"github.com/google/uuid"
)

// BusStore is the subset of the bus repository the commit needs (to avoid a wider dependency)
type BusStore interface {
	GetByID(ctx context.Context, id uint) (*buses.Bus, error)
	LockByID(ctx context.Context, id uint) (*buses.Bus, error)
	DecrementSeats(ctx context.Context, id uint, n int, guard bool) error
}

// WalletStore is the subset of the wallet repository the commit needs
type WalletStore interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*wallets.Wallet, error)
	LockByUserID(ctx context.Context, userID uuid.UUID) (*wallets.Wallet, error)
	Debit(ctx context.Context, userID uuid.UUID, amount money.Amount) error
}

// StagingService gives access to the caller's staged passengers
type StagingService interface {
	Resume(ctx context.Context, sc session.Context, busID uint, numTickets int) (*staging.Area, error)
	AddPassenger(ctx context.Context, sc session.Context, busID uint, numTickets int, entry staging.PassengerEntry) (*staging.Area, error)
	Load(ctx context.Context, sc session.Context) (*staging.Area, error)
	Clear(ctx context.Context, sc session.Context) error
}

// SearchCacheInvalidator drops cached search results after seats change
type SearchCacheInvalidator interface {
	InvalidateSearchCache(ctx context.Context)
}

// Service interface defines the contract for booking business logic
type Service interface {
	// Progress resumes (or starts) staging for the bus and reports how far it got.
	Progress(ctx context.Context, sc session.Context, busID uint, numTickets int) (*buses.Bus, *staging.Area, error)
	StagePassenger(ctx context.Context, sc session.Context, busID uint, numTickets int, entry staging.PassengerEntry) (*buses.Bus, *staging.Area, error)

	Summary(ctx context.Context, sc session.Context, busID uint) (*Summary, error)
	// Commit turns the complete staging area for busID into a confirmed booking.
	Commit(ctx context.Context, sc session.Context, busID uint) (*Booking, error)

	GetForOwner(ctx context.Context, sc session.Context, bookingID uint) (*Booking, money.Amount, error)
	Ticket(ctx context.Context, sc session.Context, bookingID uint) ([]byte, error)
}

// Summary is what the caller reviews before committing.
type Summary struct {
	Bus           *buses.Bus
	Area          *staging.Area
	TotalFare     money.Amount
	WalletBalance money.Amount
}

func (s *Summary) IsComplete() bool {
	return s.Area.IsFor(s.Bus.ID) && s.Area.IsComplete()
}

type Options struct {
	PreventOverbooking bool
	// Clock defaults to time.Now
	Clock func() time.Time
}

type service struct {
	repo      Repository
	tx        tx.Transactor
	buses     BusStore
	wallets   WalletStore
	staging   StagingService
	publisher notifications.Publisher
	cache     SearchCacheInvalidator
	opts      Options
	log       *logger.Logger
}

func NewService(repo Repository, transactor tx.Transactor, busStore BusStore, walletStore WalletStore,
	stagingSvc StagingService, publisher notifications.Publisher, cache SearchCacheInvalidator, opts Options) Service {
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if publisher == nil {
		publisher = notifications.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		tx:        transactor,
		buses:     busStore,
		wallets:   walletStore,
		staging:   stagingSvc,
		publisher: publisher,
		cache:     cache,
		opts:      opts,
		log:       logger.GetDefault(),
	}
}

func (s *service) Progress(ctx context.Context, sc session.Context, busID uint, numTickets int) (*buses.Bus, *staging.Area, error) {
	bus, err := s.buses.GetByID(ctx, busID)
	if err != nil {
		return nil, nil, err
	}
	area, err := s.staging.Resume(ctx, sc, busID, numTickets)
	if err != nil {
		return nil, nil, err
	}
	return bus, area, nil
}

func (s *service) StagePassenger(ctx context.Context, sc session.Context, busID uint, numTickets int, entry staging.PassengerEntry) (*buses.Bus, *staging.Area, error) {
	bus, err := s.buses.GetByID(ctx, busID)
	if err != nil {
		return nil, nil, err
	}
	area, err := s.staging.AddPassenger(ctx, sc, busID, numTickets, entry)
	if err != nil {
		return nil, nil, err
	}
	return bus, area, nil
}

func (s *service) Summary(ctx context.Context, sc session.Context, busID uint) (*Summary, error) {
	bus, err := s.buses.GetByID(ctx, busID)
	if err != nil {
		return nil, err
	}
	area, err := s.staging.Load(ctx, sc)
	if err != nil {
		return nil, err
	}
	wallet, err := s.wallets.GetOrCreate(ctx, sc.UserID)
	if err != nil {
		return nil, err
	}

	summary := &Summary{Bus: bus, WalletBalance: wallet.Balance}
	if area.IsFor(busID) {
		summary.Area = area
		summary.TotalFare = bus.Fare.Times(area.NumTickets)
	}
	return summary, nil
}

func (s *service) Commit(ctx context.Context, sc session.Context, busID uint) (*Booking, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	// Step 1: Staging must be complete for this bus
	area, err := s.staging.Load(ctx, sc)
	if err != nil {
		return nil, err
	}
	if !area.IsFor(busID) {
		s.reject(ctx, busID, sc, metrics.OutcomeIncomplete, "no passengers staged")
		return nil, apperrors.Validation("No passengers staged for this bus")
	}
	if !area.IsComplete() {
		s.reject(ctx, busID, sc, metrics.OutcomeIncomplete, "staging incomplete")
		return nil, apperrors.Validation(fmt.Sprintf("Passenger details incomplete: %d of %d entered",
			area.Count(), area.NumTickets))
	}

	// Step 2: Make sure a wallet row exists to lock
	if _, err := s.wallets.GetOrCreate(ctx, sc.UserID); err != nil {
		return nil, err
	}

	// Step 3: Generate booking reference
	bookingRef, err := generateBookingReference(s.opts.Clock())
	if err != nil {
		return nil, fmt.Errorf("failed to generate booking reference: %w", err)
	}

	// Step 4: Lock, check and write in one transaction
	var booking *Booking
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		bus, err := s.buses.LockByID(ctx, busID)
		if err != nil {
			return err
		}
		wallet, err := s.wallets.LockByUserID(ctx, sc.UserID)
		if err != nil {
			return err
		}

		total := bus.Fare.Times(area.NumTickets)
		if !wallet.CanPay(total) {
			return apperrors.InsufficientFundsError{Required: total, Available: wallet.Balance}
		}
		if s.opts.PreventOverbooking && !bus.HasSeats(area.NumTickets) {
			return apperrors.ConflictError{Resource: "bus", Msg: "not enough seats available"}
		}

		b := &Booking{
			BookingRef: bookingRef,
			UserID:     sc.UserID,
			BusID:      bus.ID,
			NumTickets: area.NumTickets,
			TotalFare:  total,
			Status:     StatusConfirmed,
			Passengers: passengersFromArea(area),
		}
		if err := s.repo.Create(ctx, b); err != nil {
			return err
		}
		if err := s.buses.DecrementSeats(ctx, bus.ID, area.NumTickets, s.opts.PreventOverbooking); err != nil {
			return err
		}
		if err := s.wallets.Debit(ctx, sc.UserID, total); err != nil {
			return err
		}

		bus.AvailableSeats -= area.NumTickets
		b.Bus = bus
		booking = b
		return nil
	})
	if err != nil {
		s.reject(ctx, busID, sc, outcomeFor(err), err.Error())
		return nil, apperrors.Storage("commit booking", err)
	}

	// Step 5: Post-commit side effects never fail the booking
	if err := s.staging.Clear(ctx, sc); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to clear staging after commit", err, map[string]interface{}{
			"booking_id": booking.ID,
			"session_id": sc.SessionID,
		})
	}
	s.publish(ctx, booking)
	if s.cache != nil {
		s.cache.InvalidateSearchCache(ctx)
	}

	metrics.BookingCommit(metrics.OutcomeConfirmed, booking.NumTickets)
	s.log.LogBookingCreated(ctx, booking.ID, booking.BusID, sc.UserID.String(), booking.TotalFare.String())
	return booking, nil
}

func (s *service) GetForOwner(ctx context.Context, sc session.Context, bookingID uint) (*Booking, money.Amount, error) {
	if err := sc.Validate(); err != nil {
		return nil, 0, err
	}
	booking, err := s.repo.GetForOwner(ctx, bookingID, sc.UserID)
	if err != nil {
		return nil, 0, err
	}
	wallet, err := s.wallets.GetOrCreate(ctx, sc.UserID)
	if err != nil {
		return nil, 0, err
	}
	return booking, wallet.Balance, nil
}

func (s *service) Ticket(ctx context.Context, sc session.Context, bookingID uint) ([]byte, error) {
	booking, _, err := s.GetForOwner(ctx, sc, bookingID)
	if err != nil {
		return nil, err
	}
	return RenderTicket(booking)
}

func (s *service) publish(ctx context.Context, booking *Booking) {
	passengers := make([]notifications.PassengerInfo, 0, len(booking.Passengers))
	for _, p := range booking.Passengers {
		passengers = append(passengers, notifications.PassengerInfo{
			Name:           p.Name,
			Age:            p.Age,
			Gender:         string(p.Gender),
			SeatPreference: string(p.SeatPreference),
		})
	}
	event := notifications.NewBookingConfirmed(booking.ID, booking.BookingRef, booking.UserID, booking.BusID,
		booking.NumTickets, booking.TotalFare.String(), passengers, booking.CreatedAt)

	if err := s.publisher.PublishBookingConfirmed(ctx, event); err != nil {
		metrics.EventPublishFailed()
		s.log.ErrorWithContext(ctx, "Failed to publish booking event", err, map[string]interface{}{
			"booking_id":  booking.ID,
			"booking_ref": booking.BookingRef,
		})
	}
}

func (s *service) reject(ctx context.Context, busID uint, sc session.Context, outcome, reason string) {
	metrics.BookingCommit(outcome, 0)
	s.log.LogBookingRejected(ctx, busID, sc.UserID.String(), reason)
}

func outcomeFor(err error) string {
	var conflict apperrors.ConflictError
	switch {
	case apperrors.IsInsufficientFunds(err):
		return metrics.OutcomeInsufficientFunds
	case errors.As(err, &conflict) && conflict.Resource == "bus":
		return metrics.OutcomeSoldOut
	default:
		return metrics.OutcomeFailed
	}
}

// generateBookingReference generates a booking reference like BUS-20260110-QWERTY
func generateBookingReference(now time.Time) (string, error) {
	timestamp := now.UTC().Format("20060102")

	// Generate 6 random uppercase letters
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	randomPart := make([]byte, 6)

	for i := range randomPart {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(letters))))
		if err != nil {
			return "", err
		}
		randomPart[i] = letters[num.Int64()]
	}

	return fmt.Sprintf("BUS-%s-%s", timestamp, string(randomPart)), nil
}
