package bookings

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"busline/internal/buses"
	"busline/internal/shared/apperrors"
	"busline/internal/shared/session"
	"busline/internal/staging"
	"busline/internal/users"
	"busline/pkg/money"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBusID = 7

type fixture struct {
	world   *world
	staging staging.Service
	pub     *recordingPublisher
	cache   *countingInvalidator
	svc     Service
}

func newFixture(t *testing.T, preventOverbooking bool) *fixture {
	t.Helper()
	w := newWorld()
	w.addBus(buses.Bus{
		ID:             testBusID,
		BusName:        "Night Rider",
		BusNumber:      "MH-12-AB-1234",
		Source:         "Pune",
		Destination:    "Mumbai",
		DepartureTime:  time.Date(2026, 1, 10, 22, 0, 0, 0, time.UTC),
		Fare:           money.FromMajor(500),
		TotalSeats:     40,
		AvailableSeats: 40,
	})

	stagingSvc := staging.NewService(newMemoryStore(), 10)
	pub := &recordingPublisher{}
	inv := &countingInvalidator{}
	svc := NewService(w, w, w, w, stagingSvc, pub, inv, Options{
		PreventOverbooking: preventOverbooking,
		Clock:              func() time.Time { return time.Date(2026, 1, 5, 12, 0, 0, 0, time.UTC) },
	})
	return &fixture{world: w, staging: stagingSvc, pub: pub, cache: inv, svc: svc}
}

func newRider() session.Context {
	return session.Context{UserID: uuid.New(), SessionID: uuid.NewString(), Role: users.RoleUser}
}

func (f *fixture) stage(t *testing.T, sc session.Context, busID uint, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		_, _, err := f.svc.StagePassenger(context.Background(), sc, busID, n, staging.PassengerEntry{
			Name:           fmt.Sprintf("Passenger %d", i+1),
			Age:            20 + i,
			Gender:         staging.GenderFemale,
			SeatPreference: staging.SeatWindow,
		})
		require.NoError(t, err)
	}
}

func TestCommit_Success(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(2000))
	f.stage(t, sc, testBusID, 3)

	booking, err := f.svc.Commit(ctx, sc, testBusID)
	require.NoError(t, err)

	assert.Equal(t, money.FromMajor(1500), booking.TotalFare)
	assert.Equal(t, 3, booking.NumTickets)
	assert.Equal(t, StatusConfirmed, booking.Status)
	assert.Regexp(t, regexp.MustCompile(`^BUS-20260105-[A-Z]{6}$`), booking.BookingRef)
	assert.Equal(t, money.FromMajor(500), f.world.balance(sc.UserID))
	assert.Equal(t, 37, f.world.bus(testBusID).AvailableSeats)
	assert.Equal(t, 37, booking.Bus.AvailableSeats)

	// Staging is consumed by the commit
	area, err := f.staging.Load(ctx, sc)
	require.NoError(t, err)
	assert.Nil(t, area)

	require.Len(t, f.pub.events, 1)
	assert.Equal(t, booking.BookingRef, f.pub.events[0].BookingRef)
	assert.Equal(t, 1, f.cache.calls)
}

func TestCommit_TotalFareFrozenAfterFareChange(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(2000))
	f.stage(t, sc, testBusID, 3)

	booking, err := f.svc.Commit(ctx, sc, testBusID)
	require.NoError(t, err)

	f.world.setFare(testBusID, money.FromMajor(900))

	stored, balance, err := f.svc.GetForOwner(ctx, sc, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(1500), stored.TotalFare)
	assert.Equal(t, money.FromMajor(900), stored.Bus.Fare)
	assert.Equal(t, money.FromMajor(500), balance)
}

func TestCommit_KeepsPassengerOrder(t *testing.T) {
	f := newFixture(t, true)
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(5000))
	f.stage(t, sc, testBusID, 4)

	booking, err := f.svc.Commit(context.Background(), sc, testBusID)
	require.NoError(t, err)

	stored, _, err := f.svc.GetForOwner(context.Background(), sc, booking.ID)
	require.NoError(t, err)
	require.Len(t, stored.Passengers, 4)
	for i, p := range stored.Passengers {
		assert.Equal(t, fmt.Sprintf("Passenger %d", i+1), p.Name)
		assert.Equal(t, i, p.Position)
	}
}

func TestCommit_InsufficientFunds(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(1000))
	f.stage(t, sc, testBusID, 3)

	_, err := f.svc.Commit(ctx, sc, testBusID)
	require.Error(t, err)

	var funds apperrors.InsufficientFundsError
	require.True(t, errors.As(err, &funds))
	assert.Equal(t, money.FromMajor(1500), funds.Required)
	assert.Equal(t, money.FromMajor(1000), funds.Available)

	assert.Equal(t, money.FromMajor(1000), f.world.balance(sc.UserID))
	assert.Equal(t, 40, f.world.bus(testBusID).AvailableSeats)
	assert.Zero(t, f.world.bookingCount())
	assert.Empty(t, f.pub.events)

	// Staged passengers survive so the user can top up and retry
	area, err := f.staging.Load(ctx, sc)
	require.NoError(t, err)
	assert.Equal(t, 3, area.Count())
}

func TestCommit_RequiresCompleteStaging(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	t.Run("nothing staged", func(t *testing.T) {
		sc := newRider()
		f.world.setBalance(sc.UserID, money.FromMajor(2000))
		_, err := f.svc.Commit(ctx, sc, testBusID)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("incomplete", func(t *testing.T) {
		sc := newRider()
		f.world.setBalance(sc.UserID, money.FromMajor(2000))
		_, _, err := f.svc.StagePassenger(ctx, sc, testBusID, 3, staging.PassengerEntry{
			Name: "Only One", Age: 40, Gender: staging.GenderMale,
		})
		require.NoError(t, err)

		_, err = f.svc.Commit(ctx, sc, testBusID)
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
		assert.Contains(t, err.Error(), "1 of 3")
	})

	t.Run("staged for another bus", func(t *testing.T) {
		sc := newRider()
		f.world.setBalance(sc.UserID, money.FromMajor(2000))
		f.world.addBus(buses.Bus{ID: 8, Fare: money.FromMajor(100), TotalSeats: 10, AvailableSeats: 10})
		f.stage(t, sc, 8, 1)

		_, err := f.svc.Commit(ctx, sc, testBusID)
		assert.True(t, apperrors.IsValidation(err))
	})

	assert.Zero(t, f.world.bookingCount())
	assert.Equal(t, 40, f.world.bus(testBusID).AvailableSeats)
}

func TestCommit_SecondSubmitFindsNothingStaged(t *testing.T) {
	f := newFixture(t, true)
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(2000))
	f.stage(t, sc, testBusID, 1)

	_, err := f.svc.Commit(context.Background(), sc, testBusID)
	require.NoError(t, err)

	_, err = f.svc.Commit(context.Background(), sc, testBusID)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, 1, f.world.bookingCount())
	assert.Equal(t, money.FromMajor(1500), f.world.balance(sc.UserID))
}

func TestCommit_DebitFailureRollsBack(t *testing.T) {
	f := newFixture(t, true)
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(2000))
	f.stage(t, sc, testBusID, 2)
	f.world.debitErr = errors.New("connection reset")

	_, err := f.svc.Commit(context.Background(), sc, testBusID)
	require.Error(t, err)
	assert.True(t, apperrors.IsStorage(err))

	assert.Zero(t, f.world.bookingCount())
	assert.Equal(t, 40, f.world.bus(testBusID).AvailableSeats)
	assert.Equal(t, money.FromMajor(2000), f.world.balance(sc.UserID))
	assert.Empty(t, f.pub.events)
	assert.Zero(t, f.cache.calls)
}

func TestCommit_PublishFailureKeepsBooking(t *testing.T) {
	f := newFixture(t, true)
	f.pub.err = errors.New("broker unavailable")
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(2000))
	f.stage(t, sc, testBusID, 1)

	booking, err := f.svc.Commit(context.Background(), sc, testBusID)
	require.NoError(t, err)
	assert.NotZero(t, booking.ID)
	assert.Equal(t, 1, f.world.bookingCount())
}

func TestCommit_LastSeatRace(t *testing.T) {
	f := newFixture(t, true)
	f.world.addBus(buses.Bus{ID: 9, Fare: money.FromMajor(300), TotalSeats: 1, AvailableSeats: 1})

	riders := []session.Context{newRider(), newRider()}
	for _, sc := range riders {
		f.world.setBalance(sc.UserID, money.FromMajor(1000))
		f.stage(t, sc, 9, 1)
	}

	var wg sync.WaitGroup
	errs := make([]error, len(riders))
	for i, sc := range riders {
		wg.Add(1)
		go func(i int, sc session.Context) {
			defer wg.Done()
			_, errs[i] = f.svc.Commit(context.Background(), sc, 9)
		}(i, sc)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			assert.True(t, apperrors.IsConflict(err), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes)
	assert.Equal(t, 0, f.world.bus(9).AvailableSeats)
	assert.Equal(t, 1, f.world.bookingCount())
}

func TestCommit_UnguardedSeatsMayGoNegative(t *testing.T) {
	f := newFixture(t, false)
	f.world.addBus(buses.Bus{ID: 9, Fare: money.FromMajor(100), TotalSeats: 2, AvailableSeats: 1})
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(1000))
	f.stage(t, sc, 9, 2)

	_, err := f.svc.Commit(context.Background(), sc, 9)
	require.NoError(t, err)
	assert.Equal(t, -1, f.world.bus(9).AvailableSeats)
}

func TestSummary(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	sc := newRider()
	f.world.setBalance(sc.UserID, money.FromMajor(800))

	summary, err := f.svc.Summary(ctx, sc, testBusID)
	require.NoError(t, err)
	assert.Nil(t, summary.Area)
	assert.False(t, summary.IsComplete())
	assert.Zero(t, summary.TotalFare)

	f.stage(t, sc, testBusID, 2)
	summary, err = f.svc.Summary(ctx, sc, testBusID)
	require.NoError(t, err)
	assert.True(t, summary.IsComplete())
	assert.Equal(t, money.FromMajor(1000), summary.TotalFare)
	assert.Equal(t, money.FromMajor(800), summary.WalletBalance)

	_, err = f.svc.Summary(ctx, sc, 404)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestStagePassenger_UnknownBus(t *testing.T) {
	f := newFixture(t, true)
	_, _, err := f.svc.StagePassenger(context.Background(), newRider(), 404, 1, staging.PassengerEntry{
		Name: "Ghost", Age: 30, Gender: staging.GenderOther,
	})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetForOwner_HidesOtherUsersBookings(t *testing.T) {
	f := newFixture(t, true)
	owner := newRider()
	f.world.setBalance(owner.UserID, money.FromMajor(2000))
	f.stage(t, owner, testBusID, 1)
	booking, err := f.svc.Commit(context.Background(), owner, testBusID)
	require.NoError(t, err)

	got, balance, err := f.svc.GetForOwner(context.Background(), owner, booking.ID)
	require.NoError(t, err)
	assert.Equal(t, booking.BookingRef, got.BookingRef)
	assert.Equal(t, money.FromMajor(1500), balance)

	_, _, err = f.svc.GetForOwner(context.Background(), newRider(), booking.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGenerateBookingReference(t *testing.T) {
	ref, err := generateBookingReference(time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Regexp(t, `^BUS-20260301-[A-Z]{6}$`, ref)
}
