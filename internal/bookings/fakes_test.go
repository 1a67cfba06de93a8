package bookings

import (
	"context"
	"sync"

	"busline/internal/buses"
	"busline/internal/notifications"
	"busline/internal/shared/apperrors"
	"busline/internal/staging"
	"busline/internal/wallets"
	"busline/pkg/money"

	"github.com/google/uuid"
)

// world is an in-memory database. A transaction holds txMu for its whole
// duration, which serialises commits the way row locks do, and restores a
// snapshot when fn fails.
type world struct {
	txMu sync.Mutex
	mu   sync.Mutex

	buses    map[uint]buses.Bus
	wallets  map[uuid.UUID]wallets.Wallet
	bookings map[uint]Booking
	nextID   uint

	debitErr error
}

func newWorld() *world {
	return &world{
		buses:    map[uint]buses.Bus{},
		wallets:  map[uuid.UUID]wallets.Wallet{},
		bookings: map[uint]Booking{},
	}
}

func (w *world) addBus(b buses.Bus) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buses[b.ID] = b
}

func (w *world) setBalance(userID uuid.UUID, amt money.Amount) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.wallets[userID] = wallets.Wallet{ID: uint(len(w.wallets) + 1), UserID: userID, Balance: amt}
}

func (w *world) bus(id uint) buses.Bus {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buses[id]
}

func (w *world) setFare(id uint, fare money.Amount) {
	w.mu.Lock()
	defer w.mu.Unlock()
	bus := w.buses[id]
	bus.Fare = fare
	w.buses[id] = bus
}

func (w *world) balance(userID uuid.UUID) money.Amount {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.wallets[userID].Balance
}

func (w *world) bookingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bookings)
}

type snapshot struct {
	buses    map[uint]buses.Bus
	wallets  map[uuid.UUID]wallets.Wallet
	bookings map[uint]Booking
	nextID   uint
}

func (w *world) snapshot() snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	s := snapshot{
		buses:    make(map[uint]buses.Bus, len(w.buses)),
		wallets:  make(map[uuid.UUID]wallets.Wallet, len(w.wallets)),
		bookings: make(map[uint]Booking, len(w.bookings)),
		nextID:   w.nextID,
	}
	for k, v := range w.buses {
		s.buses[k] = v
	}
	for k, v := range w.wallets {
		s.wallets[k] = v
	}
	for k, v := range w.bookings {
		s.bookings[k] = v
	}
	return s
}

func (w *world) restore(s snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.buses, w.wallets, w.bookings, w.nextID = s.buses, s.wallets, s.bookings, s.nextID
}

func (w *world) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	w.txMu.Lock()
	defer w.txMu.Unlock()

	snap := w.snapshot()
	defer func() {
		if p := recover(); p != nil {
			w.restore(snap)
			panic(p)
		}
		if err != nil {
			w.restore(snap)
		}
	}()
	return fn(ctx)
}

// BusStore

func (w *world) GetByID(_ context.Context, id uint) (*buses.Bus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.buses[id]
	if !ok {
		return nil, apperrors.NotFound("bus")
	}
	return &b, nil
}

func (w *world) LockByID(ctx context.Context, id uint) (*buses.Bus, error) {
	return w.GetByID(ctx, id)
}

func (w *world) DecrementSeats(_ context.Context, id uint, n int, guard bool) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.buses[id]
	if !ok {
		return apperrors.NotFound("bus")
	}
	if guard && b.AvailableSeats < n {
		return apperrors.ConflictError{Resource: "bus", Msg: "not enough seats available"}
	}
	b.AvailableSeats -= n
	w.buses[id] = b
	return nil
}

// WalletStore

func (w *world) GetOrCreate(_ context.Context, userID uuid.UUID) (*wallets.Wallet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	wl, ok := w.wallets[userID]
	if !ok {
		wl = wallets.Wallet{ID: uint(len(w.wallets) + 1), UserID: userID}
		w.wallets[userID] = wl
	}
	return &wl, nil
}

func (w *world) LockByUserID(_ context.Context, userID uuid.UUID) (*wallets.Wallet, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	wl, ok := w.wallets[userID]
	if !ok {
		return nil, apperrors.NotFound("wallet")
	}
	return &wl, nil
}

func (w *world) Debit(_ context.Context, userID uuid.UUID, amount money.Amount) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debitErr != nil {
		return w.debitErr
	}
	wl := w.wallets[userID]
	if wl.Balance.LessThan(amount) {
		return apperrors.ConflictError{Resource: "wallet", Msg: "balance changed during commit"}
	}
	wl.Balance = wl.Balance.Sub(amount)
	w.wallets[userID] = wl
	return nil
}

// Repository

func (w *world) Create(_ context.Context, booking *Booking) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	booking.ID = w.nextID
	for i := range booking.Passengers {
		booking.Passengers[i].ID = uint(i + 1)
		booking.Passengers[i].BookingID = booking.ID
	}
	stored := *booking
	stored.Passengers = append([]Passenger(nil), booking.Passengers...)
	w.bookings[booking.ID] = stored
	return nil
}

func (w *world) GetForOwner(_ context.Context, id uint, userID uuid.UUID) (*Booking, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	b, ok := w.bookings[id]
	if !ok || b.UserID != userID {
		return nil, apperrors.NotFound("booking")
	}
	bus := w.buses[b.BusID]
	b.Bus = &bus
	return &b, nil
}

// memoryStore backs the real staging service.
type memoryStore struct {
	mu    sync.Mutex
	areas map[string]staging.Area
}

func newMemoryStore() *memoryStore {
	return &memoryStore{areas: map[string]staging.Area{}}
}

func (m *memoryStore) Get(_ context.Context, sessionID string) (*staging.Area, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	area, ok := m.areas[sessionID]
	if !ok {
		return nil, nil
	}
	area.Passengers = append([]staging.PassengerEntry(nil), area.Passengers...)
	return &area, nil
}

func (m *memoryStore) Save(_ context.Context, sessionID string, area *staging.Area) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *area
	copied.Passengers = append([]staging.PassengerEntry(nil), area.Passengers...)
	m.areas[sessionID] = copied
	return nil
}

func (m *memoryStore) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.areas, sessionID)
	return nil
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []notifications.BookingConfirmed
	err    error
}

func (p *recordingPublisher) PublishBookingConfirmed(_ context.Context, e notifications.BookingConfirmed) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.events = append(p.events, e)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

type countingInvalidator struct {
	mu    sync.Mutex
	calls int
}

func (c *countingInvalidator) InvalidateSearchCache(context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls++
}
