package staging

import (
	"context"
	"errors"
	"fmt"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/session"
	"busline/pkg/logger"

	"github.com/go-playground/validator/v10"
)

type Service interface {
	// Start replaces any area of the session with an empty one for busID.
	Start(ctx context.Context, sc session.Context, busID uint, numTickets int) (*Area, error)
	// Resume returns the session's area for busID. A fresh area is started
	// when the session has none, is staging another bus, or numTickets names
	// a different count. numTickets 0 means the caller gave no count.
	Resume(ctx context.Context, sc session.Context, busID uint, numTickets int) (*Area, error)
	AddPassenger(ctx context.Context, sc session.Context, busID uint, numTickets int, entry PassengerEntry) (*Area, error)
	// Load returns nil without error when nothing is staged.
	Load(ctx context.Context, sc session.Context) (*Area, error)
	Clear(ctx context.Context, sc session.Context) error
}

// DefaultTickets sizes an area started without an explicit count.
const DefaultTickets = 1

type service struct {
	store      Store
	validate   *validator.Validate
	maxTickets int
	log        *logger.Logger
}

func NewService(store Store, maxTickets int) Service {
	return &service{
		store:      store,
		validate:   validator.New(),
		maxTickets: maxTickets,
		log:        logger.GetDefault(),
	}
}

func (s *service) Start(ctx context.Context, sc session.Context, busID uint, numTickets int) (*Area, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkTicketCount(numTickets); err != nil {
		return nil, err
	}

	area := NewArea(busID, numTickets)
	if err := s.store.Save(ctx, sc.SessionID, area); err != nil {
		return nil, err
	}
	return area, nil
}

func (s *service) Resume(ctx context.Context, sc session.Context, busID uint, numTickets int) (*Area, error) {
	area, err := s.Load(ctx, sc)
	if err != nil {
		return nil, err
	}
	if reusable(area, busID, numTickets) {
		return area, nil
	}
	return s.Start(ctx, sc, busID, ticketsOrDefault(numTickets))
}

func (s *service) AddPassenger(ctx context.Context, sc session.Context, busID uint, numTickets int, entry PassengerEntry) (*Area, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	entry = entry.Normalize()
	if err := s.validate.Struct(entry); err != nil {
		return nil, apperrors.FromBinding(err)
	}

	area, err := s.store.Get(ctx, sc.SessionID)
	if err != nil {
		return nil, err
	}
	if !reusable(area, busID, numTickets) {
		numTickets = ticketsOrDefault(numTickets)
		if err := s.checkTicketCount(numTickets); err != nil {
			return nil, err
		}
		area = NewArea(busID, numTickets)
	}

	if err := area.Add(entry); err != nil {
		if errors.Is(err, ErrAreaFull) {
			return nil, apperrors.ValidationError{
				Msg: fmt.Sprintf("All %d passengers have already been entered", area.NumTickets),
				Err: err,
			}
		}
		return nil, err
	}

	if err := s.store.Save(ctx, sc.SessionID, area); err != nil {
		return nil, err
	}

	s.log.LogPassengerStaged(ctx, sc.SessionID, busID, area.Count(), area.NumTickets)
	return area, nil
}

func (s *service) Load(ctx context.Context, sc session.Context) (*Area, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return s.store.Get(ctx, sc.SessionID)
}

func (s *service) Clear(ctx context.Context, sc session.Context) error {
	if sc.SessionID == "" {
		return nil
	}
	return s.store.Delete(ctx, sc.SessionID)
}

func reusable(area *Area, busID uint, numTickets int) bool {
	return area.IsFor(busID) && (numTickets == 0 || numTickets == area.NumTickets)
}

func ticketsOrDefault(n int) int {
	if n == 0 {
		return DefaultTickets
	}
	return n
}

func (s *service) checkTicketCount(n int) error {
	if n < 1 || (s.maxTickets > 0 && n > s.maxTickets) {
		msg := "must be at least 1"
		if s.maxTickets > 0 {
			msg = fmt.Sprintf("must be between 1 and %d", s.maxTickets)
		}
		return apperrors.Validation("Invalid number of tickets",
			apperrors.FieldError{Field: "num_tickets", Message: msg})
	}
	return nil
}
