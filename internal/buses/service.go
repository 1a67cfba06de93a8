package buses

import (
	"context"
	"strconv"
	"strings"
	"time"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/constants"
	"busline/internal/shared/session"
	"busline/pkg/cache"
	"busline/pkg/logger"
)

type Service interface {
	Search(ctx context.Context, req SearchRequest) ([]Bus, error)
	GetBus(ctx context.Context, id uint) (*Bus, error)

	// Admin operations
	CreateBus(ctx context.Context, sc session.Context, req CreateBusRequest) (*Bus, error)
	ListBuses(ctx context.Context, sc session.Context) ([]Bus, error)

	// InvalidateSearchCache drops cached search results after seat counts change.
	InvalidateSearchCache(ctx context.Context)
}

type service struct {
	repo       Repository
	cache      cache.Service
	cacheTTL   time.Duration
	maxTickets int
	log        *logger.Logger
}

// NewService wires the bus service. cacheSvc may be nil, in which case every
// search goes to the database.
func NewService(repo Repository, cacheSvc cache.Service, cacheTTL time.Duration, maxTickets int) Service {
	if cacheTTL <= 0 {
		cacheTTL = constants.TTL_BUS_SEARCH
	}
	return &service{
		repo:       repo,
		cache:      cacheSvc,
		cacheTTL:   cacheTTL,
		maxTickets: maxTickets,
		log:        logger.GetDefault(),
	}
}

func (s *service) Search(ctx context.Context, req SearchRequest) ([]Bus, error) {
	source := strings.TrimSpace(req.Source)
	destination := strings.TrimSpace(req.Destination)

	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, apperrors.Validation("Invalid travel date",
			apperrors.FieldError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if req.NumTickets < 1 || (s.maxTickets > 0 && req.NumTickets > s.maxTickets) {
		return nil, apperrors.Validation("Invalid number of tickets", ticketCountError(s.maxTickets))
	}

	from, to := DayRange(day)
	if s.cache == nil {
		return s.repo.Search(ctx, source, destination, from, to)
	}

	var list []Bus
	key := constants.BuildBusSearchKey(source, destination, req.Date)
	err = s.cache.GetOrSet(ctx, key, s.cacheTTL, func() (interface{}, error) {
		return s.repo.Search(ctx, source, destination, from, to)
	}, &list)
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *service) GetBus(ctx context.Context, id uint) (*Bus, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) CreateBus(ctx context.Context, sc session.Context, req CreateBusRequest) (*Bus, error) {
	if !sc.IsPrivileged() {
		return nil, apperrors.AuthorizationError{Msg: "Only administrators can add buses"}
	}

	var fields []apperrors.FieldError
	if req.Fare.IsNegative() {
		fields = append(fields, apperrors.FieldError{Field: "fare", Message: "must be at least 0"})
	}
	if req.TotalSeats < 1 {
		fields = append(fields, apperrors.FieldError{Field: "total_seats", Message: "must be at least 1"})
	}
	if req.ArrivalTime != nil && !req.ArrivalTime.After(req.DepartureTime) {
		fields = append(fields, apperrors.FieldError{Field: "arrival_time", Message: "must be after departure_time"})
	}
	if len(fields) > 0 {
		return nil, apperrors.Validation("Validation failed", fields...)
	}

	bus := &Bus{
		BusName:        strings.TrimSpace(req.BusName),
		BusNumber:      strings.TrimSpace(req.BusNumber),
		Source:         strings.TrimSpace(req.Source),
		Destination:    strings.TrimSpace(req.Destination),
		DepartureTime:  req.DepartureTime.UTC(),
		Fare:           req.Fare,
		TotalSeats:     req.TotalSeats,
		AvailableSeats: req.TotalSeats,
	}
	if req.ArrivalTime != nil {
		arrival := req.ArrivalTime.UTC()
		bus.ArrivalTime = &arrival
	}

	if err := s.repo.Create(ctx, bus); err != nil {
		return nil, err
	}

	s.log.LogBusCreated(ctx, bus.ID, sc.UserID.String())
	s.InvalidateSearchCache(ctx)

	return bus, nil
}

func (s *service) ListBuses(ctx context.Context, sc session.Context) ([]Bus, error) {
	if !sc.IsPrivileged() {
		return nil, apperrors.AuthorizationError{Msg: "Only administrators can view the dashboard"}
	}
	return s.repo.List(ctx)
}

func (s *service) InvalidateSearchCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, constants.PATTERN_INVALIDATE_BUSES_ALL); err != nil {
		s.log.WarnContext(ctx, "Failed to invalidate bus search cache", "error", err.Error())
	}
}

func ticketCountError(limit int) apperrors.FieldError {
	if limit > 0 {
		return apperrors.FieldError{Field: "num_tickets", Message: "must be between 1 and " + strconv.Itoa(limit)}
	}
	return apperrors.FieldError{Field: "num_tickets", Message: "must be at least 1"}
}
