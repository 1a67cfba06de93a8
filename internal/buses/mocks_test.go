package buses

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, bus *Bus) error {
	args := m.Called(ctx, bus)
	if args.Error(0) == nil {
		bus.ID = 7
	}
	return args.Error(0)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bus), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]Bus, error) {
	args := m.Called(ctx)
	return args.Get(0).([]Bus), args.Error(1)
}

func (m *MockRepository) Search(ctx context.Context, source, destination string, from, to time.Time) ([]Bus, error) {
	args := m.Called(ctx, source, destination, from, to)
	return args.Get(0).([]Bus), args.Error(1)
}

func (m *MockRepository) LockByID(ctx context.Context, id uint) (*Bus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Bus), args.Error(1)
}

func (m *MockRepository) DecrementSeats(ctx context.Context, id uint, n int, guard bool) error {
	return m.Called(ctx, id, n, guard).Error(0)
}
