package staging

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"busline/internal/shared/apperrors"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_RoundTrip(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, 30*time.Minute)
	ctx := context.Background()

	area := &Area{
		BusID:      3,
		NumTickets: 2,
		Passengers: []PassengerEntry{{Name: "Asha", Age: 29, Gender: GenderFemale, SeatPreference: SeatWindow}},
		StartedAt:  time.Date(2026, 1, 9, 10, 0, 0, 0, time.UTC),
	}
	data, err := json.Marshal(area)
	require.NoError(t, err)

	mock.ExpectSet("busline:staging:session:sid-1", data, 30*time.Minute).SetVal("OK")
	mock.ExpectGet("busline:staging:session:sid-1").SetVal(string(data))
	mock.ExpectDel("busline:staging:session:sid-1").SetVal(1)
	mock.ExpectGet("busline:staging:session:sid-1").RedisNil()

	require.NoError(t, store.Save(ctx, "sid-1", area))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, area, got)

	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_FailureIsStorageError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisStore(client, time.Minute)

	mock.ExpectGet("busline:staging:session:sid-2").SetErr(errors.New("i/o timeout"))

	_, err := store.Get(context.Background(), "sid-2")
	assert.True(t, apperrors.IsStorage(err))
}
