package buses

import (
	"context"
	"testing"
	"time"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Search_OrdersByDepartureThenID(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)
	from := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT \* FROM "buses" WHERE .*source = \$1 AND destination = \$2.*departure_time >= \$3 AND departure_time < \$4.* ORDER BY departure_time ASC,id ASC`).
		WithArgs("Pune", "Goa", from, from.AddDate(0, 0, 1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "source", "destination", "fare", "available_seats"}).
			AddRow(2, "Pune", "Goa", "500.00", 40).
			AddRow(5, "Pune", "Goa", "650.00", 12))

	list, err := repo.Search(context.Background(), "Pune", "Goa", from, from.AddDate(0, 0, 1))
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, uint(2), list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_DecrementSeats(t *testing.T) {
	t.Run("guarded update reports sold out", func(t *testing.T) {
		db, mock := dbtest.NewMockDB(t)
		mock.ExpectExec(`UPDATE "buses" SET "available_seats"=available_seats - \$1.* WHERE id = \$\d+ AND available_seats >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewRepository(db).DecrementSeats(context.Background(), 3, 2, true)
		assert.True(t, apperrors.IsConflict(err))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unguarded update has no seat condition", func(t *testing.T) {
		db, mock := dbtest.NewMockDB(t)
		mock.ExpectExec(`UPDATE "buses" SET "available_seats"=available_seats - \$1,"updated_at"=\$2 WHERE id = \$3$`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, NewRepository(db).DecrementSeats(context.Background(), 3, 2, false))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_LockByID_NotFound(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mock.ExpectQuery(`SELECT \* FROM "buses" WHERE "buses"."id" = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := NewRepository(db).LockByID(context.Background(), 99)
	assert.True(t, apperrors.IsNotFound(err))
}
