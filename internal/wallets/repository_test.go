package wallets

import (
	"context"
	"testing"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/dbtest"
	"busline/pkg/money"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_LockByUserID(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)
	userID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "wallets" WHERE user_id = \$1 .*FOR UPDATE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance"}).AddRow(1, userID.String(), "2000.00"))

	wallet, err := repo.LockByUserID(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, money.FromMajor(2000), wallet.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_LockByUserID_NotFound(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "wallets"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "balance"}))

	_, err := repo.LockByUserID(context.Background(), uuid.New())
	assert.True(t, apperrors.IsNotFound(err))
}

func TestRepository_Debit_IsConditional(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE "wallets" SET "balance"=balance - \$1.* WHERE user_id = \$\d+ AND balance >= \$\d+`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Debit(context.Background(), uuid.New(), money.FromMajor(1500))
	assert.True(t, apperrors.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Credit_ReturnsBalance(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`UPDATE "wallets" SET "balance"=balance \+ \$1.* RETURNING "balance"`).
		WillReturnRows(sqlmock.NewRows([]string{"balance"}).AddRow("750.50"))

	balance, err := repo.Credit(context.Background(), uuid.New(), money.MustParse("250.50"))
	require.NoError(t, err)
	assert.Equal(t, money.MustParse("750.50"), balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
