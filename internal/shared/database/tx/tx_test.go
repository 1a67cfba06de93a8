package tx

import (
	"context"
	"errors"
	"testing"

	"busline/internal/shared/database/dbtest"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTransaction_Commits(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE wallets`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := NewManager(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		conn := Conn(ctx, db)
		assert.NotSame(t, db, conn)
		return conn.Exec(`UPDATE wallets SET balance = balance + 1`).Error
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnError(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	boom := errors.New("boom")
	err := NewManager(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWithinTransaction_RollsBackOnPanic(t *testing.T) {
	db, mock := dbtest.NewMockDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback()

	assert.Panics(t, func() {
		_ = NewManager(db).WithinTransaction(context.Background(), func(ctx context.Context) error {
			panic("unexpected")
		})
	})
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_WithoutTransaction(t *testing.T) {
	db, _ := dbtest.NewMockDB(t)
	conn := Conn(context.Background(), db)
	require.NotNil(t, conn)
	assert.Equal(t, db.Dialector, conn.Dialector)
}
