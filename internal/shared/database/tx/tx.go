package tx

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

type txKey struct{}

// Transactor runs a function inside one database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Manager struct {
	db *gorm.DB
}

func NewManager(db *gorm.DB) *Manager {
	return &Manager{db: db}
}

// WithinTransaction executes fn within a transaction and injects the tx into
// the context. Any error returned by fn, or a panic, rolls everything back.
func (tm *Manager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
		if err != nil {
			tx.Rollback()
			return
		}
		if cerr := tx.Commit().Error; cerr != nil {
			err = fmt.Errorf("commit transaction: %w", cerr)
		}
	}()

	err = fn(context.WithValue(ctx, txKey{}, tx))
	return err
}

// Conn returns the transaction carried by ctx, or db bound to ctx when there
// is none. Repositories call it so the same code runs inside and outside a tx.
func Conn(ctx context.Context, db *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*gorm.DB); ok {
		return tx
	}
	return db.WithContext(ctx)
}
