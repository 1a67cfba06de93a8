package wallets

import (
	"context"
	"errors"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/database/tx"
	"busline/pkg/money"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	Create(ctx context.Context, wallet *Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error)
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// Row lock for the commit workflow. Must run inside a transaction.
	LockByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error)

	// Credit adds amount and returns the new balance.
	Credit(ctx context.Context, userID uuid.UUID, amount money.Amount) (money.Amount, error)
	// Debit subtracts amount only while the balance still covers it.
	Debit(ctx context.Context, userID uuid.UUID, amount money.Amount) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, wallet *Wallet) error {
	if err := tx.Conn(ctx, r.db).Create(wallet).Error; err != nil {
		return apperrors.Storage("create wallet", err)
	}
	return nil
}

func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	var wallet Wallet
	err := tx.Conn(ctx, r.db).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		return nil, mapLoadError(err)
	}
	return &wallet, nil
}

func (r *repository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	wallet := Wallet{UserID: userID}
	err := tx.Conn(ctx, r.db).
		Where(Wallet{UserID: userID}).
		FirstOrCreate(&wallet).Error
	if err != nil {
		return nil, apperrors.Storage("load wallet", err)
	}
	return &wallet, nil
}

func (r *repository) LockByUserID(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	var wallet Wallet
	err := tx.Conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("user_id = ?", userID).
		First(&wallet).Error
	if err != nil {
		return nil, mapLoadError(err)
	}
	return &wallet, nil
}

func (r *repository) Credit(ctx context.Context, userID uuid.UUID, amount money.Amount) (money.Amount, error) {
	var wallet Wallet
	result := tx.Conn(ctx, r.db).
		Model(&wallet).
		Clauses(clause.Returning{Columns: []clause.Column{{Name: "balance"}}}).
		Where("user_id = ?", userID).
		Update("balance", gorm.Expr("balance + ?", amount))
	if result.Error != nil {
		return 0, apperrors.Storage("credit wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, apperrors.NotFound("wallet")
	}
	return wallet.Balance, nil
}

func (r *repository) Debit(ctx context.Context, userID uuid.UUID, amount money.Amount) error {
	result := tx.Conn(ctx, r.db).
		Model(&Wallet{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Update("balance", gorm.Expr("balance - ?", amount))
	if result.Error != nil {
		return apperrors.Storage("debit wallet", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ConflictError{Resource: "wallet", Msg: "balance changed during commit"}
	}
	return nil
}

func mapLoadError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFoundError{Resource: "wallet", Err: err}
	}
	return apperrors.Storage("load wallet", err)
}
