package wallets

import (
	"context"

	"busline/internal/shared/apperrors"
	"busline/internal/shared/metrics"
	"busline/pkg/logger"
	"busline/pkg/money"

	"github.com/google/uuid"
)

type Service interface {
	GetBalance(ctx context.Context, userID uuid.UUID) (*Wallet, error)
	TopUp(ctx context.Context, userID uuid.UUID, amount money.Amount) (*Wallet, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{repo: repo, log: logger.GetDefault()}
}

// GetBalance returns the user's wallet, creating an empty one for accounts
// that predate wallet provisioning.
func (s *service) GetBalance(ctx context.Context, userID uuid.UUID) (*Wallet, error) {
	return s.repo.GetOrCreate(ctx, userID)
}

func (s *service) TopUp(ctx context.Context, userID uuid.UUID, amount money.Amount) (*Wallet, error) {
	if !amount.IsPositive() {
		return nil, apperrors.Validation("Amount must be greater than zero",
			apperrors.FieldError{Field: "amount", Message: "must be greater than 0"})
	}

	if _, err := s.repo.GetOrCreate(ctx, userID); err != nil {
		return nil, err
	}

	balance, err := s.repo.Credit(ctx, userID, amount)
	if err != nil {
		return nil, err
	}

	metrics.WalletTopUp()
	s.log.LogWalletTopUp(ctx, userID.String(), amount.String(), balance.String())

	return &Wallet{UserID: userID, Balance: balance}, nil
}
