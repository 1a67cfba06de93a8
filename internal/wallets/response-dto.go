package wallets

import (
	"busline/pkg/money"

	"github.com/google/uuid"
)

type BalanceResponse struct {
	UserID  uuid.UUID    `json:"user_id"`
	Balance money.Amount `json:"balance"`
}

type TopUpResponse struct {
	Amount   money.Amount `json:"amount"`
	Balance  money.Amount `json:"balance"`
	Redirect string       `json:"redirect"`
}
