package wallets

import "busline/pkg/money"

type TopUpRequest struct {
	Amount money.Amount `json:"amount" binding:"required"`
}
