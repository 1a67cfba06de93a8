package wallets

import (
	"time"

	"busline/pkg/money"

	"github.com/google/uuid"
)

// Wallet is the single prepaid balance a user pays bookings from.
type Wallet struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	UserID    uuid.UUID    `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	Balance   money.Amount `gorm:"type:numeric(12,2);not null;default:0" json:"balance"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Wallet) TableName() string {
	return "wallets"
}

// CanPay reports whether the balance covers amount.
func (w *Wallet) CanPay(amount money.Amount) bool {
	return !w.Balance.LessThan(amount)
}
