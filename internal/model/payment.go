package model

import (
	"time"

	"github.com/google/uuid"
)

// Payment 付款紀錄
type Payment struct {
	ID        int       `json:"id" db:"id"`
	PaymentID uuid.UUID `json:"payment_id" db:"payment_id"`
	AccountID int64     `json:"account_id" db:"account_id"`
	Amount    int       `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// PurchaseReceipt 購票完成後的結果
type PurchaseReceipt struct {
	AccountID        int64   `json:"account_id"`
	Tickets          int     `json:"tickets"`
	Seats            int     `json:"seats"`
	Amount           int     `json:"amount"`
	DiscountApplied  bool    `json:"discount_applied"`
	DiscountFraction float64 `json:"discount_fraction,omitempty"`
}
