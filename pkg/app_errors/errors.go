package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInsufficientSeats     = errors.New("insufficient seats")
	ErrSeatInventoryNotFound = errors.New("seat inventory not found")
	ErrInvalidDiscount       = errors.New("invalid discount")
	ErrPaymentNotFound       = errors.New("payment not found")
	ErrInternalServerError   = errors.New("internal server error")
)

// ErrInvalidPurchase 所有購票驗證錯誤的根
var ErrInvalidPurchase = errors.New("invalid purchase")

var (
	ErrInvalidAccount         = errors.New("invalid account")
	ErrNoItemsReceived        = errors.New("no ticket request received")
	ErrNegativeQuantity       = errors.New("negative quantity of tickets")
	ErrMissingCategory        = errors.New("missing ticket category")
	ErrTooManyTickets         = errors.New("too many tickets")
	ErrNoTicketsRequested     = errors.New("no tickets requested")
	ErrNoAdultsPresent        = errors.New("no adults present")
	ErrTooManyInfantsPerAdult = errors.New("too many infants per adult")
)

// InvalidPurchaseError 購票請求驗證失敗。Kind 為上方其中一個 sentinel，
// AccountID / Count 只在對應種類時有值。
type InvalidPurchaseError struct {
	Kind      error
	AccountID int64
	Count     int
}

func (e *InvalidPurchaseError) Error() string {
	switch e.Kind {
	case ErrInvalidAccount:
		return fmt.Sprintf("Invalid accountId: %d.", e.AccountID)
	case ErrNoItemsReceived:
		return "No ticket request received."
	case ErrNegativeQuantity:
		return "Cannot have negative quantity of tickets."
	case ErrMissingCategory:
		return "Ticket type cannot be null."
	case ErrTooManyTickets:
		return fmt.Sprintf("Too many tickets were requested: %d.", e.Count)
	case ErrNoTicketsRequested:
		return "No tickets were requested."
	case ErrNoAdultsPresent:
		return "No adults were present in request."
	case ErrTooManyInfantsPerAdult:
		return "Too many infants compared to adults."
	}
	return ErrInvalidPurchase.Error()
}

func (e *InvalidPurchaseError) Unwrap() error {
	return e.Kind
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrInvalidPurchase
}

func NewInvalidPurchase(kind error) *InvalidPurchaseError {
	return &InvalidPurchaseError{Kind: kind}
}

func NewInvalidAccount(accountID int64) *InvalidPurchaseError {
	return &InvalidPurchaseError{Kind: ErrInvalidAccount, AccountID: accountID}
}

func NewTooManyTickets(count int) *InvalidPurchaseError {
	return &InvalidPurchaseError{Kind: ErrTooManyTickets, Count: count}
}

// KindName 回傳錯誤種類名稱，供 API 回應使用
func KindName(err error) string {
	var ipe *InvalidPurchaseError
	if !errors.As(err, &ipe) {
		return ""
	}
	switch ipe.Kind {
	case ErrInvalidAccount:
		return "InvalidAccount"
	case ErrNoItemsReceived:
		return "NoItemsReceived"
	case ErrNegativeQuantity:
		return "NegativeQuantity"
	case ErrMissingCategory:
		return "MissingCategory"
	case ErrTooManyTickets:
		return "TooManyTickets"
	case ErrNoTicketsRequested:
		return "NoTicketsRequested"
	case ErrNoAdultsPresent:
		return "NoAdultsPresent"
	case ErrTooManyInfantsPerAdult:
		return "TooManyInfantsPerAdult"
	}
	return ""
}
