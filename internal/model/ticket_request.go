package model

import apperrors "ticket-purchase/pkg/app_errors"

// Category 乘客票種
type Category string

const (
	CategoryAdult  Category = "ADULT"
	CategoryChild  Category = "CHILD"
	CategoryInfant Category = "INFANT"
)

var unitPrices = map[Category]int{
	CategoryAdult:  20,
	CategoryChild:  10,
	CategoryInfant: 0,
}

// Categories 所有票種，依固定順序
var Categories = []Category{CategoryAdult, CategoryChild, CategoryInfant}

// IsValid 驗證票種是否有效
func (c Category) IsValid() bool {
	_, ok := unitPrices[c]
	return ok
}

// UnitPrice 單張票價；無效票種回傳 0
func (c Category) UnitPrice() int {
	return unitPrices[c]
}

// OccupiesSeat 嬰兒不佔座位
func (c Category) OccupiesSeat() bool {
	return c != CategoryInfant
}

// TicketRequest 單一票種的購買數量
type TicketRequest struct {
	Category Category `json:"type"`
	Count    int      `json:"count"`
}

func NewTicketRequest(category Category, count int) TicketRequest {
	return TicketRequest{Category: category, Count: count}
}

// Validate 先檢查數量，再檢查票種
func (r TicketRequest) Validate() error {
	if r.Count < 0 {
		return apperrors.NewInvalidPurchase(apperrors.ErrNegativeQuantity)
	}
	if !r.Category.IsValid() {
		return apperrors.NewInvalidPurchase(apperrors.ErrMissingCategory)
	}
	return nil
}

func (r TicketRequest) LineCost() int {
	return r.Count * r.Category.UnitPrice()
}
