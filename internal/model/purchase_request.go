package model

import (
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/samber/lo"
)

const (
	MaxTicketsPerPurchase = 20
	MaxInfantsPerAdult    = 2
)

// PurchaseRequest 一次購票請求。建構後不可修改，Items 只在建構時複製一次。
type PurchaseRequest struct {
	accountID    int64
	items        []TicketRequest
	discountCode *string
}

func NewPurchaseRequest(accountID int64, items []TicketRequest, discountCode *string) PurchaseRequest {
	var copied []TicketRequest
	if items != nil {
		copied = make([]TicketRequest, len(items))
		copy(copied, items)
	}
	var code *string
	if discountCode != nil {
		c := *discountCode
		code = &c
	}
	return PurchaseRequest{accountID: accountID, items: copied, discountCode: code}
}

func (p PurchaseRequest) AccountID() int64 {
	return p.accountID
}

// Items 回傳副本
func (p PurchaseRequest) Items() []TicketRequest {
	out := make([]TicketRequest, len(p.items))
	copy(out, p.items)
	return out
}

// DiscountCode 第二個回傳值表示是否有折扣碼
func (p PurchaseRequest) DiscountCode() (string, bool) {
	if p.discountCode == nil {
		return "", false
	}
	return *p.discountCode, true
}

// Validate 依序檢查，遇到第一個錯誤即返回。檢查順序會決定回報哪個錯誤，不可調整。
func (p PurchaseRequest) Validate() error {
	if p.accountID < 1 {
		return apperrors.NewInvalidAccount(p.accountID)
	}

	if len(p.items) == 0 {
		return apperrors.NewInvalidPurchase(apperrors.ErrNoItemsReceived)
	}

	for _, item := range p.items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	total := p.TotalCount()
	if total > MaxTicketsPerPurchase {
		return apperrors.NewTooManyTickets(total)
	} else if total == 0 {
		return apperrors.NewInvalidPurchase(apperrors.ErrNoTicketsRequested)
	}

	adults := p.CountOf(CategoryAdult)
	if adults == 0 {
		return apperrors.NewInvalidPurchase(apperrors.ErrNoAdultsPresent)
	} else if MaxInfantsPerAdult*adults < p.CountOf(CategoryInfant) {
		return apperrors.NewInvalidPurchase(apperrors.ErrTooManyInfantsPerAdult)
	}

	return nil
}

// TotalCount 只計算已知票種
func (p PurchaseRequest) TotalCount() int {
	return lo.SumBy(Categories, p.CountOf)
}

func (p PurchaseRequest) CountOf(category Category) int {
	return lo.SumBy(p.items, func(r TicketRequest) int {
		if r.Category != category {
			return 0
		}
		return r.Count
	})
}

// SeatCount 嬰兒不佔座位
func (p PurchaseRequest) SeatCount() int {
	return lo.SumBy(p.items, func(r TicketRequest) int {
		if !r.Category.OccupiesSeat() {
			return 0
		}
		return r.Count
	})
}

// Cost 未折扣總價
func (p PurchaseRequest) Cost() int {
	return lo.SumBy(p.items, TicketRequest.LineCost)
}

// DiscountedCost fraction 介於 [0,1]，結果無條件捨去(往零截斷)，不四捨五入
func (p PurchaseRequest) DiscountedCost(fraction float64) int {
	return int(float64(p.Cost()) * (1 - fraction))
}
