package service

import (
	"context"

	"ticket-purchase/internal/metrics"
	"ticket-purchase/internal/model"
	"ticket-purchase/pkg/logger"

	"go.uber.org/zap"
)

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}

type TicketPaymentService interface {
	MakePayment(ctx context.Context, accountID int64, amount int) error
}

type DiscountService interface {
	// ok 為 false 表示折扣碼無效；err 只代表服務本身失敗
	GetDiscount(ctx context.Context, accountID int64, code string) (ok bool, fraction float64, err error)
}

type TicketService interface {
	// 購票：驗證 -> 預訂座位 -> (查詢折扣) -> 付款
	PurchaseTickets(ctx context.Context, req model.PurchaseRequest) (*model.PurchaseReceipt, error)
}

type TicketServiceImpl struct {
	paymentService  TicketPaymentService
	seatService     SeatReservationService
	discountService DiscountService
}

// NewTicketService discountService 可為 nil，此時一律以原價付款且不查詢折扣
func NewTicketService(
	paymentService TicketPaymentService,
	seatService SeatReservationService,
	discountService DiscountService,
) TicketService {
	return &TicketServiceImpl{
		paymentService:  paymentService,
		seatService:     seatService,
		discountService: discountService,
	}
}

func (s *TicketServiceImpl) PurchaseTickets(ctx context.Context, req model.PurchaseRequest) (*model.PurchaseReceipt, error) {
	log := logger.WithComponent("service").With(zap.Int64("account_id", req.AccountID()))

	// 1. 驗證失敗時不可呼叫任何外部服務
	if err := req.Validate(); err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return nil, err
	}

	// 2. 預訂座位
	seats := req.SeatCount()
	if err := s.seatService.ReserveSeat(ctx, req.AccountID(), seats); err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeSeatFailed).Inc()
		return nil, err
	}

	// 3. 計算金額
	receipt := &model.PurchaseReceipt{
		AccountID: req.AccountID(),
		Tickets:   req.TotalCount(),
		Seats:     seats,
		Amount:    req.Cost(),
	}

	ok, fraction, err := s.lookupDiscount(ctx, req)
	if err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}
	if ok {
		receipt.Amount = req.DiscountedCost(fraction)
		receipt.DiscountApplied = true
		receipt.DiscountFraction = fraction
	}

	// 4. 付款；失敗時不釋放已預訂的座位
	if err := s.paymentService.MakePayment(ctx, req.AccountID(), receipt.Amount); err != nil {
		metrics.PurchasesTotal.WithLabelValues(metrics.OutcomePaymentFail).Inc()
		return nil, err
	}

	metrics.PurchasesTotal.WithLabelValues(metrics.OutcomeCompleted).Inc()
	metrics.PurchaseAmount.Observe(float64(receipt.Amount))
	log.Info("tickets purchased",
		zap.Int("seats", receipt.Seats),
		zap.Int("amount", receipt.Amount),
		zap.Bool("discount_applied", receipt.DiscountApplied),
	)

	return receipt, nil
}

// lookupDiscount 沒有折扣碼或未設定折扣服務時直接回傳 false，不查詢
func (s *TicketServiceImpl) lookupDiscount(ctx context.Context, req model.PurchaseRequest) (bool, float64, error) {
	code, hasCode := req.DiscountCode()
	if !hasCode || s.discountService == nil {
		return false, 0, nil
	}

	ok, fraction, err := s.discountService.GetDiscount(ctx, req.AccountID(), code)
	if err != nil {
		return false, 0, err
	}
	if !ok || fraction < 0 || fraction > 1 {
		metrics.DiscountLookups.WithLabelValues("invalid").Inc()
		logger.WithComponent("service").Info("invalid discount code, charging full price",
			zap.Int64("account_id", req.AccountID()))
		return false, 0, nil
	}

	metrics.DiscountLookups.WithLabelValues("applied").Inc()
	return true, fraction, nil
}
