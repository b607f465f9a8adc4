package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeCompleted   = "completed"
	OutcomeRejected    = "rejected"
	OutcomeSeatFailed  = "seat_failed"
	OutcomePaymentFail = "payment_failed"
	OutcomeError       = "error"
)

var (
	// PurchasesTotal 購票請求數，依結果分類
	PurchasesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticket",
			Name:      "purchases_total",
			Help:      "The total number of ticket purchase attempts by outcome",
		},
		[]string{"outcome"},
	)

	// DiscountLookups 折扣查詢數，依是否有效分類
	DiscountLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "ticket",
			Name:      "discount_lookups_total",
			Help:      "The total number of discount code lookups by result",
		},
		[]string{"result"},
	)

	PurchaseAmount = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "ticket",
			Name:      "purchase_amount",
			Help:      "Amount charged per completed purchase",
			Buckets:   []float64{0, 20, 40, 80, 120, 200, 300, 400},
		},
	)
)
