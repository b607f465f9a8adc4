package model_test

import (
	"testing"

	"ticket-purchase/internal/model"
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adult(n int) model.TicketRequest  { return model.NewTicketRequest(model.CategoryAdult, n) }
func child(n int) model.TicketRequest  { return model.NewTicketRequest(model.CategoryChild, n) }
func infant(n int) model.TicketRequest { return model.NewTicketRequest(model.CategoryInfant, n) }

func TestTicketRequest_Validate(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		assert.NoError(t, adult(1).Validate())
		assert.NoError(t, child(0).Validate())
	})

	t.Run("Failed - NegativeQuantity", func(t *testing.T) {
		err := adult(-1).Validate()
		assert.ErrorIs(t, err, apperrors.ErrNegativeQuantity)
		assert.ErrorIs(t, err, apperrors.ErrInvalidPurchase)
		assert.Equal(t, "Cannot have negative quantity of tickets.", err.Error())
	})

	t.Run("Failed - MissingCategory", func(t *testing.T) {
		err := model.NewTicketRequest("", 1).Validate()
		assert.ErrorIs(t, err, apperrors.ErrMissingCategory)

		err = model.NewTicketRequest("SENIOR", 1).Validate()
		assert.ErrorIs(t, err, apperrors.ErrMissingCategory)
	})

	t.Run("Negative count reported before missing category", func(t *testing.T) {
		err := model.NewTicketRequest("", -1).Validate()
		assert.ErrorIs(t, err, apperrors.ErrNegativeQuantity)
	})
}

func TestTicketRequest_LineCost(t *testing.T) {
	assert.Equal(t, 60, adult(3).LineCost())
	assert.Equal(t, 20, child(2).LineCost())
	assert.Equal(t, 0, infant(2).LineCost())
}

func TestPurchaseRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		accountID int64
		items     []model.TicketRequest
		wantErr   error
	}{
		{"single adult", 1, []model.TicketRequest{adult(1)}, nil},
		{"mixed family", 1, []model.TicketRequest{adult(1), child(1), infant(1)}, nil},
		{"two infants per adult", 1, []model.TicketRequest{adult(1), infant(2)}, nil},
		{"exactly twenty", 1, []model.TicketRequest{adult(10), child(10)}, nil},
		{"zero account", 0, []model.TicketRequest{adult(1)}, apperrors.ErrInvalidAccount},
		{"negative account with bad items", -5, []model.TicketRequest{adult(-1)}, apperrors.ErrInvalidAccount},
		{"nil items", 1, nil, apperrors.ErrNoItemsReceived},
		{"empty items", 1, []model.TicketRequest{}, apperrors.ErrNoItemsReceived},
		{"negative quantity", 1, []model.TicketRequest{adult(1), child(-1)}, apperrors.ErrNegativeQuantity},
		{"missing category", 1, []model.TicketRequest{adult(1), {Count: 1}}, apperrors.ErrMissingCategory},
		{"item error masks total", 1, []model.TicketRequest{adult(25), infant(-1)}, apperrors.ErrNegativeQuantity},
		{"too many tickets", 1, []model.TicketRequest{adult(21)}, apperrors.ErrTooManyTickets},
		{"too many infant only", 1, []model.TicketRequest{infant(30)}, apperrors.ErrTooManyTickets},
		{"all zero", 1, []model.TicketRequest{adult(0), child(0)}, apperrors.ErrNoTicketsRequested},
		{"infant only", 1, []model.TicketRequest{infant(1)}, apperrors.ErrNoAdultsPresent},
		{"child only", 1, []model.TicketRequest{child(2)}, apperrors.ErrNoAdultsPresent},
		{"too many infants", 1, []model.TicketRequest{adult(1), infant(3)}, apperrors.ErrTooManyInfantsPerAdult},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := model.NewPurchaseRequest(tt.accountID, tt.items, nil)
			err := req.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrInvalidPurchase)
		})
	}
}

func TestPurchaseRequest_ValidateErrorDetails(t *testing.T) {
	t.Run("InvalidAccount carries account id", func(t *testing.T) {
		err := model.NewPurchaseRequest(-3, []model.TicketRequest{adult(1)}, nil).Validate()

		var ipe *apperrors.InvalidPurchaseError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, int64(-3), ipe.AccountID)
		assert.Equal(t, "Invalid accountId: -3.", err.Error())
	})

	t.Run("TooManyTickets carries total across 21 line items", func(t *testing.T) {
		items := []model.TicketRequest{adult(1)}
		for i := 0; i < 20; i++ {
			items = append(items, child(1))
		}
		err := model.NewPurchaseRequest(1, items, nil).Validate()

		var ipe *apperrors.InvalidPurchaseError
		require.ErrorAs(t, err, &ipe)
		assert.Equal(t, apperrors.ErrTooManyTickets, ipe.Kind)
		assert.Equal(t, 21, ipe.Count)
		assert.Equal(t, "Too many tickets were requested: 21.", err.Error())
	})
}

func TestPurchaseRequest_SeatCountAndCost(t *testing.T) {
	t.Run("Single adult", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(1)}, nil)
		require.NoError(t, req.Validate())
		assert.Equal(t, 1, req.SeatCount())
		assert.Equal(t, 20, req.Cost())
	})

	t.Run("Infants take no seat and cost nothing", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(1), child(1), infant(1)}, nil)
		require.NoError(t, req.Validate())
		assert.Equal(t, 2, req.SeatCount())
		assert.Equal(t, 30, req.Cost())
		assert.Equal(t, req.TotalCount()-req.CountOf(model.CategoryInfant), req.SeatCount())
		assert.LessOrEqual(t, req.SeatCount(), req.TotalCount())
	})

	t.Run("Repeated line items are summed", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(2), infant(1), adult(1), child(3)}, nil)
		require.NoError(t, req.Validate())
		assert.Equal(t, 3, req.CountOf(model.CategoryAdult))
		assert.Equal(t, 7, req.TotalCount())
		assert.Equal(t, 6, req.SeatCount())
		assert.Equal(t, 90, req.Cost())
	})

	t.Run("Queries are idempotent", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(2), child(1)}, nil)
		assert.Equal(t, req.SeatCount(), req.SeatCount())
		assert.Equal(t, req.Cost(), req.Cost())
		assert.Equal(t, 50, req.Cost())
	})
}

func TestPurchaseRequest_DiscountedCost(t *testing.T) {
	t.Run("Twenty percent off one adult", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(1)}, nil)
		assert.Equal(t, 16, req.DiscountedCost(0.2))
	})

	t.Run("Zero discount equals cost", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(3), child(2), infant(1)}, nil)
		assert.Equal(t, req.Cost(), req.DiscountedCost(0))
	})

	t.Run("Truncates instead of rounding", func(t *testing.T) {
		// 30 * 0.67 = 20.1, 30 * 0.01 = 0.3
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(1), child(1)}, nil)
		assert.Equal(t, 20, req.DiscountedCost(0.33))
		assert.Equal(t, 0, req.DiscountedCost(0.99))
		assert.Equal(t, 0, req.DiscountedCost(1))
	})

	t.Run("Non-increasing in fraction", func(t *testing.T) {
		req := model.NewPurchaseRequest(1, []model.TicketRequest{adult(7), child(6)}, nil)
		prev := req.DiscountedCost(0)
		for i := 1; i <= 100; i++ {
			cur := req.DiscountedCost(float64(i) / 100)
			assert.LessOrEqual(t, cur, prev)
			prev = cur
		}
	})
}

func TestPurchaseRequest_Immutable(t *testing.T) {
	items := []model.TicketRequest{adult(1)}
	code := "SPRING"
	req := model.NewPurchaseRequest(1, items, &code)

	items[0] = adult(5)
	code = "CHANGED"
	got := req.Items()
	got[0] = child(9)

	assert.Equal(t, 20, req.Cost())
	discount, ok := req.DiscountCode()
	assert.True(t, ok)
	assert.Equal(t, "SPRING", discount)

	_, ok = model.NewPurchaseRequest(1, items, nil).DiscountCode()
	assert.False(t, ok)
}
