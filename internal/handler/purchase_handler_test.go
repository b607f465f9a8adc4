package handler_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ticket-purchase/internal/handler"
	"ticket-purchase/internal/model"
	"ticket-purchase/internal/service"
	"ticket-purchase/internal/service/mocks"
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupPurchaseTestRouter(ticketService service.TicketService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	purchaseHandler := handler.NewPurchaseHandler(ticketService)
	purchaseHandler.RegisterRoutes(router)

	return router
}

func TestPurchaseTickets(t *testing.T) {
	body := map[string]interface{}{
		"account_id": 1,
		"tickets": []map[string]interface{}{
			{"type": "ADULT", "count": 2},
			{"type": "INFANT", "count": 1},
		},
		"discount_code": "SPRING",
	}

	t.Run("Success", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupPurchaseTestRouter(mockService)

		mockService.EXPECT().PurchaseTickets(mock.Anything, mock.MatchedBy(func(req model.PurchaseRequest) bool {
			code, ok := req.DiscountCode()
			return req.AccountID() == 1 && req.SeatCount() == 2 && req.Cost() == 40 && ok && code == "SPRING"
		})).Return(&model.PurchaseReceipt{AccountID: 1, Tickets: 3, Seats: 2, Amount: 32, DiscountApplied: true, DiscountFraction: 0.2}, nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(w.Body)
		assert.Equal(t, float64(32), resp["amount"])
		assert.Equal(t, float64(2), resp["seats"])
	})

	t.Run("Success - end to end with real service", func(t *testing.T) {
		seats := mocks.NewMockSeatReservationService(t)
		payment := mocks.NewMockTicketPaymentService(t)
		router := setupPurchaseTestRouter(service.NewTicketService(payment, seats, nil))

		seats.EXPECT().ReserveSeat(mock.Anything, int64(1), 2).Return(nil).Once()
		payment.EXPECT().MakePayment(mock.Anything, int64(1), 40).Return(nil).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Failed - validation error returns kind", func(t *testing.T) {
		seats := mocks.NewMockSeatReservationService(t)
		payment := mocks.NewMockTicketPaymentService(t)
		router := setupPurchaseTestRouter(service.NewTicketService(payment, seats, nil))

		invalid := map[string]interface{}{
			"account_id": 1,
			"tickets":    []map[string]interface{}{{"type": "INFANT", "count": 30}},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/purchases", invalid)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeBody(w.Body)
		assert.Equal(t, "TooManyTickets", resp["kind"])
		assert.Equal(t, "Too many tickets were requested: 30.", resp["error"])
	})

	t.Run("Failed - unknown ticket type", func(t *testing.T) {
		seats := mocks.NewMockSeatReservationService(t)
		payment := mocks.NewMockTicketPaymentService(t)
		router := setupPurchaseTestRouter(service.NewTicketService(payment, seats, nil))

		invalid := map[string]interface{}{
			"account_id": 1,
			"tickets":    []map[string]interface{}{{"type": "ADULT", "count": 1}, {"count": 1}},
		}
		req := createJSONHTTPRequest("POST", "/api/v1/purchases", invalid)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "MissingCategory", decodeBody(w.Body)["kind"])
	})

	t.Run("Failed - ErrInsufficientSeats", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupPurchaseTestRouter(mockService)

		mockService.EXPECT().PurchaseTickets(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInsufficientSeats).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - ErrSeatInventoryNotFound", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupPurchaseTestRouter(mockService)

		mockService.EXPECT().PurchaseTickets(mock.Anything, mock.Anything).Return(nil, apperrors.ErrSeatInventoryNotFound).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Failed - unexpected error", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupPurchaseTestRouter(mockService)

		mockService.EXPECT().PurchaseTickets(mock.Anything, mock.Anything).Return(nil, errors.New("payment gateway down")).Once()

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", body)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})

	t.Run("Failed - BindingError", func(t *testing.T) {
		mockService := mocks.NewMockTicketService(t)
		router := setupPurchaseTestRouter(mockService)

		req := createJSONHTTPRequest("POST", "/api/v1/purchases", InvalidJSON)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "PurchaseTickets", mock.Anything, mock.Anything)
	})
}
