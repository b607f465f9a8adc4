package handler

import (
	"errors"
	"net/http"
	"ticket-purchase/internal/model"
	"ticket-purchase/internal/service"
	apperrors "ticket-purchase/pkg/app_errors"
	"ticket-purchase/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PurchaseHandler struct {
	service service.TicketService
}

func NewPurchaseHandler(service service.TicketService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

func (h *PurchaseHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("purchases", h.PurchaseTickets)
	}
}

// PurchaseTicketsRequest 購票請求。欄位規則由 model.PurchaseRequest.Validate 檢查
type PurchaseTicketsRequest struct {
	AccountID    int64                 `json:"account_id"`
	Tickets      []model.TicketRequest `json:"tickets"`
	DiscountCode *string               `json:"discount_code"`
}

func (h *PurchaseHandler) PurchaseTickets(c *gin.Context) {
	var req PurchaseTicketsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}

	purchase := model.NewPurchaseRequest(req.AccountID, req.Tickets, req.DiscountCode)
	receipt, err := h.service.PurchaseTickets(c, purchase)
	if err != nil {
		h.handlePurchaseError(c, err, "PurchaseTickets")
		return
	}

	c.JSON(http.StatusCreated, receipt)
}

func (h *PurchaseHandler) handlePurchaseError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrInvalidPurchase):
		log.Warn("Invalid purchase")
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
			"kind":  apperrors.KindName(err),
		})
	case errors.Is(err, apperrors.ErrInsufficientSeats):
		log.Warn("Insufficient seats")
		c.JSON(http.StatusConflict, gin.H{
			"error": "Insufficient seats",
		})
	case errors.Is(err, apperrors.ErrSeatInventoryNotFound):
		log.Error("Seat inventory not initialized")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Seat reservation unavailable",
		})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
