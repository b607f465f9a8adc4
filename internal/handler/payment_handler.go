package handler

import (
	"net/http"
	"strconv"
	"ticket-purchase/internal/model"
	"ticket-purchase/internal/repository"
	"ticket-purchase/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentHandler struct {
	repository repository.PaymentRepository
}

func NewPaymentHandler(repository repository.PaymentRepository) *PaymentHandler {
	return &PaymentHandler{repository: repository}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("accounts/:id/payments", h.ListByAccount)
	}
}

func (h *PaymentHandler) ListByAccount(c *gin.Context) {
	accountID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || accountID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid account id"})
		return
	}

	payments, err := h.repository.ListByAccountID(c, accountID)
	if err != nil {
		logger.WithComponent("handler").Error("Unexpected error",
			zap.String("operation", "ListByAccount"), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if payments == nil {
		payments = []*model.Payment{}
	}

	c.JSON(http.StatusOK, payments)
}
