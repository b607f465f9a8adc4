package handler

import (
	"errors"
	"net/http"
	"ticket-purchase/internal/cache"
	apperrors "ticket-purchase/pkg/app_errors"
	"ticket-purchase/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InventoryHandler 座位與折扣碼管理
type InventoryHandler struct {
	seats     cache.RedisSeatReservationManager
	discounts cache.RedisDiscountManager
}

func NewInventoryHandler(seats cache.RedisSeatReservationManager, discounts cache.RedisDiscountManager) *InventoryHandler {
	return &InventoryHandler{seats: seats, discounts: discounts}
}

func (h *InventoryHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.GET("seats", h.GetSeats)
		router.PUT("seats", h.WarmUpSeats)
		router.PUT("discounts/:code", h.PutDiscount)
		router.DELETE("discounts/:code", h.DeleteDiscount)
	}
}

type WarmUpSeatsRequest struct {
	Capacity *int `json:"capacity" binding:"required,min=0"`
}

// PutDiscountRequest account_id 省略或為 0 時為全域折扣碼
type PutDiscountRequest struct {
	AccountID int64    `json:"account_id" binding:"min=0"`
	Fraction  *float64 `json:"fraction" binding:"required,min=0,max=1"`
}

type DeleteDiscountQuery struct {
	AccountID int64 `form:"account_id" binding:"min=0"`
}

func (h *InventoryHandler) GetSeats(c *gin.Context) {
	available, err := h.seats.GetAvailableSeats(c)
	if err != nil {
		h.handleError(c, err, "GetSeats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": available})
}

func (h *InventoryHandler) WarmUpSeats(c *gin.Context) {
	var req WarmUpSeatsRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	if err := h.seats.WarmUpSeats(c, *req.Capacity); err != nil {
		h.handleError(c, err, "WarmUpSeats")
		return
	}
	c.JSON(http.StatusOK, gin.H{"available": *req.Capacity})
}

func (h *InventoryHandler) PutDiscount(c *gin.Context) {
	var req PutDiscountRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	code := c.Param("code")
	if err := h.discounts.PutCode(c, req.AccountID, code, *req.Fraction); err != nil {
		h.handleError(c, err, "PutDiscount")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) DeleteDiscount(c *gin.Context) {
	var query DeleteDiscountQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	if err := h.discounts.RemoveCode(c, query.AccountID, c.Param("code")); err != nil {
		h.handleError(c, err, "DeleteDiscount")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrSeatInventoryNotFound):
		log.Warn("Seat inventory not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Seat inventory not found"})
	case errors.Is(err, apperrors.ErrInvalidDiscount):
		log.Warn("Invalid discount")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid discount"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
