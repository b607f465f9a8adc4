package main

import (
	"context"
	"log"
	"ticket-purchase/config"
	"ticket-purchase/internal/cache"
	"ticket-purchase/internal/database"
	"ticket-purchase/internal/handler"
	"ticket-purchase/internal/repository"
	"ticket-purchase/internal/service"
	"ticket-purchase/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()

	if err := logger.Init(cfg.Log.Path, cfg.Log.Debug); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.L.Sync()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		logger.L.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		logger.L.Fatal("Failed to prepare database schema", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.L.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	seats := cache.NewRedisSeatReservationManager(rdb)
	discounts := cache.NewRedisDiscountManager(rdb)
	payments := repository.NewPaymentRepository(pool)

	if cfg.Purchase.SeatCapacity > 0 {
		if err := seats.WarmUpSeats(context.Background(), cfg.Purchase.SeatCapacity); err != nil {
			logger.L.Fatal("Failed to warm up seats", zap.Error(err))
		}
		logger.L.Info("Seats warmed up", zap.Int("capacity", cfg.Purchase.SeatCapacity))
	}

	var discountService service.DiscountService
	if cfg.Purchase.DiscountEnabled {
		discountService = discounts
	}
	ticketService := service.NewTicketService(payments, seats, discountService)

	if !cfg.Log.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handler.NewPurchaseHandler(ticketService).RegisterRoutes(router)
	handler.NewInventoryHandler(seats, discounts).RegisterRoutes(router)
	handler.NewPaymentHandler(payments).RegisterRoutes(router)

	logger.L.Info("Server starting", zap.String("port", cfg.Server.Port), zap.Bool("discount_enabled", cfg.Purchase.DiscountEnabled))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.L.Fatal("Server stopped", zap.Error(err))
	}
}
