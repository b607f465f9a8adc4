package cache

import (
	"context"
	"errors"
	"fmt"
	apperrors "ticket-purchase/pkg/app_errors"
	"ticket-purchase/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	SeatInventoryKey = "seats:inventory"
	SeatAccountsKey  = "seats:accounts"
)

type RedisSeatReservationManager interface {
	// 預熱：設定可售座位數，並清空帳號預訂紀錄
	WarmUpSeats(ctx context.Context, capacity int) error
	// 獲取：剩餘座位數
	GetAvailableSeats(ctx context.Context) (int, error)
	// 獲取：帳號已預訂座位數
	GetReservedByAccount(ctx context.Context, accountID int64) (int, error)
	// 預訂：扣減座位並記錄帳號 (使用Lua腳本確保原子性)
	ReserveSeat(ctx context.Context, accountID int64, seats int) error
}

type RedisSeatReservationManagerImpl struct {
	client *redis.Client
}

func NewRedisSeatReservationManager(client *redis.Client) RedisSeatReservationManager {
	return &RedisSeatReservationManagerImpl{
		client: client,
	}
}

func accountField(accountID int64) string {
	return fmt.Sprintf("%d", accountID)
}

func (m *RedisSeatReservationManagerImpl) WarmUpSeats(ctx context.Context, capacity int) error {
	if capacity < 0 {
		return fmt.Errorf("invalid seat capacity: %d", capacity)
	}
	_, err := m.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, SeatInventoryKey, map[string]interface{}{
			"capacity":  capacity,
			"available": capacity,
		})
		pipe.Del(ctx, SeatAccountsKey)
		return nil
	})
	return err
}

func (m *RedisSeatReservationManagerImpl) GetAvailableSeats(ctx context.Context) (int, error) {
	val, err := m.client.HGet(ctx, SeatInventoryKey, "available").Int()
	if errors.Is(err, redis.Nil) {
		return -1, apperrors.ErrSeatInventoryNotFound
	}
	return val, err
}

func (m *RedisSeatReservationManagerImpl) GetReservedByAccount(ctx context.Context, accountID int64) (int, error) {
	val, err := m.client.HGet(ctx, SeatAccountsKey, accountField(accountID)).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return val, err
}

var reserveSeatScript = redis.NewScript(`
	local inventory_key = KEYS[1]
	local accounts_key = KEYS[2]

	local account_id = ARGV[1]
	local request_seats = tonumber(ARGV[2])

	-- 1. 座位資訊未預熱
	local available = redis.call('HGET', inventory_key, 'available')
	if not available then
		return -2
	end

	-- 2. 剩餘座位不足
	if tonumber(available) < request_seats then
		return -1
	end

	-- 3. 扣減座位並記錄帳號
	redis.call('HINCRBY', inventory_key, 'available', -request_seats)
	redis.call('HINCRBY', accounts_key, account_id, request_seats)

	return 1
`)

/*
ReserveSeat 預訂座位
 1. 檢查座位資訊是否存在
 2. 檢查剩餘座位
 3. 扣減並記錄
*/
func (m *RedisSeatReservationManagerImpl) ReserveSeat(ctx context.Context, accountID int64, seats int) error {
	if seats < 0 {
		return fmt.Errorf("invalid seat count: %d", seats)
	}

	code, err := reserveSeatScript.Run(ctx, m.client,
		[]string{SeatInventoryKey, SeatAccountsKey},
		accountField(accountID), seats,
	).Int()
	if err != nil {
		return fmt.Errorf("reserve seat: %w", err)
	}

	switch code {
	case 1:
		logger.WithComponent("cache").Debug("seats reserved",
			zap.Int64("account_id", accountID), zap.Int("seats", seats))
		return nil
	case -1:
		return apperrors.ErrInsufficientSeats
	case -2:
		return apperrors.ErrSeatInventoryNotFound
	default:
		return errors.New("unexpected result")
	}
}
