package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	apperrors "ticket-purchase/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

const DiscountCodesKey = "discount:codes"

type RedisDiscountManager interface {
	// 新增或更新折扣碼；accountID 為 0 時為全域折扣碼
	PutCode(ctx context.Context, accountID int64, code string, fraction float64) error
	RemoveCode(ctx context.Context, accountID int64, code string) error
	// 查詢折扣：先查帳號專屬，再查全域。找不到時 ok 為 false，err 只用於 Redis 錯誤
	GetDiscount(ctx context.Context, accountID int64, code string) (bool, float64, error)
}

type RedisDiscountManagerImpl struct {
	client *redis.Client
}

func NewRedisDiscountManager(client *redis.Client) RedisDiscountManager {
	return &RedisDiscountManagerImpl{
		client: client,
	}
}

func (m *RedisDiscountManagerImpl) getCodesKey(accountID int64) string {
	if accountID == 0 {
		return DiscountCodesKey
	}
	return fmt.Sprintf("%s:%d", DiscountCodesKey, accountID)
}

func (m *RedisDiscountManagerImpl) PutCode(ctx context.Context, accountID int64, code string, fraction float64) error {
	if code == "" || fraction < 0 || fraction > 1 {
		return apperrors.ErrInvalidDiscount
	}
	return m.client.HSet(ctx, m.getCodesKey(accountID), code, fraction).Err()
}

func (m *RedisDiscountManagerImpl) RemoveCode(ctx context.Context, accountID int64, code string) error {
	return m.client.HDel(ctx, m.getCodesKey(accountID), code).Err()
}

func (m *RedisDiscountManagerImpl) GetDiscount(ctx context.Context, accountID int64, code string) (bool, float64, error) {
	if code == "" {
		return false, 0, nil
	}

	keys := []string{m.getCodesKey(accountID), DiscountCodesKey}
	for _, key := range keys {
		val, err := m.client.HGet(ctx, key, code).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return false, 0, fmt.Errorf("get discount: %w", err)
		}

		fraction, err := strconv.ParseFloat(val, 64)
		if err != nil || fraction < 0 || fraction > 1 {
			// 資料損毀的折扣碼視為無效
			return false, 0, nil
		}
		return true, fraction, nil
	}

	return false, 0, nil
}
