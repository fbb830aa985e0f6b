package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/redis/go-redis/v9"
)

// RedisLimiter - ограничитель с фиксированным окном в Redis, общий для всех экземпляров сервиса
type RedisLimiter struct {
	client redis.Cmdable
	quotas Quotas
	now    func() time.Time
}

// NewRedisLimiter создает ограничитель поверх Redis
func NewRedisLimiter(client redis.Cmdable, quotas Quotas) *RedisLimiter {
	return &RedisLimiter{client: client, quotas: quotas, now: time.Now}
}

// Admit увеличивает счетчик окна и отказывает, если квота исчерпана
func (l *RedisLimiter) Admit(ctx context.Context, tokenHash string, class models.OperationClass) error {
	quota, err := l.quotas.lookup(class)
	if err != nil {
		return err
	}

	window := l.now().UnixNano() / int64(quota.Window)
	key := windowKey(class, tokenHash, window)

	var incr *redis.IntCmd
	_, err = l.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		// Ключ содержит номер окна, поэтому повторный EXPIRE не продлевает окно
		pipe.Expire(ctx, key, quota.Window)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update rate limit window: %w", err)
	}
	if incr.Val() > int64(quota.Limit) {
		return denied(class)
	}
	return nil
}

func windowKey(class models.OperationClass, tokenHash string, window int64) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", class, tokenHash, window)
}
