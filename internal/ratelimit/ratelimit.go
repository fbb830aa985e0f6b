// Package ratelimit принимает решение о допуске записи по хэшу токена устройства и классу операции.
package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/raayraay69/blue-ledger/internal/config"
	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/raayraay69/blue-ledger/internal/models"
	"golang.org/x/time/rate"
)

// Quotas - квоты по классам операций
type Quotas map[models.OperationClass]config.Quota

// QuotasFromConfig собирает квоты из конфигурации
func QuotasFromConfig(cfg *config.Config) Quotas {
	return Quotas{
		models.ClassIncidentInsert: cfg.IncidentQuota,
		models.ClassSightingInsert: cfg.SightingQuota,
		models.ClassVote:           cfg.VoteQuota,
	}
}

func (q Quotas) lookup(class models.OperationClass) (config.Quota, error) {
	quota, ok := q[class]
	if !ok {
		return config.Quota{}, fmt.Errorf("no quota configured for operation class %q", class)
	}
	return quota, nil
}

func denied(class models.OperationClass) error {
	metrics.RateLimitDenied.WithLabelValues(string(class)).Inc()
	return fmt.Errorf("%w: %s", models.ErrRateLimitExceeded, class)
}

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter - ограничитель в памяти процесса на token bucket (golang.org/x/time/rate).
// Подходит для одного экземпляра сервиса.
type MemoryLimiter struct {
	mu        sync.Mutex
	quotas    Quotas
	buckets   map[string]*bucket
	now       func() time.Time
	lastPrune time.Time
}

// NewMemoryLimiter создает ограничитель в памяти
func NewMemoryLimiter(quotas Quotas) *MemoryLimiter {
	return &MemoryLimiter{
		quotas:  quotas,
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}
}

// Admit списывает одну операцию из квоты токена
func (l *MemoryLimiter) Admit(_ context.Context, tokenHash string, class models.OperationClass) error {
	quota, err := l.quotas.lookup(class)
	if err != nil {
		return err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.now()
	l.pruneLocked(now)

	key := string(class) + ":" + tokenHash
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(rate.Every(quota.Window/time.Duration(quota.Limit)), quota.Limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now
	if !b.limiter.AllowN(now, 1) {
		return denied(class)
	}
	return nil
}

// pruneLocked удаляет корзины, которые не использовались дольше окна своей квоты.
// Такая корзина уже полностью восстановилась, и ее удаление не меняет решений.
func (l *MemoryLimiter) pruneLocked(now time.Time) {
	var maxWindow time.Duration
	for _, q := range l.quotas {
		if q.Window > maxWindow {
			maxWindow = q.Window
		}
	}
	if now.Sub(l.lastPrune) < maxWindow {
		return
	}
	l.lastPrune = now
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) >= maxWindow {
			delete(l.buckets, key)
		}
	}
}

// Len возвращает число отслеживаемых корзин
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}
