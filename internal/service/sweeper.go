package service

import (
	"context"
	"fmt"
	"time"

	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/sirupsen/logrus"
)

// SightingSweeper деактивирует наблюдения с expires_at < now
type SightingSweeper interface {
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
}

// Sweeper периодически деактивирует истекшие наблюдения.
// Корректность чтения обеспечивает фильтр по expires_at, свипер лишь ограничивает число "мертвых" активных строк.
type Sweeper struct {
	store    SightingSweeper
	interval time.Duration
	logger   *logrus.Logger
	now      func() time.Time
}

// NewSweeper создает свипер
func NewSweeper(store SightingSweeper, interval time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{store: store, interval: interval, logger: logger, now: time.Now}
}

// Sweep выполняет один проход и возвращает число деактивированных наблюдений
func (s *Sweeper) Sweep(ctx context.Context) (int64, error) {
	ctx, span := tracer.Start(ctx, "Sweeper.Sweep")
	n, err := s.store.DeactivateExpired(ctx, s.now())
	finishSpan(span, err)
	if err != nil {
		metrics.SweepRuns.WithLabelValues("error").Inc()
		return 0, fmt.Errorf("service: sweep failed: %w", err)
	}
	metrics.SweepRuns.WithLabelValues("ok").Inc()
	metrics.SightingsDeactivated.WithLabelValues("expired").Add(float64(n))
	return n, nil
}

// Run выполняет Sweep с заданным интервалом до отмены контекста. Ошибки прохода только логируются.
func (s *Sweeper) Run(ctx context.Context) error {
	log := s.logger.WithField("service", "sweeper")
	log.WithField("interval", s.interval.String()).Info("Starting expiration sweeper...")
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping expiration sweeper.")
			return nil
		case <-ticker.C:
			n, err := s.Sweep(ctx)
			if err != nil {
				log.WithError(err).Error("Expiration sweep failed, will retry next cycle")
				continue
			}
			if n > 0 {
				log.WithField("deactivated", n).Info("Expired sightings deactivated")
			}
		}
	}
}
