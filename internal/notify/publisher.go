// Package notify доставляет уведомления о новых наблюдениях подписчикам тайлов через очередь Redis
package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	sightingQueueKey = "sighting_events"
)

// SightingEvent - событие о новом наблюдении. Содержит тайл для подписчиков региона
// и никогда не содержит токен устройства.
type SightingEvent struct {
	SightingID   uuid.UUID           `json:"sighting_id"`
	Tile         string              `json:"tile"`
	SightingType models.SightingType `json:"sighting_type"`
	Direction    string              `json:"direction,omitempty"`
	Latitude     float64             `json:"latitude"`
	Longitude    float64             `json:"longitude"`
	ReportedAt   time.Time           `json:"reported_at"`
	ExpiresAt    time.Time           `json:"expires_at"`
}

// NewSightingEvent строит событие из наблюдения
func NewSightingEvent(s *models.Sighting, tile string) SightingEvent {
	return SightingEvent{
		SightingID:   s.ID,
		Tile:         tile,
		SightingType: s.SightingType,
		Direction:    s.Direction,
		Latitude:     s.Latitude,
		Longitude:    s.Longitude,
		ReportedAt:   s.ReportedAt,
		ExpiresAt:    s.ExpiresAt,
	}
}

// Publisher - интерфейс для публикации событий
type Publisher interface {
	Publish(ctx context.Context, event SightingEvent) error
}

// RedisPublisher - реализация Publisher, использующая очередь Redis
type RedisPublisher struct {
	redisClient redis.Cmdable
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client redis.Cmdable) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие в очередь Redis
func (p *RedisPublisher) Publish(ctx context.Context, event SightingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal sighting event: %w", err)
	}

	// LPUSH в левую часть списка, воркер забирает справа
	if err := p.redisClient.LPush(ctx, sightingQueueKey, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish sighting event to Redis: %w", err)
	}
	return nil
}

// NopPublisher используется, когда Redis не настроен
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, SightingEvent) error { return nil }
