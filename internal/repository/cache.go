package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/redis/go-redis/v9"
)

// DefaultIncidentCacheTTL - срок жизни записи кэша, если в конфигурации не задан другой
const DefaultIncidentCacheTTL = 5 * time.Minute

// IncidentCache - кэш инцидентов в Redis по ключу incident:<id>
type IncidentCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewIncidentCache создает кэш. ttl <= 0 означает DefaultIncidentCacheTTL.
func NewIncidentCache(client redis.Cmdable, ttl time.Duration) *IncidentCache {
	if ttl <= 0 {
		ttl = DefaultIncidentCacheTTL
	}
	return &IncidentCache{client: client, ttl: ttl}
}

func incidentKey(id uuid.UUID) string {
	return fmt.Sprintf("incident:%s", id.String())
}

// GetIncident пытается получить инцидент из Redis. Промах - nil, nil.
func (c *IncidentCache) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	val, err := c.client.Get(ctx, incidentKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incident from cache: %w", err)
	}

	incident := &models.Incident{}
	if err := json.Unmarshal(val, incident); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incident from cache: %w", err)
	}
	return incident, nil
}

// SetIncident сохраняет инцидент в Redis. Хэш токена устройства в кэш не попадает.
func (c *IncidentCache) SetIncident(ctx context.Context, incident *models.Incident) error {
	val, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident for cache: %w", err)
	}
	if err := c.client.Set(ctx, incidentKey(incident.ID), val, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set incident in cache: %w", err)
	}
	return nil
}
