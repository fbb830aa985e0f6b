package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/geo"
	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/notify"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// SightingStore определяет контракт хранилища эфемерных наблюдений.
// Операции голосования и деактивации атомарны на уровне строки.
type SightingStore interface {
	InsertSighting(ctx context.Context, sighting *models.Sighting) error
	GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error)
	// SightingsInRadius возвращает только is_active AND expires_at > q.Now
	SightingsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Sighting, error)
	// ConfirmSighting увеличивает confirm_count; applied=false и nil, если наблюдение неактивно или истекло
	ConfirmSighting(ctx context.Context, id uuid.UUID, now time.Time) (sighting *models.Sighting, applied bool, err error)
	// MarkSightingNotThere увеличивает not_there_count и в том же шаге применяет правило деактивации.
	// Для неактивного или истекшего наблюдения возвращает applied=false и nil.
	MarkSightingNotThere(ctx context.Context, id uuid.UUID, now time.Time) (sighting *models.Sighting, applied bool, err error)
	SightingSweeper
}

// Sightings - хранилище эфемерных наблюдений
type Sightings struct {
	store     SightingStore
	tokens    TokenVerifier
	limiter   RateLimiter
	publisher notify.Publisher
	ttl       time.Duration
	validate  *validator.Validate
	logger    *logrus.Logger
	now       func() time.Time
}

// NewSightings создает сервис наблюдений. ttl <= 0 означает models.DefaultSightingTTL.
func NewSightings(store SightingStore, tokens TokenVerifier, limiter RateLimiter, publisher notify.Publisher, ttl time.Duration, logger *logrus.Logger) *Sightings {
	if ttl <= 0 {
		ttl = models.DefaultSightingTTL
	}
	if publisher == nil {
		publisher = notify.NopPublisher{}
	}
	return &Sightings{
		store:     store,
		tokens:    tokens,
		limiter:   limiter,
		publisher: publisher,
		ttl:       ttl,
		validate:  validator.New(),
		logger:    logger,
		now:       time.Now,
	}
}

// Insert создает активное наблюдение с фиксированным сроком жизни
func (s *Sightings) Insert(ctx context.Context, report models.SightingReport) (*models.Sighting, error) {
	ctx, span := tracer.Start(ctx, "Sightings.Insert")
	var err error
	defer func() { finishSpan(span, err) }()

	log := s.logger.WithFields(logrus.Fields{
		"service": "sightings",
		"method":  "Insert",
		"type":    report.SightingType,
	})

	// Направление принимается в любом регистре
	report.Direction = strings.ToUpper(strings.TrimSpace(report.Direction))
	if err = validateStruct(s.validate, report); err != nil {
		log.WithError(err).Warn("Sighting report rejected")
		return nil, err
	}
	var tokenHash string
	if tokenHash, err = admit(ctx, s.tokens, s.limiter, report.DeviceToken, models.ClassSightingInsert); err != nil {
		log.WithError(err).Warn("Sighting report not admitted")
		return nil, err
	}

	now := s.now().UTC()
	sighting := &models.Sighting{
		ID:              uuid.New(),
		Latitude:        report.Latitude,
		Longitude:       report.Longitude,
		SightingType:    report.SightingType,
		Direction:       report.Direction,
		VehicleCount:    report.VehicleCount,
		Description:     report.Description,
		IsActive:        true,
		ReportedAt:      now,
		ExpiresAt:       now.Add(s.ttl),
		DeviceTokenHash: tokenHash,
	}
	if err = s.store.InsertSighting(ctx, sighting); err != nil {
		log.WithError(err).Error("Failed to insert sighting")
		err = fmt.Errorf("service: could not insert sighting: %w", err)
		return nil, err
	}
	metrics.SightingsReported.Inc()

	// Уведомление подписчиков тайла не влияет на результат вставки
	tile, tileErr := geo.Tile(sighting.Latitude, sighting.Longitude, geo.DefaultTileSize)
	if tileErr == nil {
		if pubErr := s.publisher.Publish(ctx, notify.NewSightingEvent(sighting, tile)); pubErr != nil {
			log.WithError(pubErr).Warn("Failed to publish sighting event")
		}
	}

	log.WithField("sighting_id", sighting.ID).Info("Sighting reported successfully")
	return sighting, nil
}

// Get возвращает наблюдение, только если оно активно и не истекло
func (s *Sightings) Get(ctx context.Context, id uuid.UUID) (*models.Sighting, error) {
	sighting, err := s.store.GetSighting(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get sighting: %w", err)
	}
	if !sighting.Visible(s.now()) {
		return nil, fmt.Errorf("service: sighting %s: %w", id, models.ErrNotFound)
	}
	return sighting, nil
}

// QueryRadius возвращает активные и не истекшие наблюдения в радиусе
func (s *Sightings) QueryRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Sighting, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}
	q.Now = s.now()
	sightings, err := s.store.SightingsInRadius(ctx, q)
	if err != nil {
		s.logger.WithError(err).WithField("method", "QueryRadius").Error("Failed to query sightings")
		return nil, fmt.Errorf("service: could not query sightings: %w", err)
	}
	return sightings, nil
}

// Confirm подтверждает наблюдение. Для неактивного или истекшего наблюдения это no-op.
func (s *Sightings) Confirm(ctx context.Context, id uuid.UUID, deviceToken string) (*models.VoteResult, error) {
	return s.vote(ctx, id, models.VoteConfirm, deviceToken)
}

// MarkNotThere отмечает, что наблюдения нет на месте, и при выполнении правила деактивирует его.
// Для неактивного или истекшего наблюдения это no-op.
func (s *Sightings) MarkNotThere(ctx context.Context, id uuid.UUID, deviceToken string) (*models.VoteResult, error) {
	return s.vote(ctx, id, models.VoteNotThere, deviceToken)
}

func (s *Sightings) vote(ctx context.Context, id uuid.UUID, kind models.VoteKind, deviceToken string) (*models.VoteResult, error) {
	ctx, span := tracer.Start(ctx, "Sightings.Vote")
	span.SetAttributes(attribute.String("vote.kind", string(kind)))
	var err error
	defer func() { finishSpan(span, err) }()

	log := s.logger.WithFields(logrus.Fields{
		"service":     "sightings",
		"method":      "Vote",
		"kind":        kind,
		"sighting_id": id,
	})

	if _, err = admit(ctx, s.tokens, s.limiter, deviceToken, models.ClassVote); err != nil {
		log.WithError(err).Warn("Vote not admitted")
		return nil, err
	}

	var (
		sighting *models.Sighting
		applied  bool
	)
	now := s.now()
	switch kind {
	case models.VoteConfirm:
		sighting, applied, err = s.store.ConfirmSighting(ctx, id, now)
	case models.VoteNotThere:
		sighting, applied, err = s.store.MarkSightingNotThere(ctx, id, now)
	default:
		err = models.NewValidationError("vote", "unknown vote kind")
		return nil, err
	}
	if err != nil {
		log.WithError(err).Warn("Failed to apply vote")
		err = fmt.Errorf("service: could not apply %s vote: %w", kind, err)
		return nil, err
	}

	metrics.SightingVotes.WithLabelValues(string(kind), fmt.Sprint(applied)).Inc()
	if applied && kind == models.VoteNotThere && !sighting.IsActive {
		metrics.SightingsDeactivated.WithLabelValues("votes").Inc()
		log.Info("Sighting deactivated by community votes")
	}
	log.WithField("applied", applied).Debug("Vote processed")

	result := &models.VoteResult{Applied: applied}
	if sighting != nil && sighting.Visible(now) {
		result.Sighting = sighting
	}
	return result, nil
}
