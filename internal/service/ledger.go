package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// IncidentStore определяет контракт хранилища журнала инцидентов.
// Методов изменения и удаления инцидентов нет.
type IncidentStore interface {
	// WithinTx выполняет fn в одной транзакции. Если fn вернула ошибку, ни одна запись не сохраняется.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	IncidentsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Incident, error)
	IncidentsByBadge(ctx context.Context, badge string, limit int) ([]*models.Incident, error)
}

// LedgerTx - операции, доступные внутри транзакции вставки инцидента
type LedgerTx interface {
	// InsertIncident записывает инцидент и индексирует его положение
	InsertIncident(ctx context.Context, incident *models.Incident) error
	// ApplyOfficerDelta выполняет upsert агрегата офицера с инкрементами относительно текущих значений
	ApplyOfficerDelta(ctx context.Context, delta models.OfficerDelta) error
	// IncrementDepartmentReports увеличивает счетчик департамента, если он есть в справочнике
	IncrementDepartmentReports(ctx context.Context, department string) error
}

// IncidentCache - кэш инцидентов по id. Инциденты неизменяемы, поэтому инвалидация не нужна.
type IncidentCache interface {
	// GetIncident возвращает nil, nil при промахе
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	SetIncident(ctx context.Context, incident *models.Incident) error
}

// Ledger - журнал инцидентов только на добавление
type Ledger struct {
	store      IncidentStore
	cache      IncidentCache
	tokens     TokenVerifier
	limiter    RateLimiter
	aggregator *officerAggregator
	validate   *validator.Validate
	logger     *logrus.Logger
	now        func() time.Time
}

// NewLedger создает журнал. cache может быть nil.
func NewLedger(store IncidentStore, cache IncidentCache, tokens TokenVerifier, limiter RateLimiter, logger *logrus.Logger) *Ledger {
	return &Ledger{
		store:      store,
		cache:      cache,
		tokens:     tokens,
		limiter:    limiter,
		aggregator: &officerAggregator{},
		validate:   validator.New(),
		logger:     logger,
		now:        time.Now,
	}
}

// Insert проверяет отчет, получает допуск ограничителя и атомарно записывает инцидент
// вместе с агрегатом офицера и счетчиком департамента.
func (l *Ledger) Insert(ctx context.Context, report models.IncidentReport) (*models.Incident, error) {
	ctx, span := tracer.Start(ctx, "Ledger.Insert")
	var err error
	defer func() { finishSpan(span, err) }()

	log := l.logger.WithFields(logrus.Fields{
		"service": "ledger",
		"method":  "Insert",
		"type":    report.IncidentType,
	})

	if err = validateStruct(l.validate, report); err != nil {
		log.WithError(err).Warn("Incident report rejected")
		return nil, err
	}
	now := l.now().UTC()
	incidentAt := report.IncidentAt.UTC()
	if report.IncidentAt.IsZero() {
		incidentAt = now
	}
	if incidentAt.After(now.Add(5 * time.Minute)) {
		err = models.NewValidationError("incident_at", "must not be in the future")
		log.WithError(err).Warn("Incident report rejected")
		return nil, err
	}

	var tokenHash string
	if tokenHash, err = admit(ctx, l.tokens, l.limiter, report.DeviceToken, models.ClassIncidentInsert); err != nil {
		log.WithError(err).Warn("Incident report not admitted")
		return nil, err
	}

	outcome := report.Outcome
	if outcome == "" {
		outcome = models.OutcomeNone
	}
	incident := &models.Incident{
		ID:                 uuid.New(),
		Latitude:           report.Latitude,
		Longitude:          report.Longitude,
		City:               strings.TrimSpace(report.City),
		State:              strings.TrimSpace(report.State),
		Zip:                strings.TrimSpace(report.Zip),
		BadgeNumber:        strings.TrimSpace(report.BadgeNumber),
		OfficerName:        strings.TrimSpace(report.OfficerName),
		Department:         strings.TrimSpace(report.Department),
		IncidentType:       report.IncidentType,
		Tags:               normalizeTags(report.Tags),
		Confidence:         report.Confidence,
		Description:        report.Description,
		Outcome:            outcome,
		OfficerRating:      report.OfficerRating,
		VerificationStatus: models.VerificationUnverified,
		HasPhoto:           report.HasPhoto,
		HasVideo:           report.HasVideo,
		HasAudio:           report.HasAudio,
		DeviceTokenHash:    tokenHash,
		IncidentAt:         incidentAt,
		CreatedAt:          now,
	}
	span.SetAttributes(attribute.Bool("incident.officer_ref", incident.HasOfficerRef()))

	err = l.store.WithinTx(ctx, func(ctx context.Context, tx LedgerTx) error {
		if err := tx.InsertIncident(ctx, incident); err != nil {
			return err
		}
		return l.aggregator.ApplyIncident(ctx, tx, incident)
	})
	if err != nil {
		log.WithError(err).Error("Failed to append incident to ledger")
		err = fmt.Errorf("service: could not insert incident: %w", err)
		return nil, err
	}

	metrics.IncidentsReported.Inc()
	log.WithField("incident_id", incident.ID).Info("Incident appended successfully")
	return incident, nil
}

// Get получает инцидент по ID, сначала из кэша
func (l *Ledger) Get(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service":     "ledger",
		"method":      "Get",
		"incident_id": id,
	})

	if l.cache != nil {
		cached, err := l.cache.GetIncident(ctx, id)
		if err != nil {
			log.WithError(err).Warn("Failed to read incident cache")
		} else if cached != nil {
			return cached, nil
		}
	}

	incident, err := l.store.GetIncident(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from store")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}

	if l.cache != nil {
		if err := l.cache.SetIncident(ctx, incident); err != nil {
			log.WithError(err).Warn("Failed to cache incident")
		}
	}
	return incident, nil
}

// QueryRegion возвращает инциденты в радиусе
func (l *Ledger) QueryRegion(ctx context.Context, q models.RadiusQuery) ([]*models.Incident, error) {
	q, err := normalizeQuery(q)
	if err != nil {
		return nil, err
	}
	log := l.logger.WithFields(logrus.Fields{
		"service":       "ledger",
		"method":        "QueryRegion",
		"radius_meters": q.RadiusMeters,
	})

	incidents, err := l.store.IncidentsInRadius(ctx, q)
	if err != nil {
		log.WithError(err).Error("Failed to query incidents by region")
		return nil, fmt.Errorf("service: could not query incidents: %w", err)
	}
	log.WithField("count", len(incidents)).Debug("Incidents queried")
	return incidents, nil
}

// QueryByBadge возвращает инциденты по номеру жетона, новые первыми
func (l *Ledger) QueryByBadge(ctx context.Context, badge string, limit int) ([]*models.Incident, error) {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return nil, models.NewValidationError("badge_number", "required")
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	incidents, err := l.store.IncidentsByBadge(ctx, badge, limit)
	if err != nil {
		l.logger.WithError(err).WithField("method", "QueryByBadge").Error("Failed to query incidents by badge")
		return nil, fmt.Errorf("service: could not query incidents by badge: %w", err)
	}
	return incidents, nil
}
