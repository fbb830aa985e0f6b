package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/policy"
	"github.com/sirupsen/logrus"
)

// Gateway - единственная внешняя точка входа в хранилище. Каждая операция сначала
// проверяется таблицей доступа, затем передается компоненту.
type Gateway interface {
	ReportIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	IncidentsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Incident, error)
	IncidentsByBadge(ctx context.Context, badge string, limit int) ([]*models.Incident, error)

	GetOfficer(ctx context.Context, badge string) (*models.Officer, error)

	ReportSighting(ctx context.Context, report models.SightingReport) (*models.Sighting, error)
	GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error)
	SightingsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Sighting, error)
	VoteSighting(ctx context.Context, id uuid.UUID, kind models.VoteKind, deviceToken string) (*models.VoteResult, error)

	ListDepartments(ctx context.Context) ([]*models.Department, error)
	GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error)

	// Modify - попытка внешнего изменения или удаления записи. Таблица доступа
	// не дает внешнему вызывающему ни одного такого пути, кроме голосования.
	Modify(ctx context.Context, entity policy.Entity, op policy.Operation, id string) error
}

type gateway struct {
	enforcer  *policy.Enforcer
	ledger    *Ledger
	sightings *Sightings
	directory *Directory
	logger    *logrus.Logger
}

// NewGateway создает Gateway поверх компонентов
func NewGateway(enforcer *policy.Enforcer, ledger *Ledger, sightings *Sightings, directory *Directory, logger *logrus.Logger) Gateway {
	return &gateway{
		enforcer:  enforcer,
		ledger:    ledger,
		sightings: sightings,
		directory: directory,
		logger:    logger,
	}
}

func (g *gateway) authorize(entity policy.Entity, op policy.Operation) (policy.Decision, error) {
	decision, err := g.enforcer.Authorize(entity, op)
	if err != nil {
		metrics.PolicyDenied.WithLabelValues(string(entity), op.String()).Inc()
		g.logger.WithFields(logrus.Fields{
			"service":   "gateway",
			"entity":    entity,
			"operation": op.String(),
		}).WithError(err).Warn("Operation rejected by access policy")
		return policy.Decision{}, err
	}
	return decision, nil
}

func (g *gateway) ReportIncident(ctx context.Context, report models.IncidentReport) (*models.Incident, error) {
	if _, err := g.authorize(policy.EntityIncident, policy.Insert()); err != nil {
		return nil, err
	}
	return g.ledger.Insert(ctx, report)
}

func (g *gateway) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	if _, err := g.authorize(policy.EntityIncident, policy.Read()); err != nil {
		return nil, err
	}
	return g.ledger.Get(ctx, id)
}

func (g *gateway) IncidentsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Incident, error) {
	if _, err := g.authorize(policy.EntityIncident, policy.Read()); err != nil {
		return nil, err
	}
	return g.ledger.QueryRegion(ctx, q)
}

func (g *gateway) IncidentsByBadge(ctx context.Context, badge string, limit int) ([]*models.Incident, error) {
	if _, err := g.authorize(policy.EntityIncident, policy.Read()); err != nil {
		return nil, err
	}
	return g.ledger.QueryByBadge(ctx, badge, limit)
}

func (g *gateway) GetOfficer(ctx context.Context, badge string) (*models.Officer, error) {
	if _, err := g.authorize(policy.EntityOfficer, policy.Read()); err != nil {
		return nil, err
	}
	return g.directory.Officer(ctx, badge)
}

func (g *gateway) ReportSighting(ctx context.Context, report models.SightingReport) (*models.Sighting, error) {
	if _, err := g.authorize(policy.EntitySighting, policy.Insert()); err != nil {
		return nil, err
	}
	return g.sightings.Insert(ctx, report)
}

func (g *gateway) GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error) {
	decision, err := g.authorize(policy.EntitySighting, policy.Read())
	if err != nil {
		return nil, err
	}
	if !decision.ActiveOnly {
		return nil, fmt.Errorf("%w: sighting reads must be limited to active records", models.ErrForbidden)
	}
	return g.sightings.Get(ctx, id)
}

func (g *gateway) SightingsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Sighting, error) {
	decision, err := g.authorize(policy.EntitySighting, policy.Read())
	if err != nil {
		return nil, err
	}
	if !decision.ActiveOnly {
		return nil, fmt.Errorf("%w: sighting reads must be limited to active records", models.ErrForbidden)
	}
	return g.sightings.QueryRadius(ctx, q)
}

func (g *gateway) VoteSighting(ctx context.Context, id uuid.UUID, kind models.VoteKind, deviceToken string) (*models.VoteResult, error) {
	if _, err := g.authorize(policy.EntitySighting, policy.Vote(kind)); err != nil {
		return nil, err
	}
	switch kind {
	case models.VoteConfirm:
		return g.sightings.Confirm(ctx, id, deviceToken)
	case models.VoteNotThere:
		return g.sightings.MarkNotThere(ctx, id, deviceToken)
	}
	return nil, models.NewValidationError("vote", "unknown vote kind")
}

func (g *gateway) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	if _, err := g.authorize(policy.EntityDepartment, policy.Read()); err != nil {
		return nil, err
	}
	return g.directory.Departments(ctx)
}

func (g *gateway) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	if _, err := g.authorize(policy.EntityDepartment, policy.Read()); err != nil {
		return nil, err
	}
	return g.directory.Department(ctx, id)
}

func (g *gateway) Modify(ctx context.Context, entity policy.Entity, op policy.Operation, id string) error {
	if op.Kind != policy.OpUpdate && op.Kind != policy.OpDelete {
		return fmt.Errorf("%w: %s is not a modification", models.ErrForbidden, op)
	}
	if _, err := g.authorize(entity, op); err != nil {
		return err
	}
	// Таблица разрешила операцию, но у внешнего вызывающего нет для нее реализации
	err := fmt.Errorf("%w: %s %s %s has no external entry point", models.ErrForbidden, op, entity, id)
	g.logger.WithError(err).Warn("Modification attempt without entry point")
	return err
}

// IsClientError сообщает, вызвана ли ошибка входными данными или политикой, а не сбоем хранилища
func IsClientError(err error) bool {
	return errors.Is(err, models.ErrValidation) ||
		errors.Is(err, models.ErrRateLimitExceeded) ||
		errors.Is(err, models.ErrImmutableRecord) ||
		errors.Is(err, models.ErrNotFound) ||
		errors.Is(err, models.ErrForbidden)
}
