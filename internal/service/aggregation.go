package service

import (
	"context"

	"github.com/raayraay69/blue-ledger/internal/metrics"
	"github.com/raayraay69/blue-ledger/internal/models"
)

// officerAggregator применяет инцидент к производным агрегатам.
// Вызывается только журналом внутри транзакции вставки, внешней точки входа нет.
type officerAggregator struct{}

// ApplyIncident выполняет upsert агрегата офицера (если указаны жетон и департамент)
// и увеличивает счетчик департамента. Все счетчики только растут.
func (a *officerAggregator) ApplyIncident(ctx context.Context, tx LedgerTx, incident *models.Incident) error {
	if incident.Department != "" {
		if err := tx.IncrementDepartmentReports(ctx, incident.Department); err != nil {
			return err
		}
	}
	if !incident.HasOfficerRef() {
		return nil
	}
	if err := tx.ApplyOfficerDelta(ctx, officerDelta(incident)); err != nil {
		return err
	}
	metrics.OfficerAggregatesApplied.Inc()
	return nil
}

func officerDelta(incident *models.Incident) models.OfficerDelta {
	delta := models.OfficerDelta{
		BadgeNumber: incident.BadgeNumber,
		OfficerName: incident.OfficerName,
		Department:  incident.Department,
		Tags:        incident.Tags,
		SeenAt:      incident.CreatedAt,
	}
	if r := incident.OfficerRating; r != nil {
		delta.Rating = *r
		switch {
		case *r >= 4:
			delta.Positive = 1
		case *r <= 2:
			delta.Negative = 1
		}
	}
	return delta
}
