package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/service"
)

const incidentColumns = `
	id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	city,
	state,
	zip,
	badge_number,
	officer_name,
	department,
	incident_type,
	tags,
	confidence,
	description,
	outcome,
	officer_rating,
	confirm_count,
	dispute_count,
	verification_status,
	has_photo,
	has_video,
	has_audio,
	device_token_hash,
	incident_at,
	created_at`

func scanIncident(row scanner, extra ...any) (*models.Incident, error) {
	incident := &models.Incident{}
	dest := []any{
		&incident.ID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.City,
		&incident.State,
		&incident.Zip,
		&incident.BadgeNumber,
		&incident.OfficerName,
		&incident.Department,
		&incident.IncidentType,
		&incident.Tags,
		&incident.Confidence,
		&incident.Description,
		&incident.Outcome,
		&incident.OfficerRating,
		&incident.ConfirmCount,
		&incident.DisputeCount,
		&incident.VerificationStatus,
		&incident.HasPhoto,
		&incident.HasVideo,
		&incident.HasAudio,
		&incident.DeviceTokenHash,
		&incident.IncidentAt,
		&incident.CreatedAt,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return incident, nil
}

// ledgerTx выполняет операции журнала внутри одной транзакции PostgreSQL
type ledgerTx struct {
	tx pgx.Tx
}

// WithinTx открывает транзакцию и фиксирует ее, только если fn вернула nil
func (s *PostgresStore) WithinTx(ctx context.Context, fn func(ctx context.Context, tx service.LedgerTx) error) error {
	return pgx.BeginFunc(ctx, s.db, func(tx pgx.Tx) error {
		return fn(ctx, &ledgerTx{tx: tx})
	})
}

// InsertIncident вставляет инцидент. Повторная вставка того же id отклоняется ограничением первичного ключа.
func (t *ledgerTx) InsertIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (
			id, location, city, state, zip, badge_number, officer_name, department,
			incident_type, tags, confidence, description, outcome, officer_rating,
			confirm_count, dispute_count, verification_status,
			has_photo, has_video, has_audio, device_token_hash, incident_at, created_at
		)
		VALUES (
			$1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15,
			$16, $17, $18,
			$19, $20, $21, $22, $23, $24
		);
	`
	tags := incident.Tags
	if tags == nil {
		tags = []string{}
	}
	_, err := t.tx.Exec(ctx, query,
		incident.ID,
		incident.Longitude,
		incident.Latitude,
		incident.City,
		incident.State,
		incident.Zip,
		incident.BadgeNumber,
		incident.OfficerName,
		incident.Department,
		incident.IncidentType,
		tags,
		incident.Confidence,
		incident.Description,
		incident.Outcome,
		incident.OfficerRating,
		incident.ConfirmCount,
		incident.DisputeCount,
		incident.VerificationStatus,
		incident.HasPhoto,
		incident.HasVideo,
		incident.HasAudio,
		incident.DeviceTokenHash,
		incident.IncidentAt,
		incident.CreatedAt,
	)
	if err != nil {
		return mapPgError(err, "failed to insert incident")
	}
	return nil
}

// ApplyOfficerDelta выполняет upsert агрегата офицера. Все счетчики увеличиваются
// относительно значений в строке, поэтому параллельные транзакции не теряют инкременты.
func (t *ledgerTx) ApplyOfficerDelta(ctx context.Context, delta models.OfficerDelta) error {
	tagCounts := make(map[string]int, len(delta.Tags))
	for _, tag := range delta.Tags {
		tagCounts[tag]++
	}
	tagsJSON, err := json.Marshal(tagCounts)
	if err != nil {
		return fmt.Errorf("failed to marshal officer tags: %w", err)
	}
	ratingCount := 0
	if delta.Rating > 0 {
		ratingCount = 1
	}

	query := `
		INSERT INTO officers (
			badge_number, officer_name, department, reports_count,
			positive_encounters, negative_encounters, rating_sum, rating_count,
			tag_counts, first_seen_at, last_seen_at
		)
		VALUES ($1, $2, $3, 1, $4, $5, $6, $7, $8::jsonb, $9, $9)
		ON CONFLICT (badge_number) DO UPDATE SET
			officer_name = COALESCE(NULLIF(officers.officer_name, ''), EXCLUDED.officer_name),
			department = CASE
				WHEN EXCLUDED.department <> '' AND EXCLUDED.last_seen_at >= officers.last_seen_at
				THEN EXCLUDED.department
				ELSE officers.department
			END,
			reports_count = officers.reports_count + 1,
			positive_encounters = officers.positive_encounters + EXCLUDED.positive_encounters,
			negative_encounters = officers.negative_encounters + EXCLUDED.negative_encounters,
			rating_sum = officers.rating_sum + EXCLUDED.rating_sum,
			rating_count = officers.rating_count + EXCLUDED.rating_count,
			tag_counts = (
				SELECT COALESCE(jsonb_object_agg(key, total), '{}'::jsonb)
				FROM (
					SELECT key, SUM(value::int) AS total
					FROM (
						SELECT key, value FROM jsonb_each_text(officers.tag_counts)
						UNION ALL
						SELECT key, value FROM jsonb_each_text(EXCLUDED.tag_counts)
					) merged
					GROUP BY key
				) summed
			),
			last_seen_at = GREATEST(officers.last_seen_at, EXCLUDED.last_seen_at);
	`
	_, err = t.tx.Exec(ctx, query,
		delta.BadgeNumber,
		delta.OfficerName,
		delta.Department,
		delta.Positive,
		delta.Negative,
		delta.Rating,
		ratingCount,
		string(tagsJSON),
		delta.SeenAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert officer aggregate: %w", err)
	}
	return nil
}

// IncrementDepartmentReports увеличивает счетчик департамента. Отсутствие в справочнике не ошибка.
func (t *ledgerTx) IncrementDepartmentReports(ctx context.Context, department string) error {
	query := `
		UPDATE departments SET
			reports_count = reports_count + 1,
			updated_at = NOW()
		WHERE lower(name) = lower($1);
	`
	if _, err := t.tx.Exec(ctx, query, department); err != nil {
		return fmt.Errorf("failed to increment department reports: %w", err)
	}
	return nil
}

// GetIncident возвращает инцидент по его UUID
func (s *PostgresStore) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE id = $1;
	`
	incident, err := scanIncident(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("incident with id %s", id))
	}
	return incident, nil
}

// IncidentsInRadius находит инциденты, попадающие в радиус (граница включительно)
func (s *PostgresStore) IncidentsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
		FROM incidents
		WHERE ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
		ORDER BY ` + orderClause(q.Order, "created_at") + `
		LIMIT $4;
	`
	rows, err := s.db.Query(ctx, query, q.Longitude, q.Latitude, q.RadiusMeters, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find incidents by location: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		var distance float64
		incident, err := scanIncident(rows, &distance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in IncidentsInRadius: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in IncidentsInRadius: %w", err)
	}
	return incidents, nil
}

// IncidentsByBadge возвращает инциденты по номеру жетона, новые первыми
func (s *PostgresStore) IncidentsByBadge(ctx context.Context, badge string, limit int) ([]*models.Incident, error) {
	query := `SELECT` + incidentColumns + `
		FROM incidents
		WHERE badge_number = $1
		ORDER BY created_at DESC
		LIMIT $2;
	`
	rows, err := s.db.Query(ctx, query, badge, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents by badge: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident, err := scanIncident(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row in IncidentsByBadge: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in IncidentsByBadge: %w", err)
	}
	return incidents, nil
}
