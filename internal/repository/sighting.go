package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/raayraay69/blue-ledger/internal/models"
)

const sightingColumns = `
	id,
	ST_Y(location::geometry) AS latitude,
	ST_X(location::geometry) AS longitude,
	sighting_type,
	direction,
	vehicle_count,
	description,
	confirm_count,
	not_there_count,
	is_active,
	reported_at,
	expires_at,
	last_confirmed_at,
	device_token_hash`

func scanSighting(row scanner, extra ...any) (*models.Sighting, error) {
	s := &models.Sighting{}
	dest := []any{
		&s.ID,
		&s.Latitude,
		&s.Longitude,
		&s.SightingType,
		&s.Direction,
		&s.VehicleCount,
		&s.Description,
		&s.ConfirmCount,
		&s.NotThereCount,
		&s.IsActive,
		&s.ReportedAt,
		&s.ExpiresAt,
		&s.LastConfirmedAt,
		&s.DeviceTokenHash,
	}
	if err := row.Scan(append(dest, extra...)...); err != nil {
		return nil, err
	}
	return s, nil
}

// InsertSighting вставляет наблюдение
func (s *PostgresStore) InsertSighting(ctx context.Context, sighting *models.Sighting) error {
	query := `
		INSERT INTO sightings (
			id, location, sighting_type, direction, vehicle_count, description,
			confirm_count, not_there_count, is_active, reported_at, expires_at, device_token_hash
		)
		VALUES ($1, ST_SetSRID(ST_MakePoint($2, $3), 4326)::geography, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := s.db.Exec(ctx, query,
		sighting.ID,
		sighting.Longitude,
		sighting.Latitude,
		sighting.SightingType,
		sighting.Direction,
		sighting.VehicleCount,
		sighting.Description,
		sighting.ConfirmCount,
		sighting.NotThereCount,
		sighting.IsActive,
		sighting.ReportedAt,
		sighting.ExpiresAt,
		sighting.DeviceTokenHash,
	)
	if err != nil {
		return mapPgError(err, "failed to insert sighting")
	}
	return nil
}

// GetSighting возвращает наблюдение без фильтра активности
func (s *PostgresStore) GetSighting(ctx context.Context, id uuid.UUID) (*models.Sighting, error) {
	query := `SELECT` + sightingColumns + ` FROM sightings WHERE id = $1;`
	sighting, err := scanSighting(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("sighting with id %s", id))
	}
	return sighting, nil
}

// SightingsInRadius находит активные и не истекшие наблюдения в радиусе
func (s *PostgresStore) SightingsInRadius(ctx context.Context, q models.RadiusQuery) ([]*models.Sighting, error) {
	query := `SELECT` + sightingColumns + `,
			ST_Distance(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) AS distance
		FROM sightings
		WHERE
			is_active
			AND expires_at > $3
			AND ST_DWithin(location, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $4)
		ORDER BY ` + orderClause(q.Order, "reported_at") + `
		LIMIT $5;
	`
	rows, err := s.db.Query(ctx, query, q.Longitude, q.Latitude, q.Now, q.RadiusMeters, q.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find sightings by location: %w", err)
	}
	defer rows.Close()

	sightings := make([]*models.Sighting, 0)
	for rows.Next() {
		var distance float64
		sighting, err := scanSighting(rows, &distance)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sighting row: %w", err)
		}
		sightings = append(sightings, sighting)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration in SightingsInRadius: %w", err)
	}
	return sightings, nil
}

// ConfirmSighting увеличивает confirm_count одним UPDATE
func (s *PostgresStore) ConfirmSighting(ctx context.Context, id uuid.UUID, now time.Time) (*models.Sighting, bool, error) {
	query := `
		UPDATE sightings SET
			confirm_count = confirm_count + 1,
			last_confirmed_at = $2
		WHERE id = $1 AND is_active AND expires_at > $2
		RETURNING` + sightingColumns + `;
	`
	return s.vote(ctx, id, query, id, now)
}

// MarkSightingNotThere увеличивает not_there_count и в том же UPDATE применяет правило деактивации.
// Выражения SET видят значения строки до обновления.
func (s *PostgresStore) MarkSightingNotThere(ctx context.Context, id uuid.UUID, now time.Time) (*models.Sighting, bool, error) {
	query := `
		UPDATE sightings SET
			not_there_count = not_there_count + 1,
			is_active = NOT (not_there_count + 1 >= $3 AND not_there_count + 1 > confirm_count)
		WHERE id = $1 AND is_active AND expires_at > $2
		RETURNING` + sightingColumns + `;
	`
	return s.vote(ctx, id, query, id, now, models.NotThereThreshold)
}

func (s *PostgresStore) vote(ctx context.Context, id uuid.UUID, query string, args ...any) (*models.Sighting, bool, error) {
	sighting, err := scanSighting(s.db.QueryRow(ctx, query, args...))
	if err == nil {
		return sighting, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to apply sighting vote: %w", err)
	}
	// Строка не обновилась: либо ее нет, либо она неактивна или истекла.
	// Содержимое неактивной строки наружу не отдается.
	var exists bool
	if err := s.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM sightings WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, false, fmt.Errorf("failed to check sighting: %w", err)
	}
	if !exists {
		return nil, false, fmt.Errorf("sighting with id %s: %w", id, models.ErrNotFound)
	}
	return nil, false, nil
}

// DeactivateExpired деактивирует истекшие наблюдения. Повторный вызов с тем же now ничего не меняет.
func (s *PostgresStore) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		UPDATE sightings SET
			is_active = false
		WHERE is_active AND expires_at < $1;
	`
	cmdTag, err := s.db.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("failed to deactivate expired sightings: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
