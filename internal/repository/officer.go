package repository

import (
	"context"
	"fmt"

	"github.com/raayraay69/blue-ledger/internal/models"
)

// GetOfficer возвращает агрегат по номеру жетона
func (s *PostgresStore) GetOfficer(ctx context.Context, badge string) (*models.Officer, error) {
	query := `
		SELECT
			badge_number,
			officer_name,
			department,
			rank,
			unit,
			reports_count,
			positive_encounters,
			negative_encounters,
			rating_sum,
			rating_count,
			tag_counts,
			verified,
			first_seen_at,
			last_seen_at
		FROM officers
		WHERE badge_number = $1;
	`
	officer := &models.Officer{}
	err := s.db.QueryRow(ctx, query, badge).Scan(
		&officer.BadgeNumber,
		&officer.OfficerName,
		&officer.Department,
		&officer.Rank,
		&officer.Unit,
		&officer.ReportsCount,
		&officer.PositiveEncounters,
		&officer.NegativeEncounters,
		&officer.RatingSum,
		&officer.RatingCount,
		&officer.TagCounts,
		&officer.Verified,
		&officer.FirstSeenAt,
		&officer.LastSeenAt,
	)
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("officer with badge %s", badge))
	}
	if officer.RatingCount > 0 {
		officer.AverageRating = float64(officer.RatingSum) / float64(officer.RatingCount)
	}
	return officer, nil
}
