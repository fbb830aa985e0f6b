package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raayraay69/blue-ledger/internal/models"
)

const departmentColumns = `
	id, name, city, state, phone, email, website, complaint_url, reports_count, updated_at`

func scanDepartment(row scanner) (*models.Department, error) {
	d := &models.Department{}
	err := row.Scan(
		&d.ID,
		&d.Name,
		&d.City,
		&d.State,
		&d.Phone,
		&d.Email,
		&d.Website,
		&d.ComplaintURL,
		&d.ReportsCount,
		&d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return d, nil
}

// ListDepartments возвращает справочник, отсортированный по имени
func (s *PostgresStore) ListDepartments(ctx context.Context) ([]*models.Department, error) {
	query := `SELECT` + departmentColumns + ` FROM departments ORDER BY name;`
	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		d, err := scanDepartment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return departments, nil
}

// GetDepartment возвращает департамент по UUID
func (s *PostgresStore) GetDepartment(ctx context.Context, id uuid.UUID) (*models.Department, error) {
	query := `SELECT` + departmentColumns + ` FROM departments WHERE id = $1;`
	d, err := scanDepartment(s.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, mapPgError(err, fmt.Sprintf("department with id %s", id))
	}
	return d, nil
}

// UpsertDepartment создает департамент или обновляет его контакты по имени без учета регистра
func (s *PostgresStore) UpsertDepartment(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, city, state, phone, email, website, complaint_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT ((lower(name))) DO UPDATE SET
			name = EXCLUDED.name,
			city = EXCLUDED.city,
			state = EXCLUDED.state,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			complaint_url = EXCLUDED.complaint_url,
			updated_at = NOW()
		RETURNING id, reports_count, updated_at;
	`
	err := s.db.QueryRow(ctx, query,
		department.Name,
		department.City,
		department.State,
		department.Phone,
		department.Email,
		department.Website,
		department.ComplaintURL,
	).Scan(&department.ID, &department.ReportsCount, &department.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert department: %w", err)
	}
	return nil
}
