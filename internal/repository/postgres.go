package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raayraay69/blue-ledger/internal/models"
	"github.com/raayraay69/blue-ledger/internal/service"
)

// PostgresStore - хранилище на PostgreSQL/PostGIS. Пространственные запросы
// выполняются по geography-колонкам с GIST-индексом.
type PostgresStore struct {
	db *pgxpool.Pool
}

var (
	_ service.IncidentStore   = (*PostgresStore)(nil)
	_ service.OfficerStore    = (*PostgresStore)(nil)
	_ service.DepartmentStore = (*PostgresStore)(nil)
	_ service.SightingStore   = (*PostgresStore)(nil)
)

// NewPostgresStore создает хранилище поверх пула соединений
func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

// scanner - общий интерфейс pgx.Row и pgx.Rows
type scanner interface {
	Scan(dest ...any) error
}

const (
	pgUniqueViolation = "23505"
	pgRaiseException  = "P0001"
)

// mapPgError переводит ошибки PostgreSQL в доменные
func mapPgError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, models.ErrNotFound)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgRaiseException:
			return fmt.Errorf("%s: %s: %w", what, pgErr.Message, models.ErrImmutableRecord)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func orderClause(order models.Order, recentColumn string) string {
	if order == models.OrderNearest {
		return "distance ASC"
	}
	return recentColumn + " DESC"
}
