package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/raayraay69/blue-ledger/internal/config"
)

const connectTimeout = 10 * time.Second

// NewPostgresDB создает пул соединений PostgreSQL и проверяет, что в базе доступен PostGIS
func NewPostgresDB(ctx context.Context, appCfg *config.Config) (*pgxpool.Pool, error) {
	cfgPool, err := pgxpool.ParseConfig(appCfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}
	if appCfg.DBMaxConns > 0 {
		cfgPool.MaxConns = int32(appCfg.DBMaxConns)
	}
	cfgPool.ConnConfig.RuntimeParams["application_name"] = "blue-ledger"

	dbpool, err := pgxpool.NewWithConfig(ctx, cfgPool)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := dbpool.Ping(pingCtx); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	// Радиусные запросы работают только с типом geography
	var version string
	if err := dbpool.QueryRow(pingCtx, "SELECT postgis_lib_version()").Scan(&version); err != nil {
		dbpool.Close()
		return nil, fmt.Errorf("postgis is not available: %w", err)
	}

	return dbpool, nil
}
