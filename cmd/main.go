package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/raayraay69/blue-ledger/internal/config"
	"github.com/raayraay69/blue-ledger/internal/devicetoken"
	v1 "github.com/raayraay69/blue-ledger/internal/handler/http/v1"
	"github.com/raayraay69/blue-ledger/internal/notify"
	"github.com/raayraay69/blue-ledger/internal/policy"
	"github.com/raayraay69/blue-ledger/internal/ratelimit"
	"github.com/raayraay69/blue-ledger/internal/repository"
	"github.com/raayraay69/blue-ledger/internal/repository/memory"
	"github.com/raayraay69/blue-ledger/internal/service"
	"github.com/raayraay69/blue-ledger/pkg/logger"
	"github.com/raayraay69/blue-ledger/pkg/postgres"
	redisclient "github.com/raayraay69/blue-ledger/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/raayraay69/blue-ledger/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// store - хранилище, которое обслуживает все компоненты
type store interface {
	service.IncidentStore
	service.SightingStore
	service.OfficerStore
	service.DepartmentStore
}

// @title Blue Ledger API
// @version 1.0
// @description Anonymous, geospatially indexed ledger of police encounters and ephemeral sightings.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Инициализация хранилища
	var st store
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		st = repository.NewPostgresStore(dbpool)
	default:
		log.Warn("Using in-memory storage, data is lost on restart")
		st = memory.NewStore()
	}

	g, gctx := errgroup.WithContext(ctx)

	// Redis: ограничитель, кэш инцидентов и очередь уведомлений. Без Redis - локальные замены
	var (
		limiter   service.RateLimiter
		cache     service.IncidentCache
		publisher notify.Publisher = notify.NopPublisher{}
	)
	quotas := ratelimit.QuotasFromConfig(cfg)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		limiter = ratelimit.NewRedisLimiter(redisClient, quotas)
		cache = repository.NewIncidentCache(redisClient, cfg.IncidentCacheTTL)
		publisher = notify.NewRedisPublisher(redisClient)

		worker := notify.NewWorker(redisClient, log, cfg)
		g.Go(func() error { return worker.Run(gctx) })
	} else {
		log.Warn("Redis is not configured, rate limits are kept in process memory")
		limiter = ratelimit.NewMemoryLimiter(quotas)
	}

	// Соль токенов устройств
	rotator, err := devicetoken.NewRotator(cfg.SaltRotationOffset, cfg.SaltGrace, log)
	if err != nil {
		log.Fatalf("Failed to initialize device token salt: %v", err)
	}
	g.Go(func() error { return rotator.Run(gctx) })

	// Инициализация сервисов
	ledger := service.NewLedger(st, cache, rotator, limiter, log)
	sightings := service.NewSightings(st, rotator, limiter, publisher, cfg.SightingTTL, log)
	directory := service.NewDirectory(st, st, log)
	sweeper := service.NewSweeper(st, cfg.SweepInterval, log)
	g.Go(func() error { return sweeper.Run(gctx) })

	if cfg.DepartmentsFile != "" {
		departments, err := service.LoadDepartmentsFile(cfg.DepartmentsFile)
		if err != nil {
			log.Fatalf("Failed to load departments: %v", err)
		}
		if _, err := directory.Sync(ctx, departments); err != nil {
			log.Fatalf("Failed to sync departments: %v", err)
		}
	}

	gateway := service.NewGateway(policy.NewEnforcer(policy.DefaultTable), ledger, sightings, directory, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(gateway, rotator, log, cfg)

	// Настройка Gin роутера. Встроенные логгер и recovery gin пишут IP клиента и заголовки, поэтому не подключаются
	router := gin.New()
	router.Use(v1.RecoveryMiddleware(log), v1.AccessLogMiddleware(log))
	if err := router.SetTrustedProxies(nil); err != nil {
		log.Fatalf("Failed to configure trusted proxies: %v", err)
	}
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	g.Go(func() error {
		log.Infof("HTTP server started on port %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		log.Errorf("Service stopped with error: %v", err)
		return
	}
	log.Info("Server gracefully stopped")
}
