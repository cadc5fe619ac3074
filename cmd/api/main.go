package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	coreport "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/core"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/domain/port/persistence"
	memberUseCase "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/usecase/member"
	transferUseCase "github.com/amirhossein-jamali/transfer-coordinator/internal/domain/usecase/transfer"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/memory"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/transfer-coordinator/internal/infrastructure/config"
)

// poolMonitorInterval is how often pool usage is sampled
const poolMonitorInterval = 30 * time.Second

// store is the connection pool transactions borrow from, plus what the
// health endpoint needs to observe it
type store struct {
	pool      persistence.ConnectionPool
	factory   database.RepositoryFactory
	mapper    *database.ErrorMapper
	pinger    database.Pinger
	metrics   database.PoolMetricsSource
	closeFunc func() error
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	isolation, err := persistence.ParseIsolationLevel(cfg.Transfer.Isolation)
	if err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	tp := timeProvider.NewRealTimeProvider()

	backend, err := openStore(context.Background(), cfg, appLogger, tp)
	if err != nil {
		appLogger.Error("Failed to open store", map[string]any{
			"driver": cfg.Database.Driver,
			"error":  err.Error(),
		})
		os.Exit(1)
	}
	defer func() {
		if err := backend.closeFunc(); err != nil {
			appLogger.Error("Failed to close store", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	// Transaction infrastructure
	broker := database.NewConnectionBroker(backend.pool, backend.mapper, appLogger)
	txMetrics := database.NewMetricsCollector(appLogger, cfg.Database.SlowTransaction)
	coordinator := database.NewTransactionCoordinator(broker, backend.factory, backend.mapper, txMetrics, appLogger, tp)

	poolMonitor := database.NewConnectionPoolMonitor(backend.metrics, appLogger)
	poolMonitor.Start(poolMonitorInterval)
	defer poolMonitor.Stop()
	healthChecker := database.NewHealthChecker(backend.pinger, poolMonitor, broker, txMetrics, appLogger, tp)

	// Use cases
	transferService := transferUseCase.NewService(
		coordinator,
		transferUseCase.NewRecipientValidator(cfg.Transfer.BlockedMembers),
		isolation,
		appLogger,
	)
	memberService := memberUseCase.NewMemberUseCase(coordinator, cfg.Transfer.DuplicateKeyRetries, appLogger)

	// HTTP
	var rateLimiter *limiter.Limiter
	if cfg.RateLimit.Enabled {
		rateLimiter, err = middleware.NewRateLimiter(cfg.RateLimit.Rate)
		if err != nil {
			appLogger.Error("Invalid rate limit configuration", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger, tp, rateLimiter)
	routes.SetupRoutes(
		router,
		handler.NewMemberHandler(memberService, appLogger),
		handler.NewTransferHandler(transferService, appLogger),
		handler.NewHealthHandler(healthChecker),
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"addr":      server.Addr,
			"env":       cfg.Environment,
			"driver":    cfg.Database.Driver,
			"isolation": isolation.String(),
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", map[string]any{
		"broker":       broker.Stats(),
		"transactions": txMetrics.Snapshot(),
	})
}

// openStore connects the configured driver and returns its connection pool
func openStore(ctx context.Context, cfg *config.Config, appLogger coreport.Logger, tp coreport.TimeProvider) (*store, error) {
	dbConfig, err := database.FromAppConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	if err := dbConfig.Validate(); err != nil {
		return nil, err
	}

	if dbConfig.Driver == database.DriverMemory {
		mapper := database.NewErrorMapper()
		memStore := memory.NewStore(dbConfig.MaxOpenConns, coreport.Duration(dbConfig.AcquireTimeout), tp, appLogger)
		appLogger.Info("Using in-memory store", map[string]any{
			"connections": dbConfig.MaxOpenConns,
		})
		return &store{
			pool:      memStore,
			factory:   memory.NewFactory(mapper, appLogger),
			mapper:    mapper,
			pinger:    memStore,
			metrics:   memStore,
			closeFunc: func() error { return nil },
		}, nil
	}

	manager := database.NewManager(dbConfig, appLogger, tp)
	db, err := manager.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := manager.EnsureSchema(ctx); err != nil {
		_ = manager.Close()
		return nil, err
	}

	pool := manager.Pool()
	return &store{
		pool:      pool,
		factory:   repository.NewFactory(db, manager.ErrorMapper(), appLogger),
		mapper:    manager.ErrorMapper(),
		pinger:    pool,
		metrics:   pool,
		closeFunc: manager.Close,
	}, nil
}
