package container

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/joblens/joblens-backend/internal/config"
	httpdelivery "github.com/joblens/joblens-backend/internal/delivery/http"
	"github.com/joblens/joblens-backend/internal/delivery/http/handler"
	"github.com/joblens/joblens-backend/internal/delivery/http/middleware"
	"github.com/joblens/joblens-backend/internal/infrastructure/database"
	"github.com/joblens/joblens-backend/internal/infrastructure/logger"
	"github.com/joblens/joblens-backend/internal/infrastructure/scheduler"
	"github.com/joblens/joblens-backend/internal/infrastructure/server"
	"github.com/joblens/joblens-backend/internal/repository/postgres"
	"github.com/joblens/joblens-backend/internal/usecase/ingest"
	"github.com/joblens/joblens-backend/internal/usecase/match"
	"github.com/joblens/joblens-backend/internal/usecase/sweep"
)

// Container holds all application dependencies
type Container struct {
	Config    *config.Config
	Logger    *zap.Logger
	DB        *sqlx.DB
	Redis     *redis.Client
	Server    *server.Server
	Scheduler *scheduler.Scheduler
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	// Initialize logger
	log, err := logger.New(&cfg.Logging, cfg.Server.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis (optional: feed candidate cache degrades to direct
	// DB reads when disabled)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = database.NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	// Initialize repositories
	profileRepo := postgres.NewProfileRepository(db)
	companyRepo := postgres.NewCompanyRepository(db)
	jobRepo := postgres.NewJobRepository(db)

	// Initialize use cases
	matchUseCase := match.NewMatchUseCase(profileRepo, jobRepo, redisClient)
	ingestUseCase := ingest.NewIngestUseCase(jobRepo, companyRepo, redisClient, log)
	sweepUseCase := sweep.NewSweepUseCase(jobRepo, redisClient, log)

	// Initialize handlers
	feedHandler := handler.NewFeedHandler(matchUseCase)
	importHandler := handler.NewImportHandler(ingestUseCase, sweepUseCase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.AccessSecret)
	adminKeyMiddleware := middleware.NewAdminKeyMiddleware(cfg.Admin.APIKeyHash)

	// Initialize router
	router := httpdelivery.NewRouter(
		feedHandler,
		importHandler,
		authMiddleware,
		adminKeyMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, log)

	// Initialize sweep scheduler
	var sched *scheduler.Scheduler
	if cfg.Sweep.Enabled {
		sched = scheduler.New(sweepUseCase, log, cfg.Sweep.Spec)
	}

	return &Container{
		Config:    cfg,
		Logger:    log,
		DB:        db,
		Redis:     redisClient,
		Server:    srv,
		Scheduler: sched,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	// Close Redis
	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("error closing redis", zap.Error(err))
		}
	}

	// Close database
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	if c.Logger != nil {
		_ = c.Logger.Sync()
	}

	return nil
}
