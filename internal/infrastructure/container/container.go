// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	catalogapp "github.com/mirepoix/v1/internal/application/catalog"
	listapp "github.com/mirepoix/v1/internal/application/list"
	recipeapp "github.com/mirepoix/v1/internal/application/recipe"
	"github.com/mirepoix/v1/internal/infrastructure/ai/keyword"
	"github.com/mirepoix/v1/internal/infrastructure/ai/openai"
	"github.com/mirepoix/v1/internal/infrastructure/config"
	"github.com/mirepoix/v1/internal/infrastructure/email"
	"github.com/mirepoix/v1/internal/infrastructure/http/handlers"
	"github.com/mirepoix/v1/internal/infrastructure/http/server"
	"github.com/mirepoix/v1/internal/infrastructure/pdf"
	gormRepo "github.com/mirepoix/v1/internal/infrastructure/persistence/gorm"
	"github.com/mirepoix/v1/internal/infrastructure/persistence/memory"
	"github.com/mirepoix/v1/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/mirepoix/v1/internal/infrastructure/persistence/redis"
	"github.com/mirepoix/v1/internal/infrastructure/persistence/sqlite"
	"github.com/mirepoix/v1/internal/infrastructure/storage"
	"github.com/mirepoix/v1/internal/ports/outbound"
	"github.com/mirepoix/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	IntegrationModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM connection, selecting the driver from
// configuration. SQLite is the development default; PostgreSQL for
// deployments.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		if cfg.Database.Driver == "postgres" {
			return postgres.Connect(cfg, log)
		}

		dbPath := ":memory:"
		if cfg.Database.Database != "" {
			dbPath = cfg.Database.Database
		}

		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		db, err := sqlite.SetupDatabase(dbPath, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.SeedData {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", dbPath),
			zap.Bool("in_memory", dbPath == ":memory:"),
		)

		return db, nil
	},
)

// CacheModule provides caching. Redis when enabled, in-memory otherwise.
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (outbound.CacheRepository, error) {
		if !cfg.Redis.Enabled {
			log.Info("Redis disabled, using in-memory cache")
			return memory.NewCacheRepository(), nil
		}

		client, err := redisRepo.NewClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		return redisRepo.NewCacheRepository(client, log), nil
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewRecipeRepository,
	gormRepo.NewCategoryRepository,
	gormRepo.NewUnitRepository,
	gormRepo.NewIngredientRepository,
	gormRepo.NewListRepository,
)

// IntegrationModule provides the outbound integrations: AI organization,
// keyword fallback, PDF rendering, S3 storage and SMTP email
var IntegrationModule = fx.Provide(
	openai.NewClient,
	func() outbound.GroceryCategorizer { return keyword.NewCategorizer() },
	func() outbound.PDFRenderer { return pdf.NewRenderer() },
	storage.NewS3Storage,
	email.NewMailer,
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	recipeapp.NewRecipeService,
	catalogapp.NewCatalogService,
	listapp.NewListService,
)

// HTTPModule provides HTTP handlers and the server
var HTTPModule = fx.Provide(
	handlers.NewRecipeHandler,
	handlers.NewCatalogHandler,
	handlers.NewListHandler,
	func(recipes *handlers.RecipeHandler, catalog *handlers.CatalogHandler, lists *handlers.ListHandler) server.Handlers {
		return server.Handlers{Recipes: recipes, Catalog: catalog, Lists: lists}
	},
	server.New,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting Mirepoix application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down Mirepoix application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
