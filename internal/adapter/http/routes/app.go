package routes

import (
	"context"
	"database/sql"
	"fmt"

	"product_estimator/internal/adapter/http/handlers"
	"product_estimator/internal/adapter/persistence/repository"
	"product_estimator/internal/domain/pricing"
	"product_estimator/internal/infrastructure/catalog"
	"product_estimator/internal/infrastructure/config"
	"product_estimator/internal/infrastructure/database"
	"product_estimator/internal/infrastructure/events"
	"product_estimator/internal/usecase"
	"product_estimator/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog/log"
)

type app struct {
	handlers Handlers
	closers  []func() error
}

func (a *app) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			log.Warn().Err(err).Msg("[app] close failed")
		}
	}
}

type repositories struct {
	estimates interfaces.IEstimateRepository
	relations interfaces.ICategoryRelationRepository
}

func buildApp(ctx context.Context, cfg config.Config) (*app, error) {
	a := &app{}

	repos, err := a.buildRepositories(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	productCatalog := a.buildCatalog(ctx, cfg)
	publisher := a.buildPublisher(cfg)

	resolver := pricing.NewAdditionResolver(productCatalog, repos.relations)
	estimateUseCase := usecase.NewEstimateUseCase(repos.estimates, resolver, publisher, cfg.Pricing.DefaultMarkup)
	relationUseCase := usecase.NewCategoryRelationUseCase(repos.relations)

	a.handlers = Handlers{
		Estimates:         handlers.NewEstimateHandler(estimateUseCase),
		Products:          handlers.NewProductHandler(estimateUseCase),
		CategoryRelations: handlers.NewCategoryRelationHandler(relationUseCase),
	}
	return a, nil
}

func (a *app) buildRepositories(ctx context.Context, cfg config.Config) (repositories, error) {
	switch cfg.Storage.Driver {
	case config.StorageSQLite:
		db, err := database.OpenSQLite(cfg.Storage.SQLitePath)
		if err != nil {
			return repositories{}, fmt.Errorf("open sqlite: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		if err := database.MigrateSQLite(db); err != nil {
			return repositories{}, fmt.Errorf("migrate sqlite: %w", err)
		}
		return sqliteRepositories(db), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return repositories{}, fmt.Errorf("connect dynamodb: %w", err)
		}
		return repositories{
			estimates: repository.NewEstimateDynamoRepository(ddb, cfg.Storage.EstimatesTable),
			relations: repository.NewCategoryRelationDynamoRepository(ddb, cfg.Storage.CategoryRelationsTable),
		}, nil
	}
}

func sqliteRepositories(db *sql.DB) repositories {
	return repositories{
		estimates: repository.NewEstimateSQLiteRepository(db),
		relations: repository.NewCategoryRelationSQLiteRepository(db),
	}
}

// buildCatalog puts the Redis cache in front of the HTTP catalog when
// REDIS_ADDR is set. An unreachable Redis only degrades to uncached reads.
func (a *app) buildCatalog(ctx context.Context, cfg config.Config) interfaces.IProductCatalog {
	if cfg.Catalog.BaseURL == "" {
		log.Warn().Msg("[app] CATALOG_BASE_URL not set, products cannot be added")
	}
	var productCatalog interfaces.IProductCatalog = catalog.NewHTTPCatalog(cfg.Catalog.BaseURL, cfg.Catalog.Timeout)
	if cfg.Redis.Addr == "" {
		return productCatalog
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr})
	a.closers = append(a.closers, rdb.Close)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("[app] redis unreachable, catalog cache will fall back to origin")
	}
	return catalog.NewCachedCatalog(productCatalog, rdb, cfg.Catalog.CacheTTL)
}

func (a *app) buildPublisher(cfg config.Config) interfaces.IEventPublisher {
	if len(cfg.Kafka.Brokers) == 0 {
		return events.NoopPublisher{}
	}
	publisher := events.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.EstimatesTopic)
	a.closers = append(a.closers, publisher.Close)
	return publisher
}
