package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	server "github.com/floradu88/astro-api-client/internal/adapters/primary/http"
	healthcheckController "github.com/floradu88/astro-api-client/internal/adapters/primary/http/controllers/healthcheck"
	horoscopeController "github.com/floradu88/astro-api-client/internal/adapters/primary/http/controllers/horoscope"
	astroApi "github.com/floradu88/astro-api-client/internal/adapters/secondary/astroApi"
	kafkaAdapter "github.com/floradu88/astro-api-client/internal/adapters/secondary/kafka"
	"github.com/floradu88/astro-api-client/internal/adapters/secondary/storage/inmemory"
	"github.com/floradu88/astro-api-client/internal/adapters/secondary/storage/pg"
	redisAdapter "github.com/floradu88/astro-api-client/internal/adapters/secondary/storage/redis"
	"github.com/floradu88/astro-api-client/internal/pkg/logger"
	cachePort "github.com/floradu88/astro-api-client/internal/ports/cache"
	kafkaPort "github.com/floradu88/astro-api-client/internal/ports/kafka"
	requestRepo "github.com/floradu88/astro-api-client/internal/repository/request"
	horoscopeService "github.com/floradu88/astro-api-client/internal/usecases/horoscope"
	"golang.org/x/sync/errgroup"

	"github.com/jmoiron/sqlx"
)

type App struct {
	Name string
	Cfg  *Config
	Log  *slog.Logger
}

func New(name string, cfg *Config) *App {
	return &App{
		Name: name,
		Cfg:  cfg,
		Log:  logger.New(name, cfg.Log),
	}
}

func (a *App) Run(ctx context.Context) error {
	a.Log.Info("running astro api service")

	db, err := a.initPostgres()
	if err != nil {
		return fmt.Errorf("failed to init postgres: %w", err)
	}

	reportCache, err := a.initCache()
	if err != nil {
		return fmt.Errorf("failed to init cache: %w", err)
	}

	producer, err := a.initProducer()
	if err != nil {
		return fmt.Errorf("failed to init kafka producer: %w", err)
	}

	persistenceLayer := pg.NewDB(db)
	requestsRepo := requestRepo.New(persistenceLayer, a.Log)
	apiClient := astroApi.NewClient(a.Cfg.AstroAPI, a.Log)
	horoscopes := horoscopeService.New(apiClient, reportCache, requestsRepo, producer, a.Log)

	horoscopeCtrl := horoscopeController.New(horoscopes, a.Log)
	healthCheck := healthcheckController.New(db, a.Log)

	httpServer := server.NewHTTPServer(a.Cfg.Server, a.Log, healthCheck, horoscopeCtrl)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.Log.Info("starting http server",
			"host", a.Cfg.Server.Host,
			"port", a.Cfg.Server.Port)

		err := httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	g.Go(func() error {
		<-gCtx.Done()
		a.Log.Info("received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			a.Log.Error("failed to shutdown http server", "error", err)
		}

		if err := db.Close(); err != nil {
			a.Log.Error("failed to close database", "error", err)
		}

		if err := reportCache.Close(); err != nil {
			a.Log.Error("failed to close cache", "error", err)
		}

		if producer != nil {
			if err := producer.Close(); err != nil {
				a.Log.Error("failed to close kafka producer", "error", err)
			}
		}

		a.Log.Info("application shutdown completed")
		return nil
	})

	if err := g.Wait(); err != nil {
		a.Log.Error("application error", "error", err)
		return err
	}

	return nil
}

func (a *App) initPostgres() (*sqlx.DB, error) {
	db, err := a.Cfg.Postgres.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	a.Log.Info("postgres connected successfully")

	if err := pg.RunMigrations(db, a.Log); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// initCache поднимает Redis, а без него откатывается на кэш в памяти
func (a *App) initCache() (cachePort.Cache, error) {
	if a.Cfg.Redis == nil || !a.Cfg.Redis.Enabled() {
		a.Log.Info("redis is not configured, using in-memory report cache")
		return inmemory.NewReportCache(), nil
	}

	client, err := a.Cfg.Redis.NewConnection()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	a.Log.Info("redis connected successfully")
	return redisAdapter.NewClient(client), nil
}

// initProducer возвращает nil при отсутствии брокеров, сервис это допускает
func (a *App) initProducer() (kafkaPort.IProducer, error) {
	if a.Cfg.Kafka == nil || !a.Cfg.Kafka.Enabled() {
		a.Log.Info("kafka is not configured, report events are disabled")
		return nil, nil
	}

	producer, err := kafkaAdapter.NewProducer(a.Cfg.Kafka, a.Log)
	if err != nil {
		return nil, err
	}

	a.Log.Info("kafka producer started", "topic", a.Cfg.Kafka.Topic)
	return producer, nil
}
