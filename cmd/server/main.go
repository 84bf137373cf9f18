package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-health-keeper/internal/adapter"
	"github.com/MKhiriev/go-health-keeper/internal/cache"
	"github.com/MKhiriev/go-health-keeper/internal/config"
	"github.com/MKhiriev/go-health-keeper/internal/handler"
	"github.com/MKhiriev/go-health-keeper/internal/logger"
	"github.com/MKhiriev/go-health-keeper/internal/profile"
	"github.com/MKhiriev/go-health-keeper/internal/server"
	"github.com/MKhiriev/go-health-keeper/internal/service"
	"github.com/MKhiriev/go-health-keeper/internal/state"
	"github.com/MKhiriev/go-health-keeper/internal/store"
	"github.com/MKhiriev/go-health-keeper/internal/workers"
	"github.com/MKhiriev/go-health-keeper/models"
	"github.com/google/uuid"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewLogger("go-health-server")

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Info().Any("build", buildInfo.Response()).Msg("starting server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	blobs, err := adapter.NewBlobStorage(ctx, cfg.Storage.Blob, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating blob storage")
	}

	services, err := service.NewServices(store.NewRepositories(db, log), blobs, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	queryCache := newQueryCache(ctx, cfg.Cache, log)
	adapters := state.NewAdapters(services, queryCache)
	profiles := profile.NewContext(services.ProfileService, queryCache, profile.WithLoadTimeout(cfg.Cache.LoadTimeout))

	handlers, err := handler.NewHandlers(services, adapters, profiles, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	bg, err := workers.NewWorkers(queryCache, cfg.Workers, cfg.Cache, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating workers")
	}
	bg.Run(ctx)

	srv.RunServer()
}

// newQueryCache connects the invalidation bus when Redis is configured. A
// bus that cannot be reached leaves the cache local to this instance.
func newQueryCache(ctx context.Context, cfg config.Cache, log *logger.Logger) *cache.Cache {
	opts := []cache.Option{cache.WithLoadTimeout(cfg.LoadTimeout)}
	if cfg.RedisAddress != "" {
		bus, err := cache.NewRedisBus(ctx, cfg.RedisAddress, cfg.RedisPassword, cfg.RedisChannel, log)
		if err != nil {
			log.Warn().Err(err).Msg("invalidation bus unavailable, cache stays local")
		} else {
			opts = append(opts, cache.WithBus(bus, uuid.NewString()))
		}
	}
	return cache.New(cfg.TTL, log, opts...)
}
