package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-subjects/internal/adapter"
	"github.com/MKhiriev/go-subjects/internal/cache"
	"github.com/MKhiriev/go-subjects/internal/config"
	"github.com/MKhiriev/go-subjects/internal/events"
	"github.com/MKhiriev/go-subjects/internal/handler"
	"github.com/MKhiriev/go-subjects/internal/logger"
	"github.com/MKhiriev/go-subjects/internal/metrics"
	"github.com/MKhiriev/go-subjects/internal/server"
	"github.com/MKhiriev/go-subjects/internal/service"
	"github.com/MKhiriev/go-subjects/internal/store"
	"github.com/MKhiriev/go-subjects/internal/workers"
	"github.com/MKhiriev/go-subjects/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

// closer is implemented by the optional cache and broker clients.
type closer interface {
	Close() error
}

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("subjects-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	log.Debug().Any("config", cfg.Redacted()).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(context.Background()); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	users := storages.UserRepository
	if cfg.Adapter.UsersAddress != "" {
		users, err = adapter.NewHTTPUsersAdapter(cfg.Adapter, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error creating users adapter")
		}
	}

	metricsManager := metrics.NewManager()
	opts := []service.Option{service.WithRecorder(metricsManager)}
	var closers []closer

	if cfg.Cache.RedisAddress != "" {
		subjectCache, err := cache.NewRedisSubjectCache(ctx, cfg.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting cache")
		}
		opts = append(opts, service.WithCache(subjectCache))
		closers = append(closers, subjectCache)
	}

	if cfg.Events.AMQPURL != "" {
		publisher, err := events.NewRabbitPublisher(cfg.Events, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting event broker")
		}
		opts = append(opts, service.WithPublisher(publisher))
		closers = append(closers, publisher)
	} else {
		opts = append(opts, service.WithPublisher(events.NewLogPublisher()))
	}
	defer func() {
		for _, c := range closers {
			if err := c.Close(); err != nil {
				log.Err(err).Msg("error closing client")
			}
		}
	}()

	services, err := service.NewServices(storages.SubjectRepository, users, cfg.App, log, opts...)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, metricsManager, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	sinks := []workers.StatusSink{metricsManager}
	if handlers.GRPC != nil {
		sinks = append(sinks, handlers.GRPC)
	}
	workers.NewWorkers(
		workers.NewHealthProbe(storages, cfg.Workers.HealthCheckInterval, log, sinks...),
	).Run(ctx)

	srv.RunServer(ctx)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
