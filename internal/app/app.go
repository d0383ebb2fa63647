// Package app собирает зависимости сервиса: реестр, сервис, метрики, события и роутер.
package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"activities-service/internal/config"
	"activities-service/internal/events"
	httpapi "activities-service/internal/http"
	"activities-service/internal/metrics"
	"activities-service/internal/model"
	"activities-service/internal/repository"
	"activities-service/internal/service"
)

// App хранит собранные компоненты сервиса.
type App struct {
	Store     *repository.RosterStore
	Roster    *service.RosterService
	Handler   http.Handler
	publisher events.Publisher
}

// New собирает приложение по конфигурации. Метрики регистрируются в reg.
func New(cfg config.Config, log *slog.Logger, reg *prometheus.Registry) (*App, error) {
	// 1. Начальные данные
	seed, err := loadSeed(cfg)
	if err != nil {
		return nil, err
	}

	// 2. Реестр кружков
	store, err := repository.NewRosterStore(seed, repository.WithCapacityEnforcement(cfg.EnforceCapacity))
	if err != nil {
		return nil, fmt.Errorf("init roster store: %w", err)
	}

	// 3. Метрики; размеры списков читаются из реестра при каждом сборе
	rosterMetrics := metrics.NewRoster(reg, store)

	// 4. Издатель событий
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.EventsEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic,
			func(activity, eventID string, err error) {
				rosterMetrics.PublishFailed()
				log.Warn("roster event not delivered",
					slog.String("event_id", eventID),
					slog.String("activity", activity),
					slog.Any("err", err),
				)
			})
	}

	// 5. Сервис и HTTP-обработчик
	roster := service.NewRosterService(store, publisher, rosterMetrics, log)
	handler := httpapi.NewHandler(roster, log, httpapi.Options{
		StaticDir:      cfg.StaticDir,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Metrics:        promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	})

	log.Info("roster store ready",
		slog.Int("activities", len(seed)),
		slog.Bool("enforce_capacity", store.EnforcesCapacity()),
		slog.Bool("events_enabled", cfg.EventsEnabled()),
	)

	return &App{
		Store:     store,
		Roster:    roster,
		Handler:   handler.Router(),
		publisher: publisher,
	}, nil
}

// Close освобождает внешние ресурсы (writer Kafka).
func (a *App) Close() error {
	return a.publisher.Close()
}

func loadSeed(cfg config.Config) ([]model.Activity, error) {
	if cfg.SeedFile == "" {
		return repository.DefaultActivities(), nil
	}
	seed, err := repository.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	return seed, nil
}
