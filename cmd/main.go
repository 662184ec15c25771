package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	findAvailableVenuesHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/find_available_venues"
	findNearbyVenuesHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/find_nearby_venues"
	getLocationVenuesHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/get_location_venues"
	getVenueStatusHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/get_venue_status"
	listCommandsHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/list_commands"
	listLocationsHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/list_locations"
	startNearbySessionHandler "github.com/m04kA/SMC-VenueFinder/internal/api/handlers/start_nearby_session"
	"github.com/m04kA/SMC-VenueFinder/internal/api/middleware"
	"github.com/m04kA/SMC-VenueFinder/internal/config"
	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	sessionRepo "github.com/m04kA/SMC-VenueFinder/internal/infra/storage/session"
	snapshotRepo "github.com/m04kA/SMC-VenueFinder/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/refreshbus"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
	"github.com/m04kA/SMC-VenueFinder/internal/service/proximity"
	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
	"github.com/m04kA/SMC-VenueFinder/internal/service/suggest"
	findAvailableVenuesUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_available_venues"
	findNearbyVenuesUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_nearby_venues"
	getLocationVenuesUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_location_venues"
	getVenueStatusUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_venue_status"
	startNearbySessionUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/start_nearby_session"
	"github.com/m04kA/SMC-VenueFinder/pkg/logger"
	"github.com/m04kA/SMC-VenueFinder/pkg/metrics"
)

const sessionSweepInterval = time.Minute

// sessionStore общий интерфейс хранилищ сессий
type sessionStore interface {
	Save(ctx context.Context, s *domain.NearbySession) error
	Get(ctx context.Context, id string) (*domain.NearbySession, error)
}

// recoveryLogger адаптер логгера для gorilla/handlers.RecoveryHandler
type recoveryLogger struct {
	log *logger.Logger
}

func (l recoveryLogger) Println(v ...interface{}) {
	l.log.Error("Recovered from panic: %s", fmt.Sprint(v...))
}

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-VenueFinder...")
	log.Info("Configuration loaded from config.toml")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализируем метрики (если включены); методы nil-коллектора ничего не делают
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	campus, err := cfg.Schedule.Location()
	if err != nil {
		log.Fatal("Failed to load campus timezone: %v", err)
	}

	// Источник снапшота
	var loader schedule.SnapshotLoader
	switch cfg.Snapshot.Source {
	case config.SnapshotSourcePostgres:
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		// Настраиваем connection pool
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

		loader = snapshotRepo.NewPostgresRepository(db)
	default:
		loader = snapshotRepo.NewFileRepository(cfg.Snapshot.File)
		log.Info("Snapshot file: %s", cfg.Snapshot.File)
	}

	// Загружаем снапшот; без валидного снапшота сервис не стартует
	store := schedule.NewStore(loader, metricsCollector, log)
	if err := store.Reload(ctx); err != nil {
		log.Fatal("Failed to load snapshot: %v", err)
	}

	// Хранилище сессий поиска рядом
	var sessions sessionStore
	switch cfg.Sessions.Backend {
	case config.SessionBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Username: cfg.Redis.Username,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		log.Info("Nearby sessions stored in redis (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Sessions.TTL())
		sessions = sessionRepo.NewRedisRepository(client, cfg.Redis.KeyPrefix, cfg.Sessions.TTL())
	default:
		memory := sessionRepo.NewMemoryRepository(cfg.Sessions.TTL())
		go memory.RunSweeper(ctx, sessionSweepInterval)
		log.Info("Nearby sessions stored in memory (ttl=%s)", cfg.Sessions.TTL())
		sessions = memory
	}

	// Подписка на события обновления снапшота
	if cfg.Kafka.Enabled {
		consumer := refreshbus.NewConsumer(
			refreshbus.NewReader(cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.GroupID),
			store,
			log,
		)
		defer consumer.Close()

		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error("Refresh consumer stopped: %v", err)
			}
		}()
		log.Info("Refresh consumer subscribed (topic=%s, group=%s)", cfg.Kafka.Topic, cfg.Kafka.GroupID)
	}

	// Инициализируем сервисы
	engine := availability.NewEngine(campus)
	ranker := proximity.NewRanker()
	suggester := suggest.NewSuggester(cfg.Schedule.NumResults, cfg.Schedule.SuggestionCutoff)

	// Инициализируем use cases
	getVenueStatusUseCase := getVenueStatusUC.NewUseCase(store, engine, suggester, metricsCollector, log)
	getLocationVenuesUseCase := getLocationVenuesUC.NewUseCase(store, engine, metricsCollector, log, cfg.Schedule.NumResults)
	findAvailableVenuesUseCase := findAvailableVenuesUC.NewUseCase(store, engine, metricsCollector, log, cfg.Schedule.NumResults)
	startNearbySessionUseCase := startNearbySessionUC.NewUseCase(sessions, metricsCollector, log, cfg.Sessions.TTL())
	findNearbyVenuesUseCase := findNearbyVenuesUC.NewUseCase(store, sessions, engine, ranker, metricsCollector, log, cfg.Schedule.NumResults)

	// Инициализируем handlers
	getVenueStatus := getVenueStatusHandler.NewHandler(getVenueStatusUseCase, log)
	getLocationVenues := getLocationVenuesHandler.NewHandler(getLocationVenuesUseCase, log)
	findAvailableVenues := findAvailableVenuesHandler.NewHandler(findAvailableVenuesUseCase, log)
	startNearbySession := startNearbySessionHandler.NewHandler(startNearbySessionUseCase, log)
	findNearbyVenues := findNearbyVenuesHandler.NewHandler(findNearbyVenuesUseCase, log)
	listLocations := listLocationsHandler.NewHandler(log)
	listCommands := listCommandsHandler.NewHandler(log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// /start, /help
	api.HandleFunc("/commands", listCommands.Handle).Methods(http.MethodGet)

	// /room
	api.HandleFunc("/venues/{venueId}", getVenueStatus.Handle).Methods(http.MethodGet)

	// /locations, /availability
	api.HandleFunc("/locations", listLocations.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{location}/venues", getLocationVenues.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{location}/availability", findAvailableVenues.Handle).Methods(http.MethodGet)

	// /nearme: точка, затем интервал; или все сразу
	api.HandleFunc("/nearby-sessions", startNearbySession.Handle).Methods(http.MethodPost)
	api.HandleFunc("/nearby-sessions/{sessionId}/venues", findNearbyVenues.HandleSession).Methods(http.MethodGet)
	api.HandleFunc("/nearby", findNearbyVenues.HandleOneShot).Methods(http.MethodGet)

	handler := gorillaHandlers.RecoveryHandler(
		gorillaHandlers.RecoveryLogger(recoveryLogger{log: log}),
	)(r)
	handler = gorillaHandlers.CORS(
		gorillaHandlers.AllowedOrigins([]string{"*"}),
		gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		gorillaHandlers.AllowedHeaders([]string{"Content-Type", middleware.RequestIDHeader}),
	)(handler)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// SIGHUP перечитывает снапшот, SIGINT/SIGTERM останавливают сервис
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)
	for sig := range signals {
		if sig != syscall.SIGHUP {
			break
		}
		log.Info("SIGHUP received, reloading snapshot")
		if err := store.Reload(ctx); err != nil {
			log.Error("Snapshot reload failed, keeping previous snapshot: %v", err)
		}
	}

	log.Info("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
