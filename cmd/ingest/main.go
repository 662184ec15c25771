package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-VenueFinder/internal/config"
	snapshotRepo "github.com/m04kA/SMC-VenueFinder/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/nusmods"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/refreshbus"
	buildSnapshotUC "github.com/m04kA/SMC-VenueFinder/internal/usecase/build_snapshot"
	"github.com/m04kA/SMC-VenueFinder/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config.toml", "path to config.toml")
	flag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting venue ingestion...")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Куда пишем снапшот
	var writers []buildSnapshotUC.SnapshotWriter
	if cfg.Ingest.WriteFile {
		writers = append(writers, snapshotRepo.NewFileRepository(cfg.Snapshot.File))
		log.Info("Snapshot will be written to file %s", cfg.Snapshot.File)
	}
	if cfg.Ingest.WritePostgres {
		db, err := sql.Open("postgres", cfg.Database.DSN())
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.PingContext(ctx); err != nil {
			log.Fatal("Failed to ping database: %v", err)
		}
		writers = append(writers, snapshotRepo.NewPostgresWriter(db))
		log.Info("Snapshot will be written to postgres (host=%s, db=%s)", cfg.Database.Host, cfg.Database.DBName)
	}
	if len(writers) == 0 {
		log.Fatal("Nothing to do: enable ingest.write_file or ingest.write_postgres")
	}

	// Событие обновления для серверов
	var publisher buildSnapshotUC.RefreshPublisher
	if cfg.Kafka.Enabled {
		p := refreshbus.NewPublisher(refreshbus.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.Topic), log)
		defer p.Close()
		publisher = p
	}

	resolver, err := buildSnapshotUC.NewLocationResolver(cfg.Ingest.LocationPrefixes)
	if err != nil {
		log.Fatal("Invalid location prefixes: %v", err)
	}

	client := nusmods.NewClient(
		cfg.NUSMods.CatalogURL,
		cfg.NUSMods.AvailabilityURL,
		time.Duration(cfg.NUSMods.Timeout)*time.Second,
		log,
	)

	useCase := buildSnapshotUC.NewUseCase(client, writers, publisher, resolver, log, cfg.Ingest.SourceName)

	result, err := useCase.Execute(ctx)
	if err != nil {
		log.Fatal("Ingestion failed: %v", err)
	}

	log.Info("Ingestion finished: venues=%d, with_availability=%d, skipped_no_coords=%d, published=%t",
		result.Venues, result.WithAvailability, result.SkippedNoCoords, result.Published)
}
