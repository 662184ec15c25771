package config

import (
	"errors"
	"fmt"
	"maps"
	"os"
	"strings"
	"time"
	_ "time/tzdata" // часовой пояс кампуса должен грузиться и в scratch-контейнере

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Источники снапшота
const (
	SnapshotSourceFile     = "file"
	SnapshotSourcePostgres = "postgres"
)

// Хранилища сессий
const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

// Config конфигурация сервиса из config.toml
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Snapshot SnapshotConfig `toml:"snapshot"`
	Database DatabaseConfig `toml:"database"`
	Schedule ScheduleConfig `toml:"schedule"`
	Sessions SessionsConfig `toml:"sessions"`
	Redis    RedisConfig    `toml:"redis"`
	Kafka    KafkaConfig    `toml:"kafka"`
	NUSMods  NUSModsConfig  `toml:"nusmods"`
	Ingest   IngestConfig   `toml:"ingest"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`     // секунды
	WriteTimeout    int `toml:"write_timeout"`    // секунды
	IdleTimeout     int `toml:"idle_timeout"`     // секунды
	ShutdownTimeout int `toml:"shutdown_timeout"` // секунды
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type SnapshotConfig struct {
	Source string `toml:"source"` // file | postgres
	File   string `toml:"file"`
}

type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"` // секунды
}

// DSN строка подключения для lib/pq
func (c DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

type ScheduleConfig struct {
	Timezone         string  `toml:"timezone"`
	NumResults       int     `toml:"num_results"`
	SuggestionCutoff float64 `toml:"suggestion_cutoff"`
}

// Location загружает часовой пояс кампуса
func (c ScheduleConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type SessionsConfig struct {
	Backend    string `toml:"backend"` // memory | redis
	TTLSeconds int    `toml:"ttl_seconds"`
}

// TTL время жизни сессии поиска рядом
func (c SessionsConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type RedisConfig struct {
	Addr      string `toml:"addr"`
	Username  string `toml:"username"`
	Password  string `toml:"password"`
	DB        int    `toml:"db"`
	KeyPrefix string `toml:"key_prefix"`
}

type KafkaConfig struct {
	Enabled bool     `toml:"enabled"`
	Brokers []string `toml:"brokers"`
	Topic   string   `toml:"topic"`
	GroupID string   `toml:"group_id"`
}

type NUSModsConfig struct {
	CatalogURL      string `toml:"catalog_url"`
	AvailabilityURL string `toml:"availability_url"`
	Timeout         int    `toml:"timeout"` // секунды
}

type IngestConfig struct {
	WriteFile        bool              `toml:"write_file"`     // писать снапшот в snapshot.file
	WritePostgres    bool              `toml:"write_postgres"` // писать снапшот в database
	SourceName       string            `toml:"source_name"`
	LocationPrefixes map[string]string `toml:"location_prefixes"` // префикс идентификатора -> группа
}

// DefaultLocationPrefixes таблица групп по префиксам аудиторий кампуса
var DefaultLocationPrefixes = map[string]string{
	"BIZ":   "BIZ",
	"HSS":   "BIZ",
	"E":     "ENGIN",
	"EA":    "ENGIN",
	"EW":    "ENGIN",
	"AS":    "FASS",
	"S":     "FOS",
	"LT2":   "FOS",
	"I3":    "I3",
	"BTC":   "LAW",
	"SDE":   "SDE",
	"COM":   "SOC",
	"UT":    "UTOWN",
	"ERC":   "UTOWN",
	"Y-":    "YALE",
	"YNC":   "YALE",
	"MD":    "YLLSM",
	"YSTCM": "YSTCM",
}

// Load читает config.toml, затем переопределяет секреты из окружения (.env подхватывается, если есть)
func Load(path string) (*Config, error) {
	cfg := defaults()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	applyEnv(cfg)

	if len(cfg.Ingest.LocationPrefixes) == 0 {
		cfg.Ingest.LocationPrefixes = maps.Clone(DefaultLocationPrefixes)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs:     LogsConfig{Level: "info"},
		Metrics:  MetricsConfig{Path: "/metrics", ServiceName: "smc-venue-finder"},
		Snapshot: SnapshotConfig{Source: SnapshotSourceFile, File: "data/venues.json"},
		Database: DatabaseConfig{
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    10,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Schedule: ScheduleConfig{
			Timezone:         domain.DefaultTimezone,
			NumResults:       domain.DefaultNumResults,
			SuggestionCutoff: domain.DefaultSuggestionCutoff,
		},
		Sessions: SessionsConfig{Backend: SessionBackendMemory, TTLSeconds: 600},
		Redis:    RedisConfig{Addr: "localhost:6379", KeyPrefix: "venues:nearby:"},
		Kafka:    KafkaConfig{Topic: "venues.snapshot.refreshed", GroupID: "smc-venue-finder"},
		NUSMods: NUSModsConfig{
			CatalogURL:      "https://raw.githubusercontent.com/nusmodifications/nusmods/master/website/src/data/venues.json",
			AvailabilityURL: "https://api.nusmods.com/v2/2021-2022/semesters/2/venueInformation.json",
			Timeout:         30,
		},
		Ingest: IngestConfig{WriteFile: true, SourceName: "nusmods"},
	}
}

// applyEnv переопределяет секреты переменными окружения
func applyEnv(cfg *Config) {
	if v := os.Getenv("DB_PASSWORD"); v != "" {
		cfg.Database.Password = v
	}
	if v := os.Getenv("REDIS_PASSWORD"); v != "" {
		cfg.Redis.Password = v
	}
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = strings.Split(v, ",")
	}
}

// Validate проверяет согласованность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("server.http_port must be in 1..65535, got %d", c.Server.HTTPPort)
	}

	switch c.Snapshot.Source {
	case SnapshotSourceFile:
		if c.Snapshot.File == "" {
			return errors.New("snapshot.file is required for file source")
		}
	case SnapshotSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return errors.New("database.host and database.dbname are required for postgres source")
		}
	default:
		return fmt.Errorf("unknown snapshot.source %q", c.Snapshot.Source)
	}

	if _, err := c.Schedule.Location(); err != nil {
		return fmt.Errorf("invalid schedule.timezone %q: %w", c.Schedule.Timezone, err)
	}
	if c.Schedule.NumResults <= 0 {
		return fmt.Errorf("schedule.num_results must be positive, got %d", c.Schedule.NumResults)
	}
	if c.Schedule.SuggestionCutoff < 0 || c.Schedule.SuggestionCutoff > 1 {
		return fmt.Errorf("schedule.suggestion_cutoff must be in [0, 1], got %v", c.Schedule.SuggestionCutoff)
	}

	switch c.Sessions.Backend {
	case SessionBackendMemory:
	case SessionBackendRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for redis sessions")
		}
	default:
		return fmt.Errorf("unknown sessions.backend %q", c.Sessions.Backend)
	}
	if c.Sessions.TTLSeconds <= 0 {
		return fmt.Errorf("sessions.ttl_seconds must be positive, got %d", c.Sessions.TTLSeconds)
	}

	if c.Kafka.Enabled && (len(c.Kafka.Brokers) == 0 || c.Kafka.Topic == "") {
		return errors.New("kafka.brokers and kafka.topic are required when kafka is enabled")
	}

	for prefix, loc := range c.Ingest.LocationPrefixes {
		if !domain.Location(strings.ToUpper(loc)).IsValid() {
			return fmt.Errorf("ingest.location_prefixes[%q]: unknown location %q", prefix, loc)
		}
	}

	return nil
}
