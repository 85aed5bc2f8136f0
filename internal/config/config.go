package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Переменные окружения, переопределяющие значения из файла
const (
	EnvDBPassword = "FACILITY_DB_PASSWORD"
	EnvDBHost     = "FACILITY_DB_HOST"
	EnvHTTPPort   = "FACILITY_HTTP_PORT"
)

var (
	// ErrReadConfig возвращается, когда файл конфигурации не удалось прочитать
	ErrReadConfig = errors.New("config: failed to read config file")

	// ErrInvalidConfig возвращается, когда значения конфигурации недопустимы
	ErrInvalidConfig = errors.New("config: invalid config")
)

// Config конфигурация сервиса
type Config struct {
	Server        ServerConfig      `toml:"server"`
	Database      DatabaseConfig    `toml:"database"`
	Logs          LogsConfig        `toml:"logs"`
	Metrics       MetricsConfig     `toml:"metrics"`
	AccessService IntegrationConfig `toml:"access_service"`
	AuditService  IntegrationConfig `toml:"audit_service"`
	Facility      FacilityConfig    `toml:"facility"`
	Admission     AdmissionConfig   `toml:"admission"`
	Aggregation   AggregationConfig `toml:"aggregation"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// DatabaseConfig настройки подключения к PostgreSQL
type DatabaseConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN строка подключения для lib/pq
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// LogsConfig настройки логирования
type LogsConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// MetricsConfig настройки Prometheus
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// IntegrationConfig адрес внешнего сервиса (таймаут в секундах)
type IntegrationConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// FacilityConfig значения глобальной конфигурации, пока она не сохранена в БД
type FacilityConfig struct {
	DefaultAuditRequired    bool    `toml:"default_audit_required"`
	DefaultMaxDurationHours float64 `toml:"default_max_duration_hours"`
}

// AdmissionConfig ограничения проверки допуска
type AdmissionConfig struct {
	MaxHorizonDays int `toml:"max_horizon_days"`
}

// AggregationConfig настройки обзоров и рейтингов
type AggregationConfig struct {
	LeaderboardDays  []int `toml:"leaderboard_days"`
	LeaderboardLimit int   `toml:"leaderboard_limit"`
	MaxOverviewDays  int   `toml:"max_overview_days"`
}

// Default конфигурация по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    15,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			User:            "postgres",
			DBName:          "smc_facility",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: LogsConfig{
			Level: "info",
			File:  "logs/facility-service.log",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "facility_service",
		},
		AccessService: IntegrationConfig{URL: "http://localhost:8081", Timeout: 5},
		AuditService:  IntegrationConfig{URL: "http://localhost:8082", Timeout: 5},
		Facility: FacilityConfig{
			DefaultAuditRequired:    true,
			DefaultMaxDurationHours: 4,
		},
		Admission: AdmissionConfig{MaxHorizonDays: 180},
		Aggregation: AggregationConfig{
			LeaderboardDays:  []int{7, 30},
			LeaderboardLimit: 20,
			MaxOverviewDays:  31,
		},
	}
}

// Load читает .env (если есть), затем TOML файл поверх значений по умолчанию,
// затем применяет переопределения из окружения и проверяет результат
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadConfig, path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDBPassword); v != "" {
		c.Database.Password = v
	}
	if v := os.Getenv(EnvDBHost); v != "" {
		c.Database.Host = v
	}
	if v := os.Getenv(EnvHTTPPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not a number", ErrInvalidConfig, EnvHTTPPort, v)
		}
		c.Server.HTTPPort = port
	}
	return nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort <= 0 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be in 1..65535", ErrInvalidConfig)
	}
	if c.Database.Host == "" || c.Database.DBName == "" {
		return fmt.Errorf("%w: database.host and database.dbname are required", ErrInvalidConfig)
	}
	if c.AccessService.URL == "" {
		return fmt.Errorf("%w: access_service.url is required", ErrInvalidConfig)
	}
	if c.AuditService.URL == "" {
		return fmt.Errorf("%w: audit_service.url is required", ErrInvalidConfig)
	}
	if c.Facility.DefaultMaxDurationHours <= 0 {
		return fmt.Errorf("%w: facility.default_max_duration_hours must be > 0", ErrInvalidConfig)
	}
	if c.Admission.MaxHorizonDays <= 0 {
		return fmt.Errorf("%w: admission.max_horizon_days must be > 0", ErrInvalidConfig)
	}
	if len(c.Aggregation.LeaderboardDays) == 0 {
		return fmt.Errorf("%w: aggregation.leaderboard_days must not be empty", ErrInvalidConfig)
	}
	for _, d := range c.Aggregation.LeaderboardDays {
		if d <= 0 {
			return fmt.Errorf("%w: aggregation.leaderboard_days must be positive, got %d", ErrInvalidConfig, d)
		}
	}
	if c.Aggregation.LeaderboardLimit <= 0 {
		return fmt.Errorf("%w: aggregation.leaderboard_limit must be > 0", ErrInvalidConfig)
	}
	if c.Aggregation.MaxOverviewDays <= 0 {
		return fmt.Errorf("%w: aggregation.max_overview_days must be > 0", ErrInvalidConfig)
	}
	return nil
}
