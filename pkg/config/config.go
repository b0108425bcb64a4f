package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type AppConfig struct {
	Port        string
	Environment string

	DatabaseDriver string
	DatabasePath   string
	DatabaseURL    string
	LogQueries     bool
	AutoMigrate    bool

	ServiceName    string
	ServiceVersion string
	OTLPEndpoint   string
	// MetricsPort empty disables the Prometheus listener.
	MetricsPort string

	ShutdownTimeout time.Duration
}

func GetDefaultConfig() *AppConfig {
	return &AppConfig{
		Port:            "3000",
		Environment:     EnvDevelopment,
		DatabaseDriver:  "sqlite",
		DatabasePath:    "banco.db",
		AutoMigrate:     true,
		ServiceName:     "cadastro",
		ServiceVersion:  "1.0.0",
		MetricsPort:     "9091",
		ShutdownTimeout: 10 * time.Second,
	}
}

// Load reads a .env file when present and then the process environment,
// which wins over the file.
func Load() (*AppConfig, error) {
	_ = godotenv.Load()

	return FromEnv()
}

func FromEnv() (*AppConfig, error) {
	cfg := GetDefaultConfig()

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.Environment = getEnv("APP_ENV", cfg.Environment)
	cfg.DatabaseDriver = getEnv("DATABASE_DRIVER", cfg.DatabaseDriver)
	cfg.DatabasePath = getEnv("DATABASE_PATH", cfg.DatabasePath)
	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	cfg.ServiceName = getEnv("SERVICE_NAME", cfg.ServiceName)
	cfg.ServiceVersion = getEnv("SERVICE_VERSION", cfg.ServiceVersion)
	cfg.OTLPEndpoint = os.Getenv("OTLP_ENDPOINT")

	if v, ok := os.LookupEnv("METRICS_PORT"); ok {
		cfg.MetricsPort = v
	}

	var err error

	if cfg.LogQueries, err = getEnvBool("DB_LOG_QUERIES", false); err != nil {
		return nil, err
	}

	if cfg.AutoMigrate, err = getEnvBool("AUTO_MIGRATE", cfg.AutoMigrate); err != nil {
		return nil, err
	}

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT %q", cfg.Port)
	}

	return cfg, nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Environment == EnvProduction
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)

	if v == "" {
		return def, nil
	}

	b, err := strconv.ParseBool(v)

	if err != nil {
		return false, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}

	return b, nil
}
