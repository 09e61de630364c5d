package app

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/orbital-nexus-backend/internal/data/db"
	"github.com/yungbote/orbital-nexus-backend/internal/observability"
	"github.com/yungbote/orbital-nexus-backend/internal/platform/envutil"
	"github.com/yungbote/orbital-nexus-backend/internal/realtime/bus"
)

const serviceName = "orbital-nexus-backend"

type Config struct {
	Environment string
	Port        string
	LogMode     string

	DB          db.Config
	AutoMigrate bool

	CORSOrigins []string

	RedisAddr    string
	RedisChannel string

	MetricsEnabled  bool
	Otel            observability.OtelConfig
	ShutdownTimeout time.Duration
}

// loadDotEnv reads .env when present. Variables already set in the process win.
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func LoadConfig() Config {
	env := envutil.String("NODE_ENV", "development")
	logMode := "development"
	if isProduction(env) {
		logMode = "production"
	}

	return Config{
		Environment: env,
		Port:        envutil.String("PORT", "3001"),
		LogMode:     envutil.String("LOG_MODE", logMode),
		DB: db.Config{
			DSN:            envutil.String("DATABASE_URL", ""),
			Host:           envutil.String("DB_HOST", "localhost"),
			Port:           envutil.String("DB_PORT", "5432"),
			User:           envutil.String("DB_USER", "orbital_user"),
			Password:       envutil.String("DB_PASSWORD", "orbital_password"),
			Name:           envutil.String("DB_NAME", "orbital_nexus"),
			MaxOpenConns:   envutil.Int("DB_MAX_OPEN_CONNS", 20),
			IdleTimeout:    envutil.Duration("DB_IDLE_TIMEOUT", 30*time.Second),
			ConnectTimeout: envutil.Duration("DB_CONNECT_TIMEOUT", 2*time.Second),
			SlowThreshold:  envutil.Duration("DB_SLOW_QUERY_THRESHOLD", time.Second),
		},
		AutoMigrate:  envutil.Bool("DB_AUTO_MIGRATE", true),
		CORSOrigins:  envutil.List("CORS_ORIGINS", nil),
		RedisAddr:    envutil.String("REDIS_ADDR", ""),
		RedisChannel: envutil.String("REDIS_CHANNEL", bus.DefaultChannel),

		MetricsEnabled: envutil.Bool("METRICS_ENABLED", true),
		Otel: observability.OtelConfig{
			ServiceName: envutil.String("OTEL_SERVICE_NAME", serviceName),
			Environment: env,
			Version:     envutil.String("SERVICE_VERSION", "dev"),
			Enabled:     envutil.Bool("OTEL_ENABLED", false),
			Endpoint:    envutil.String("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:     envutil.String("OTEL_EXPORTER_OTLP_HEADERS", ""),
			Insecure:    envutil.Bool("OTEL_EXPORTER_OTLP_INSECURE", false),
			SampleRatio: envutil.Float("OTEL_SAMPLER_RATIO", 0.1),
		},
		ShutdownTimeout: envutil.Duration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func (c Config) IsDevelopment() bool {
	return strings.EqualFold(c.Environment, "development")
}

func isProduction(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "production" || env == "prod"
}
