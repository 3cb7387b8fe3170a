package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const DefaultStoreKey = "studyforge-storage"

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Progress store
	StoreBackend string // "file", "sql", "s3" or "memory"
	StoreKey     string
	DataPath     string

	// Database (used by the sql backend, default: sqlite)
	DBDriver       string
	DBConnection   string
	MigrateOnStart bool

	// Storage (S3-compatible: MinIO, AWS S3, Cloudflare R2, etc.)
	S3Region    string
	S3Bucket    string
	S3AccessKey string
	S3SecretKey string
	S3Endpoint  string // Optional: for S3-compatible services
	S3Prefix    string
	S3Timeout   time.Duration

	// Timer
	TimerConfigPath string

	// HTTP
	RateLimit       int
	RateLimitWindow time.Duration
	TrustProxy      bool

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	cfg := &Config{
		// Application
		AppName: envString("APP_NAME", "StudyForge"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Progress store
		StoreBackend: envString("STORE_BACKEND", "file"),
		StoreKey:     envString("STORE_KEY", DefaultStoreKey),
		DataPath:     envString("DATA_PATH", "./data"),

		// Database
		DBDriver:       envString("DB_DRIVER", "sqlite"),
		DBConnection:   envString("DB_CONNECTION", "./data/studyforge.db?_pragma=journal_mode(WAL)"),
		MigrateOnStart: envBool("DB_MIGRATE_ON_START", true),

		// Storage
		S3Region:    envString("S3_REGION", "us-east-1"),
		S3Bucket:    envString("S3_BUCKET", "studyforge"),
		S3AccessKey: envString("S3_ACCESS_KEY", ""),
		S3SecretKey: envString("S3_SECRET_KEY", ""),
		S3Endpoint:  envString("S3_ENDPOINT", ""),
		S3Prefix:    envString("S3_PREFIX", ""),
		S3Timeout:   envDuration("S3_TIMEOUT", 30*time.Second),

		// Timer
		TimerConfigPath: envString("TIMER_CONFIG", "./timer.yaml"),

		// HTTP
		RateLimit:       envInt("RATE_LIMIT", 60),
		RateLimitWindow: envDuration("RATE_LIMIT_WINDOW", time.Minute),
		TrustProxy:      envBool("TRUST_PROXY", false),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}

	return cfg
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

func envBool(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("config invalid bool, using default", "key", key, "value", v, "default", def)
		return def
	}
	return b
}

func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		slog.Warn("config invalid int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return i
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// Sanitized returns a copy of the config without credentials.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:      c.AppName,
		AppEnv:       c.AppEnv,
		Port:         c.Port,
		StoreBackend: c.StoreBackend,
		StoreKey:     c.StoreKey,
		DBDriver:     c.DBDriver,
		S3Region:     c.S3Region,
		S3Bucket:     c.S3Bucket,
		S3Endpoint:   c.S3Endpoint,
		S3Prefix:     c.S3Prefix,
	}
}
