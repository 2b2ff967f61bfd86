package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything main needs to wire the service.
type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	Port        string
	GinMode     string
	JWTSecret   string
	CORSOrigins []string
	LogLevel    string

	RedisAddr     string
	RedisPassword string
	RuleLockTTL   time.Duration

	DefaultCurrency         string
	ReconcileIncludePending bool
}

// Load reads configs/.env when present, then the process environment.
// The Config is always usable; the error only reports that the dotenv file was not loaded.
func Load() (Config, error) {
	var envErr error
	if err := godotenv.Load(dotenvPath); err != nil {
		envErr = fmt.Errorf("failed to load %s: %w", dotenvPath, err)
	}
	return FromEnv(), envErr
}

const dotenvPath = "configs/.env"

// FromEnv builds a Config from environment variables with development defaults.
func FromEnv() Config {
	cfg := Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "postgres"),
		DBName:     getEnv("DB_NAME", "postgres"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		Port:      getEnv("PORT", "8080"),
		GinMode:   os.Getenv("GIN_MODE"),
		JWTSecret: os.Getenv("JWT_SECRET"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RuleLockTTL:   10 * time.Second,

		DefaultCurrency:         getEnv("DEFAULT_CURRENCY", "USD"),
		ReconcileIncludePending: os.Getenv("RECONCILE_INCLUDE_PENDING") == "true",
	}

	if ttl, err := time.ParseDuration(os.Getenv("RULE_LOCK_TTL")); err == nil && ttl > 0 {
		cfg.RuleLockTTL = ttl
	}

	origins := getEnv("CORS_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSOrigins = append(cfg.CORSOrigins, o)
		}
	}

	if cfg.JWTSecret == "" {
		if cfg.GinMode == "release" {
			panic("FATAL: JWT_SECRET environment variable is required in production mode")
		}
		cfg.JWTSecret = "default_super_secret_key" // Development fallback only
	}

	return cfg
}

func (c Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
