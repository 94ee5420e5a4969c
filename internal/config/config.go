package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration.
type Config struct {
	AppName     string
	Port        string
	LogLevel    string
	CORSOrigins string

	DatabaseURL    string
	DBHost         string
	DBPort         string
	DBName         string
	DBUser         string
	DBPassword     string
	DBSSLMode      string
	DBTimeZone     string
	DBMaxIdleConns int
	DBMaxOpenConns int
	DBConnLifetime time.Duration
	DBAutoMigrate  bool

	// MaxCombinations caps generated product combinations. Zero disables the cap.
	MaxCombinations int

	Redis RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

// Enabled reports whether a redis address was configured.
func (r RedisConfig) Enabled() bool {
	return strings.TrimSpace(r.Addr) != ""
}

// Load loads configuration from environment variables and .env file.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppName:     getenv("APP_NAME", "Catalog Admin v1.0"),
		Port:        getenv("PORT", "3000"),
		LogLevel:    strings.ToLower(getenv("LOG_LEVEL", "info")),
		CORSOrigins: getenv("CORS_ORIGINS", "*"),

		DatabaseURL:    strings.TrimSpace(getenv("DATABASE_URL", "")),
		DBHost:         getenv("DB_HOST", "localhost"),
		DBPort:         getenv("DB_PORT", "5432"),
		DBName:         getenv("DB_NAME", "catalog"),
		DBUser:         getenv("DB_USER", "postgres"),
		DBPassword:     getenv("DB_PASSWORD", ""),
		DBSSLMode:      getenv("DB_SSLMODE", "disable"),
		DBTimeZone:     getenv("DB_TIMEZONE", "UTC"),
		DBMaxIdleConns: getenvInt("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: getenvInt("DB_MAX_OPEN_CONNS", 100),
		DBConnLifetime: time.Duration(getenvInt("DB_CONN_MAX_LIFETIME_SECONDS", 3600)) * time.Second,
		DBAutoMigrate:  getenvBool("DB_AUTO_MIGRATE", true),

		MaxCombinations: getenvInt("MAX_COMBINATIONS", 1000),

		Redis: RedisConfig{
			Addr:     strings.TrimSpace(getenv("REDIS_ADDR", "")),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
			TTL:      time.Duration(getenvInt("CACHE_TTL_SECONDS", 300)) * time.Second,
		},
	}
}

// DSN returns DATABASE_URL when set, otherwise a key/value postgres DSN.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode, c.DBTimeZone,
	)
}

func getenv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getenvBool(key string, fallback bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}
