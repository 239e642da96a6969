package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string
	DatabaseURL string
	CORSOrigins string
	TablePrefix string
	// Database pool sizing
	DBMaxConns int32
	DBMinConns int32
	// Ansarada GraphQL proxy
	AnsaradaGraphQLURL      string
	AnsaradaTimeout         time.Duration
	AnsaradaDefaultPageSize int
	// Logging
	LogDir      string // Empty = stdout only
	LogMaxFiles int
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: env,
		DatabaseURL: getEnv("DATABASE_URL", ""),
		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:3000"),
		TablePrefix: getTablePrefix(env),

		DBMaxConns: int32(getEnvInt("DB_MAX_CONNS", 25)),
		DBMinConns: int32(getEnvInt("DB_MIN_CONNS", 5)),

		AnsaradaGraphQLURL:      getEnv("ANSARADA_GRAPHQL_URL", "https://api.dev1.ansarada.com/v1/graphql"),
		AnsaradaTimeout:         getEnvDuration("ANSARADA_TIMEOUT", 30*time.Second),
		AnsaradaDefaultPageSize: getEnvInt("ANSARADA_DEFAULT_PAGE_SIZE", 10),

		LogDir:      getEnv("LOG_DIR", ""),
		LogMaxFiles: getEnvInt("LOG_MAX_FILES", 10),
	}
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Manual override; set TABLE_PREFIX to a single space-free value
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
