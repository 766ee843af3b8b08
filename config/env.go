package config

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment configuration
type Config struct {
	// Database
	DatabaseHost     string
	DatabasePort     string
	PostgresUser     string
	PostgresPassword string
	DatabaseName     string
	DatabaseSchema   string

	// Authentication
	JWTSecret string

	// HTTP
	HTTPAddr         string
	RankingsCacheTTL time.Duration

	// Competition dates and start times are interpreted in this location
	Timezone string

	// Messaging - optional, standings are not published when empty
	KafkaBroker string
}

var (
	appConfig *Config
	onceEnv   sync.Once
)

func loadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		DatabaseHost:     getEnvWithDefault("DATABASE_HOST", "localhost"),
		DatabasePort:     getEnvWithDefault("DATABASE_PORT", "5432"),
		PostgresUser:     getEnvWithDefault("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnvWithDefault("POSTGRES_PASSWORD", "postgres"),
		DatabaseName:     getEnvWithDefault("DATABASE_NAME", "postgres"),
		DatabaseSchema:   getEnvWithDefault("DATABASE_SCHEMA", "aftas"),

		JWTSecret: getEnvWithDefault("JWT_SECRET", "dummyjwt"),

		HTTPAddr:         getEnvWithDefault("HTTP_ADDR", ":8000"),
		RankingsCacheTTL: time.Duration(getEnvAsInt("RANKINGS_CACHE_SECONDS", 10)) * time.Second,

		Timezone: getEnvWithDefault("TIMEZONE", "Local"),

		KafkaBroker: os.Getenv("KAFKA_BROKER"),
	}
	if IsProduction() {
		config.JWTSecret = getEnv("JWT_SECRET")
	}
	return config
}

func Env() *Config {
	onceEnv.Do(func() {
		appConfig = loadConfig()
	})
	return appConfig
}

// Location resolves the configured timezone, falling back to time.Local.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func getEnv(key string) string {
	value := os.Getenv(key)
	if value == "" && IsProduction() {
		panic(fmt.Sprintf("Required environment variable %s is not set", key))
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	var value int
	_, err := fmt.Sscanf(valueStr, "%d", &value)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// IsProduction returns true if running in production
func IsProduction() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "production"
}

// IsInMemory returns true when the server should run without a database
func IsInMemory() bool {
	return getEnvWithDefault("ENVIRONMENT", "development") == "memory"
}
