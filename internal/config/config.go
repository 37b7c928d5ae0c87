package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis  RedisConfig
	Engine EngineConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr selects the
// in-memory repositories instead.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// EngineConfig holds spellcasting engine configuration
type EngineConfig struct {
	// SpellsFile is the path to the YAML spell catalog
	SpellsFile string

	// TickSeconds converts game-loop ticks to seconds
	TickSeconds float64

	// TurnIntervalTicks is the fallback combat turn interval when a session's
	// next-turn tick is stale
	TurnIntervalTicks int64

	// BaseRegenRate is the magic points regained per tick while standing
	BaseRegenRate float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Engine: EngineConfig{
			SpellsFile:        getEnvOrDefault("SPELLS_FILE", "data/spells.yaml"),
			TickSeconds:       getEnvAsFloatOrDefault("TICK_SECONDS", 0.1),
			TurnIntervalTicks: int64(getEnvAsIntOrDefault("TURN_INTERVAL_TICKS", 60)),
			BaseRegenRate:     getEnvAsFloatOrDefault("BASE_REGEN_RATE", 0.5),
		},
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
