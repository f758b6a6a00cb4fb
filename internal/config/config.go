package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Script ScriptConfig
	Redis  RedisConfig
}

// ScriptConfig holds script runtime and descriptor configuration
type ScriptConfig struct {
	// ManifestPath is the YAML file listing creature event descriptors
	ManifestPath string

	// MaxEnvs is the number of reentrant execution slots
	MaxEnvs int

	// WarSystem adds the war id argument to kill events
	WarSystem bool
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	// URL enables the Redis definition store when set
	URL      string
	Addr     string
	Password string
	DB       int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Script: ScriptConfig{
			ManifestPath: getEnvOrDefault("SCRIPT_MANIFEST", "data/creaturescripts/creaturescripts.yml"),
			MaxEnvs:      getEnvAsIntOrDefault("SCRIPT_MAX_ENVS", 21),
			WarSystem:    getEnvAsBoolOrDefault("SCRIPT_WAR_SYSTEM", false),
		},
		Redis: RedisConfig{
			URL:      os.Getenv("REDIS_URL"),
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
	}

	if cfg.Script.MaxEnvs < 1 {
		return nil, fmt.Errorf("SCRIPT_MAX_ENVS must be at least 1, got %d", cfg.Script.MaxEnvs)
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

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
