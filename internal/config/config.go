package config

import (
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

const (
	defaultTBAHost        = "https://www.thebluealliance.com/api/v3"
	defaultStatboticsHost = "https://api.statbotics.io"
	defaultOutputDir      = "output"
	defaultPort           = "7130"
	defaultWorkers        = 5
)

// Load reads configuration from environment variables and .env file.
// It fails fast on a missing required credential, before any network activity.
func Load() Config {
	err := godotenv.Load()
	if err != nil {
		log.Info("No .env file found, reading from environment variables")
	}

	// A helper function to get a required env var. It will fail if the env var is not set.
	getEnv := func(key string) string {
		if value, ok := os.LookupEnv(key); ok {
			return value
		}
		log.Fatalf("Error: Required environment variable %s is not set.", key)
		return "" // This line is never reached
	}
	getEnvDefault := func(key, fallback string) string {
		if value, ok := os.LookupEnv(key); ok && value != "" {
			return value
		}
		return fallback
	}

	workers := defaultWorkers
	if raw, ok := os.LookupEnv("FETCH_WORKERS"); ok {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			log.Warn("Invalid FETCH_WORKERS value, using default", "value", raw, "default", defaultWorkers)
		} else {
			workers = parsed
		}
	}

	cfg := Config{
		Port:      getEnvDefault("PORT", defaultPort),
		OutputDir: getEnvDefault("OUTPUT_DIR", defaultOutputDir),
		Workers:   workers,
		TBA: TBAConfig{
			Host:   getEnvDefault("TBA_API_HOST", defaultTBAHost),
			APIKey: getEnv("TBA_API_KEY"),
		},
		Statbotics: StatboticsConfig{
			Host: getEnvDefault("STATBOTICS_API_HOST", defaultStatboticsHost),
		},
	}
	return cfg
}
