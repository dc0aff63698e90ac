package config

import (
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"time"
)

const (
	defaultSearchRounds  = 1000
	defaultSearchSeconds = 5
)

// ServerConfig holds all analysis server configuration loaded from
// environment variables.
type ServerConfig struct {
	ServerHost        string
	ServerPort        string
	RedisURL          string
	PostgresURL       string
	BasicAuthUsername string
	BasicAuthPassword string
	Token             string
	Prefork           bool
}

// LoadServerConfig loads configuration from environment variables.
func LoadServerConfig() *ServerConfig {
	return &ServerConfig{
		ServerHost:        getEnvMust("FLIPDISC_SERVER_HOST"),
		ServerPort:        getEnvMust("FLIPDISC_SERVER_PORT"),
		RedisURL:          getEnvMust("FLIPDISC_REDIS_URL"),
		PostgresURL:       getEnvMust("FLIPDISC_POSTGRES_URL"),
		BasicAuthUsername: getEnvMust("FLIPDISC_SERVER_BASIC_AUTH_USER"),
		BasicAuthPassword: getEnvMust("FLIPDISC_SERVER_BASIC_AUTH_PASS"),
		Token:             getEnvMust("FLIPDISC_SERVER_TOKEN"),
		Prefork:           getEnvMustBool("FLIPDISC_SERVER_PREFORK"),
	}
}

// GameConfig holds the search budget for the terminal game. These are
// tunables with defaults rather than required settings, since the game should
// start without any environment setup.
type GameConfig struct {
	SearchRounds  int
	SearchBudget  time.Duration
	SearchWorkers int
}

// LoadGameConfig loads the game configuration from environment variables,
// falling back to defaults.
func LoadGameConfig() *GameConfig {
	return &GameConfig{
		SearchRounds:  getEnvDefaultInt("FLIPDISC_SEARCH_ROUNDS", defaultSearchRounds),
		SearchBudget:  time.Duration(getEnvDefaultInt("FLIPDISC_SEARCH_SECONDS", defaultSearchSeconds)) * time.Second,
		SearchWorkers: getEnvDefaultInt("FLIPDISC_SEARCH_WORKERS", runtime.NumCPU()),
	}
}

// SelfplayConfig holds the configuration for the selfplay client.
type SelfplayConfig struct {
	ServerURL string
	Token     string
}

func LoadSelfplayConfig() *SelfplayConfig {
	return &SelfplayConfig{
		ServerURL: getEnvMust("FLIPDISC_SERVER_URL"),
		Token:     getEnvMust("FLIPDISC_SERVER_TOKEN"),
	}
}

// getEnvMust either returns the environment variable or logs a fatal error if it is not set.
func getEnvMust(key string) string {
	value := os.Getenv(key)
	if value == "" {
		slog.Error("Environment variable is not set", "key", key)
		os.Exit(1)
	}
	return value
}

func getEnvMustBool(key string) bool {
	value := getEnvMust(key)

	if value != "true" && value != "false" {
		slog.Error("Cannot load environment variable, it must be \"true\" or \"false\"", "key", key, "value", value)
		os.Exit(1)
	}

	return value == "true"
}

// getEnvDefaultInt returns the environment variable parsed as an integer, or
// the fallback when it is unset.
func getEnvDefaultInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		slog.Error("Cannot load environment variable, it must be an integer", "key", key, "value", value)
		os.Exit(1)
	}
	return parsed
}
