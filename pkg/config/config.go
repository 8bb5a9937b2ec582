package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	API    APIConfig
	Input  InputConfig
	State  StateConfig
	Report ReportConfig
}

type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type InputConfig struct {
	MaxFileSize int64
}

type StateConfig struct {
	// Dir holds the session token and the last analysis snapshot.
	Dir string
}

type ReportConfig struct {
	OutputFile string
}

// Load reads configuration from the environment, optionally seeded
// from a .env file in the working directory.
func Load() *Config {
	// Missing .env is fine; the defaults below cover everything.
	_ = godotenv.Load()

	return &Config{
		API: APIConfig{
			BaseURL: getEnv("SKILLLENS_API_URL", "http://127.0.0.1:8000"),
			Timeout: getEnvAsDuration("SKILLLENS_API_TIMEOUT", "30s"),
		},
		Input: InputConfig{
			MaxFileSize: getEnvAsInt64("SKILLLENS_MAX_FILE_SIZE", 5*1024*1024),
		},
		State: StateConfig{
			Dir: getEnv("SKILLLENS_STATE_DIR", defaultStateDir()),
		},
		Report: ReportConfig{
			OutputFile: getEnv("SKILLLENS_REPORT_FILE", "SkillLens_AI_Report.pdf"),
		},
	}
}

func defaultStateDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".config", "skilllens")
	}
	return ".skilllens"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
