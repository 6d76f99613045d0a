package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Environment    string
	LogLevel       zerolog.Level
	Workers        int
	PartitionSteps int
	BeachAngle     float64
	BeachSlope     float64
}

type Option func(*Config)

// WithEnvironment allows setting the environment
func WithEnvironment(env string) Option {
	return func(c *Config) {
		c.Environment = env
	}
}

// WithLogLevel allows setting the log level
func WithLogLevel(level string) Option {
	return func(c *Config) {
		parsedLevel, err := zerolog.ParseLevel(level)
		if err != nil {
			parsedLevel = zerolog.InfoLevel
		}
		c.LogLevel = parsedLevel
	}
}

// WithWorkers allows setting the batch driver pool size
func WithWorkers(workers int) Option {
	return func(c *Config) {
		if workers > 0 {
			c.Workers = workers
		}
	}
}

// WithPartitionSteps allows setting the watershed quantization depth
func WithPartitionSteps(steps int) Option {
	return func(c *Config) {
		if steps > 1 {
			c.PartitionSteps = steps
		}
	}
}

// WithBeach allows setting the shore normal angle and bottom slope
func WithBeach(angle, slope float64) Option {
	return func(c *Config) {
		c.BeachAngle = angle
		c.BeachSlope = slope
	}
}

// New creates a new configuration with default values
func New(opts ...Option) *Config {
	cfg := &Config{
		Environment:    "production",
		LogLevel:       zerolog.InfoLevel,
		Workers:        runtime.NumCPU(),
		PartitionSteps: 100,
		BeachAngle:     0.0,
		BeachSlope:     0.02,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// InitializeLogging sets up logging based on the configuration
func (c *Config) InitializeLogging() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(c.LogLevel)

	// Setup console logger for development environments
	if c.Environment == "local" || c.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
	}
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() *Config {
	return New(
		WithEnvironment(getEnvOrDefault("ENV", "production")),
		WithLogLevel(getEnvOrDefault("LOG_LEVEL", "info")),
		WithWorkers(getEnvIntOrDefault("FORECAST_WORKERS", runtime.NumCPU())),
		WithPartitionSteps(getEnvIntOrDefault("PARTITION_STEPS", 100)),
		WithBeach(
			getEnvFloatOrDefault("BEACH_ANGLE", 0.0),
			getEnvFloatOrDefault("BEACH_SLOPE", 0.02),
		),
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Msg("Invalid integer value in environment variable, using default")
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
		log.Warn().Str("key", key).Msg("Invalid float value in environment variable, using default")
	}
	return defaultValue
}
