package config

import (
	"os"
	"runtime"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNewConfigWithDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, 100, cfg.PartitionSteps)
	assert.InDelta(t, 0.02, cfg.BeachSlope, 1e-9)
}

func TestWithLogLevel(t *testing.T) {
	cfg := New(WithLogLevel("debug"))

	assert.Equal(t, zerolog.DebugLevel, cfg.LogLevel)
}

func TestWithLogLevelInvalid(t *testing.T) {
	cfg := New(WithLogLevel("not-a-level"))

	assert.Equal(t, zerolog.InfoLevel, cfg.LogLevel)
}

func TestWithWorkersIgnoresNonPositive(t *testing.T) {
	cfg := New(WithWorkers(0))

	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
}

func TestWithBeach(t *testing.T) {
	cfg := New(WithBeach(145.0, 0.03))

	assert.InDelta(t, 145.0, cfg.BeachAngle, 1e-9)
	assert.InDelta(t, 0.03, cfg.BeachSlope, 1e-9)
}

func TestLoadFromEnv(t *testing.T) {
	os.Setenv("ENV", "development")
	os.Setenv("LOG_LEVEL", "warn")
	os.Setenv("FORECAST_WORKERS", "3")
	os.Setenv("PARTITION_STEPS", "150")
	os.Setenv("BEACH_ANGLE", "145")
	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("FORECAST_WORKERS")
		os.Unsetenv("PARTITION_STEPS")
		os.Unsetenv("BEACH_ANGLE")
	}()

	cfg := LoadFromEnv()

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, zerolog.WarnLevel, cfg.LogLevel)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 150, cfg.PartitionSteps)
	assert.InDelta(t, 145.0, cfg.BeachAngle, 1e-9)
}

func TestLoadFromEnvInvalidValues(t *testing.T) {
	os.Setenv("FORECAST_WORKERS", "lots")
	os.Setenv("BEACH_SLOPE", "steep")
	defer func() {
		os.Unsetenv("FORECAST_WORKERS")
		os.Unsetenv("BEACH_SLOPE")
	}()

	cfg := LoadFromEnv()

	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.InDelta(t, 0.02, cfg.BeachSlope, 1e-9)
}
