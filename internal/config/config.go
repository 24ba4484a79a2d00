// ABOUTME: Environment backed configuration for jes4go binaries
// ABOUTME: Reads an optional .env file with godotenv and applies defaults
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jes4go/jes4go/pkg/audio"
	"github.com/joho/godotenv"
)

// Environment variables understood by the binaries
const (
	EnvMediaPath  = "JES4GO_MEDIA_PATH"
	EnvLogFile    = "JES4GO_LOG_FILE"
	EnvSampleRate = "JES4GO_SAMPLE_RATE"
)

const (
	// DefaultEnvFile is read from the working directory when present
	DefaultEnvFile = ".env"

	// DefaultLogFile receives log output when nothing else is configured
	DefaultLogFile = "jes4go.log"
)

// Config holds settings shared by the binaries
type Config struct {
	// MediaPath is the directory relative media names resolve against
	MediaPath string
	// LogFile is where log output is written
	LogFile string
	// SampleRate is the rate of newly created sounds
	SampleRate int
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogFile:    DefaultLogFile,
		SampleRate: audio.DefaultSampleRate,
	}
}

// Load reads envFile into the process environment, then builds the config.
// A missing envFile is not an error. Variables already set take precedence.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}
	return FromEnv()
}

// FromEnv builds the config from environment variables over the defaults
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvMediaPath); v != "" {
		cfg.MediaPath = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv(EnvSampleRate); v != "" {
		rate, err := strconv.Atoi(v)
		if err != nil || rate <= 0 {
			return Config{}, fmt.Errorf("invalid %s: %q", EnvSampleRate, v)
		}
		cfg.SampleRate = rate
	}

	return cfg, nil
}

// SaveMediaPath records dir as the media path in envFile, keeping its other entries
func SaveMediaPath(envFile, dir string) error {
	envs, err := godotenv.Read(envFile)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		envs = map[string]string{}
	}

	envs[EnvMediaPath] = dir
	if err := godotenv.Write(envs, envFile); err != nil {
		return fmt.Errorf("failed to write %s: %w", envFile, err)
	}
	return nil
}
