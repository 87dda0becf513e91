package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all sourcesift configuration
type Config struct {
	Filtering FilteringConfig `toml:"filtering"`
	Reports   ReportConfig    `toml:"reports"`
}

// FilteringConfig holds the resolution window and worker count applied
// when filtering source lists
type FilteringConfig struct {
	MaxResolution string `toml:"max_resolution"` // 4K, 1080p, 720p, SD
	MinResolution string `toml:"min_resolution"` // 4K, 1080p, 720p, SD
	Workers       int    `toml:"workers"`        // 0 = number of CPUs
}

// ReportConfig holds report output settings
type ReportConfig struct {
	Dir string `toml:"dir"` // empty = default data directory
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Filtering: FilteringConfig{
			MaxResolution: "4K",
			MinResolution: "SD",
			Workers:       0,
		},
		Reports: ReportConfig{
			Dir: "",
		},
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	sourcesiftDir := filepath.Join(configDir, "sourcesift")
	configFile := filepath.Join(sourcesiftDir, "config.toml")

	return configFile, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	configDir := filepath.Dir(configFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return nil
}

// Load reads the config file, creating it with defaults if it doesn't exist
func Load() (*Config, error) {
	configFile, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	// Create config directory if needed
	if err := EnsureConfigDir(); err != nil {
		return nil, err
	}

	// If config doesn't exist, create it with defaults
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := Save(cfg); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	// Load existing config
	var cfg Config
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to disk
func Save(cfg *Config) error {
	configFile, err := ConfigPath()
	if err != nil {
		return err
	}

	// Ensure config directory exists
	if err := EnsureConfigDir(); err != nil {
		return err
	}

	// Open file for writing
	f, err := os.Create(configFile)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	// Encode config as TOML
	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// resolutionRank returns the position of a resolution name from highest
// (0 = 4K) to lowest, or -1 for an unknown name
func resolutionRank(res string) int {
	for i, name := range []string{"4K", "1080p", "720p", "SD"} {
		if res == name {
			return i
		}
	}
	return -1
}

// Validate checks if the config is valid
func (c *Config) Validate() error {
	maxRank := resolutionRank(c.Filtering.MaxResolution)
	minRank := resolutionRank(c.Filtering.MinResolution)

	if maxRank < 0 {
		return fmt.Errorf("invalid max resolution: %s (must be 4K, 1080p, 720p, or SD)", c.Filtering.MaxResolution)
	}
	if minRank < 0 {
		return fmt.Errorf("invalid min resolution: %s (must be 4K, 1080p, 720p, or SD)", c.Filtering.MinResolution)
	}
	if minRank < maxRank {
		return fmt.Errorf("min resolution %s exceeds max resolution %s", c.Filtering.MinResolution, c.Filtering.MaxResolution)
	}

	if c.Filtering.Workers < 0 {
		return fmt.Errorf("invalid worker count: %d (must be 0 or greater)", c.Filtering.Workers)
	}

	if c.Reports.Dir != "" {
		info, err := os.Stat(c.Reports.Dir)
		if err != nil {
			return fmt.Errorf("report directory %s: %w", c.Reports.Dir, err)
		}
		if !info.IsDir() {
			return fmt.Errorf("report directory %s is not a directory", c.Reports.Dir)
		}
	}

	return nil
}
