package config

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "defaults",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "narrow resolution window",
			mutate:  func(c *Config) { c.Filtering.MaxResolution = "1080p"; c.Filtering.MinResolution = "720p" },
			wantErr: false,
		},
		{
			name:    "invalid max resolution",
			mutate:  func(c *Config) { c.Filtering.MaxResolution = "8K" },
			wantErr: true,
		},
		{
			name:    "invalid min resolution",
			mutate:  func(c *Config) { c.Filtering.MinResolution = "480i" },
			wantErr: true,
		},
		{
			name:    "inverted resolution window",
			mutate:  func(c *Config) { c.Filtering.MaxResolution = "720p"; c.Filtering.MinResolution = "4K" },
			wantErr: true,
		},
		{
			name:    "negative workers",
			mutate:  func(c *Config) { c.Filtering.Workers = -1 },
			wantErr: true,
		},
		{
			name:    "missing report directory",
			mutate:  func(c *Config) { c.Reports.Dir = "/nonexistent/sourcesift/reports" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestDecodeConfig(t *testing.T) {
	raw := `
[filtering]
max_resolution = "1080p"
min_resolution = "720p"
workers = 8

[reports]
dir = ""
`
	var cfg Config
	if _, err := toml.Decode(raw, &cfg); err != nil {
		t.Fatalf("toml.Decode() error = %v", err)
	}

	if cfg.Filtering.MaxResolution != "1080p" {
		t.Errorf("MaxResolution = %q, want 1080p", cfg.Filtering.MaxResolution)
	}
	if cfg.Filtering.MinResolution != "720p" {
		t.Errorf("MinResolution = %q, want 720p", cfg.Filtering.MinResolution)
	}
	if cfg.Filtering.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Filtering.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
}

func TestConfigPath(t *testing.T) {
	path, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if !strings.HasSuffix(path, "sourcesift/config.toml") {
		t.Errorf("ConfigPath() = %q, want suffix sourcesift/config.toml", path)
	}
}
