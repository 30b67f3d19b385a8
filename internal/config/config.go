package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/pavver/flexbuf/internal/linebuf"
	logpkg "github.com/pavver/flexbuf/pkg/log"
)

// Config is the top-level configuration loaded from file/env.
type Config struct {
	// Capacity is the buffer arena size in cells.
	Capacity int `json:"capacity" yaml:"capacity"`
	// MaxRecords is the marker ring size.
	MaxRecords int `json:"maxRecords" yaml:"maxRecords"`
	// ThreadSafe selects a real mutex; false selects the no-op locker for
	// single-threaded use.
	ThreadSafe bool `json:"threadSafe" yaml:"threadSafe"`
	// HTTPAddr is the diagnostic HTTP listen address.
	HTTPAddr string `json:"httpAddr" yaml:"httpAddr"`
	// Log configures the process logger.
	Log logpkg.Config `json:"log" yaml:"log"`
}

// Default returns built-in defaults.
func Default() Config {
	return Config{
		Capacity:   4096,
		MaxRecords: 128,
		ThreadSafe: true,
		HTTPAddr:   ":8080",
		Log: logpkg.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from a JSON or YAML file (by extension). If path
// is empty, returns defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	cfg := Default()
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	default:
		if err := json.Unmarshal(b, &cfg); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// Validate checks the configuration against the buffer's construction
// constraints.
func (c Config) Validate() error {
	if c.Capacity <= 0 || c.Capacity > linebuf.MaxCapacity {
		return fmt.Errorf("capacity must be in 1..%d, got %d", linebuf.MaxCapacity, c.Capacity)
	}
	if c.MaxRecords <= 0 {
		return fmt.Errorf("maxRecords must be > 0, got %d", c.MaxRecords)
	}
	return nil
}
