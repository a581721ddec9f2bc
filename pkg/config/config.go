package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/fluxorio/flowbench/pkg/logging"
)

// Config holds everything a benchmark run needs. The zero value is not
// usable; start from Default.
type Config struct {
	// ScaleFactor multiplies every workload's task count. Must be >= 1;
	// Normalize clamps invalid values.
	ScaleFactor int `yaml:"scale_factor"`

	// Endpoint is the URL the fan-out HTTP workload hits. The mock server
	// serves it locally.
	Endpoint string `yaml:"endpoint"`

	// TempDir is the parent directory for the file I/O workload's per-run
	// temp dir. Empty means the OS default.
	TempDir string `yaml:"temp_dir"`

	// Seed is the base seed for the per-workload random sources.
	Seed int64 `yaml:"seed"`

	// MetricsAddr, when set, exposes Prometheus metrics on that address for
	// the duration of the run.
	MetricsAddr string `yaml:"metrics_addr"`
}

// Default returns the baseline configuration matching the benchmark's fixed
// collaborator contract.
func Default() Config {
	return Config{
		ScaleFactor: 1,
		Endpoint:    "http://127.0.0.1:8000/fast",
		Seed:        42,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides fields from FLOWBENCH_* environment variables.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FLOWBENCH_SCALE_FACTOR"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.ScaleFactor = n
		}
	}
	if v := os.Getenv("FLOWBENCH_ENDPOINT"); v != "" {
		c.Endpoint = v
	}
	if v := os.Getenv("FLOWBENCH_TEMP_DIR"); v != "" {
		c.TempDir = v
	}
	if v := os.Getenv("FLOWBENCH_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
	if v := os.Getenv("FLOWBENCH_METRICS_ADDR"); v != "" {
		c.MetricsAddr = v
	}
}

// Normalize clamps invalid values to safe defaults, logging a warning. A bad
// scale factor is a configuration error, not a fatal one: the run continues
// at scale 1 so task-count arithmetic never sees zero or negative inputs.
func (c *Config) Normalize(logger logging.Logger) {
	if c.ScaleFactor < 1 {
		logger.Warnf("invalid scale factor %d, using default 1", c.ScaleFactor)
		c.ScaleFactor = 1
	}
	if c.Endpoint == "" {
		logger.Warn("empty endpoint, using default")
		c.Endpoint = Default().Endpoint
	}
}
