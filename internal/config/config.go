package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/vincentbai/watss-forms/internal/export"
	"github.com/vincentbai/watss-forms/internal/submissions"
)

type Variant string

const (
	VariantLocal Variant = "local"
	VariantRelay Variant = "relay"
)

type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageRedis  StorageBackend = "redis"
	StorageMemory StorageBackend = "memory"
)

type Config struct {
	Address string  `env:"ADDRESS" envDefault:"127.0.0.1:8000" yaml:"address"`
	Variant Variant `env:"VARIANT" envDefault:"local" yaml:"variant"`

	// Storage
	Storage       StorageBackend            `env:"STORAGE" envDefault:"sqlite" yaml:"storage"`
	DataDir       string                    `env:"DATA_DIR" yaml:"data_dir"`
	RedisURL      string                    `env:"REDIS_URL" yaml:"redis_url"`
	SlotKey       string                    `env:"SLOT_KEY" envDefault:"formSubmissions" yaml:"slot_key"`
	CorruptPolicy submissions.CorruptPolicy `env:"CORRUPT_POLICY" envDefault:"reset" yaml:"corrupt_policy"`

	// Site
	StaticDir   string   `env:"STATIC_DIR" yaml:"static_dir"`
	EventLabels []string `env:"EVENT_LABELS" envSeparator:"," yaml:"event_labels"`

	// Relay variant
	RelayURL   string `env:"RELAY_URL" yaml:"relay_url"`
	PageOrigin string `env:"PAGE_ORIGIN" yaml:"page_origin"`

	// Export formatting
	CSVFilename string `env:"CSV_FILENAME" envDefault:"form_submissions.csv" yaml:"csv_filename"`
	DateLayout  string `env:"DATE_LAYOUT" envDefault:"1/2/2006" yaml:"date_layout"`
	TimeLayout  string `env:"TIME_LAYOUT" envDefault:"3:04:05 PM" yaml:"time_layout"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info" yaml:"log_level"`
}

const envPrefix = "WATSS_"

// Load resolves configuration in priority order: defaults -> YAML file -> environment.
// A .env file in the working directory is loaded first; it never overrides real env vars.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := &Config{}
	// envDefault tags against an empty environment yield the built-in defaults
	if err := env.Parse(cfg, env.Options{Environment: map[string]string{}}); err != nil {
		return nil, fmt.Errorf("failed to apply defaults: %w", err)
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	if err := parseEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if cfg.DataDir == "" {
		dir, err := ApplicationDirectory()
		if err != nil {
			return nil, err
		}
		cfg.DataDir = dir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// parseEnvOverrides applies only the WATSS_ variables that are actually set.
func parseEnvOverrides(cfg *Config) error {
	overrides := map[string]string{}
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, envPrefix) {
			name, value, _ := strings.Cut(kv, "=")
			overrides[strings.TrimPrefix(name, envPrefix)] = value
		}
	}
	if len(overrides) == 0 {
		return nil
	}
	// envDefault must not clobber values that came from the file
	current := *cfg
	if err := env.Parse(cfg, env.Options{Environment: overrides}); err != nil {
		return fmt.Errorf("failed to parse config: %w", err)
	}
	restoreUnset(cfg, &current, overrides)
	return nil
}

func restoreUnset(cfg, previous *Config, set map[string]string) {
	keep := func(name string) bool {
		_, ok := set[name]
		return !ok
	}
	if keep("ADDRESS") {
		cfg.Address = previous.Address
	}
	if keep("VARIANT") {
		cfg.Variant = previous.Variant
	}
	if keep("STORAGE") {
		cfg.Storage = previous.Storage
	}
	if keep("SLOT_KEY") {
		cfg.SlotKey = previous.SlotKey
	}
	if keep("CORRUPT_POLICY") {
		cfg.CorruptPolicy = previous.CorruptPolicy
	}
	if keep("CSV_FILENAME") {
		cfg.CSVFilename = previous.CSVFilename
	}
	if keep("DATE_LAYOUT") {
		cfg.DateLayout = previous.DateLayout
	}
	if keep("TIME_LAYOUT") {
		cfg.TimeLayout = previous.TimeLayout
	}
	if keep("LOG_LEVEL") {
		cfg.LogLevel = previous.LogLevel
	}
}

func (c *Config) Validate() error {
	switch c.Variant {
	case VariantLocal:
	case VariantRelay:
		if strings.TrimSpace(c.RelayURL) == "" {
			return fmt.Errorf("variant %q requires WATSS_RELAY_URL", c.Variant)
		}
	default:
		return fmt.Errorf("unknown variant %q (want local or relay)", c.Variant)
	}
	switch c.Storage {
	case StorageSQLite, StorageMemory:
	case StorageRedis:
		if strings.TrimSpace(c.RedisURL) == "" {
			return fmt.Errorf("storage %q requires WATSS_REDIS_URL", c.Storage)
		}
	default:
		return fmt.Errorf("unknown storage %q (want sqlite, redis or memory)", c.Storage)
	}
	switch c.CorruptPolicy {
	case submissions.PolicyReset, submissions.PolicyStrict:
	default:
		return fmt.Errorf("unknown corrupt policy %q (want reset or strict)", c.CorruptPolicy)
	}
	if c.SlotKey == "" {
		return fmt.Errorf("slot key cannot be empty")
	}
	if c.CSVFilename != export.SanitizeFilename(c.CSVFilename) {
		return fmt.Errorf("csv filename %q must be a bare file name", c.CSVFilename)
	}
	return nil
}
