package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rgehrsitz/marriagecalc/internal/country"
	"github.com/rgehrsitz/marriagecalc/internal/simclient"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "MARRIAGECALC_"

// AppConfig holds process-wide settings for the CLI and the API server
type AppConfig struct {
	APIBase        string        `yaml:"api_base"`
	DefaultCountry string        `yaml:"default_country"`
	ListenAddr     string        `yaml:"listen_addr"`
	Debug          bool          `yaml:"debug"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	Timeout        time.Duration `yaml:"timeout"`
}

// DefaultAppConfig returns the settings used when nothing is configured
func DefaultAppConfig() AppConfig {
	return AppConfig{
		APIBase:        simclient.DefaultBaseURL,
		DefaultCountry: country.US.ID,
		ListenAddr:     ":8080",
		AllowedOrigins: []string{"*"},
		Timeout:        60 * time.Second,
	}
}

// LoadAppConfig builds the configuration in layers: defaults, then the YAML
// file at path (skipped when path is empty), then variables from envFile
// (skipped when missing; existing environment variables win), then
// MARRIAGECALC_* environment overrides.
func LoadAppConfig(path, envFile string) (AppConfig, error) {
	cfg := DefaultAppConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("failed to load %s: %w", envFile, err)
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	if v, ok := lookup("API_BASE"); ok {
		cfg.APIBase = v
	}
	if v, ok := lookup("DEFAULT_COUNTRY"); ok {
		cfg.DefaultCountry = v
	}
	if v, ok := lookup("LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := lookup("DEBUG"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", EnvPrefix, err)
		}
		cfg.Debug = b
	}
	if v, ok := lookup("ALLOWED_ORIGINS"); ok {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.AllowedOrigins = origins
	}
	if v, ok := lookup("TIMEOUT"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sTIMEOUT: %w", EnvPrefix, err)
		}
		cfg.Timeout = d
	}
	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(EnvPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// Validate checks the settings
func (c AppConfig) Validate() error {
	if c.APIBase == "" {
		return fmt.Errorf("api_base is required")
	}
	if !strings.HasPrefix(c.APIBase, "http://") && !strings.HasPrefix(c.APIBase, "https://") {
		return fmt.Errorf("api_base must be an http(s) URL, got %q", c.APIBase)
	}
	if _, ok := country.Lookup(c.DefaultCountry); !ok {
		return fmt.Errorf("unknown default_country %q", c.DefaultCountry)
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout cannot be negative")
	}
	return nil
}
