// Package config provides configuration loading and validation for the
// proxy control panel.
//
// Configuration is read from a YAML file; every field has a default, so
// the panel also runs with no file at all. Validate normalizes the
// loaded values and parses duration strings into their typed fields.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	defaultServiceURL     = "http://127.0.0.1:5000"
	defaultServiceTimeout = 10 * time.Second
)

// Load reads and validates the configuration at path. An empty path
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ResolveConfigPath picks the config file path: the -config flag wins,
// then $PROXYPANEL_CONFIG, then none.
func ResolveConfigPath(flagValue string) string {
	if v := strings.TrimSpace(flagValue); v != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv("PROXYPANEL_CONFIG"))
}

// Validate validates and normalizes the configuration.
func (cfg *Config) Validate() error {
	// Panel listener
	if cfg.Panel.Host == "" {
		cfg.Panel.Host = "0.0.0.0"
	}
	if cfg.Panel.Port == 0 {
		cfg.Panel.Port = 8090
	}
	if cfg.Panel.Port < 0 || cfg.Panel.Port > 65535 {
		return errors.New("panel.port must be 1..65535")
	}

	// Proxy-control service
	if cfg.Service.BaseURL == "" {
		cfg.Service.BaseURL = defaultServiceURL
	}
	cfg.Service.BaseURL = strings.TrimRight(cfg.Service.BaseURL, "/")
	u, err := url.Parse(cfg.Service.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("service.base_url is not a valid URL: %q", cfg.Service.BaseURL)
	}
	cfg.Service.Timeout, err = parseInterval(cfg.Service.TimeoutRaw, defaultServiceTimeout)
	if err != nil {
		return fmt.Errorf("service.timeout: %w", err)
	}

	// View cadences
	v := &cfg.Views
	for _, iv := range []struct {
		name string
		raw  string
		dst  *time.Duration
		def  time.Duration
	}{
		{"views.status_interval", v.StatusIntervalRaw, &v.StatusInterval, 3 * time.Second},
		{"views.logs_interval", v.LogsIntervalRaw, &v.LogsInterval, 2 * time.Second},
		{"views.cache_interval", v.CacheIntervalRaw, &v.CacheInterval, 3 * time.Second},
		{"views.filters_interval", v.FiltersIntervalRaw, &v.FiltersInterval, 5 * time.Second},
		{"views.visits_interval", v.VisitsIntervalRaw, &v.VisitsInterval, 3 * time.Second},
	} {
		*iv.dst, err = parseInterval(iv.raw, iv.def)
		if err != nil {
			return fmt.Errorf("%s: %w", iv.name, err)
		}
	}

	// Normalize logging
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	cfg.Logging.Level = strings.ToUpper(cfg.Logging.Level)
	if cfg.Logging.StructuredFormat == "" {
		cfg.Logging.StructuredFormat = "json"
	}
	if cfg.Logging.ExtraFields == nil {
		cfg.Logging.ExtraFields = map[string]string{}
	}

	return nil
}

// parseInterval parses a duration string, returning def for empty input
// and rejecting non-positive values.
func parseInterval(raw string, def time.Duration) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", raw)
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %q", raw)
	}
	return d, nil
}
