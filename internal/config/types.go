package config

import "time"

// PanelConfig contains the panel's own HTTP listener settings.
type PanelConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// ServiceConfig points the panel at the proxy-control API.
type ServiceConfig struct {
	BaseURL string `yaml:"base_url"`

	// TimeoutRaw is the request timeout as a duration string (e.g. "10s").
	TimeoutRaw string        `yaml:"timeout"`
	Timeout    time.Duration `yaml:"-"`
}

// ViewsConfig carries the per-view refresh cadences and the initial
// state of the logs/cache live toggles. Cadences are duration strings;
// the parsed values are filled in by Validate.
type ViewsConfig struct {
	StatusIntervalRaw  string `yaml:"status_interval"`
	LogsIntervalRaw    string `yaml:"logs_interval"`
	CacheIntervalRaw   string `yaml:"cache_interval"`
	FiltersIntervalRaw string `yaml:"filters_interval"`
	VisitsIntervalRaw  string `yaml:"visits_interval"`

	LogsLive  bool `yaml:"logs_live"`
	CacheLive bool `yaml:"cache_live"`

	StatusInterval  time.Duration `yaml:"-"`
	LogsInterval    time.Duration `yaml:"-"`
	CacheInterval   time.Duration `yaml:"-"`
	FiltersInterval time.Duration `yaml:"-"`
	VisitsInterval  time.Duration `yaml:"-"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level            string            `yaml:"level"`
	Structured       bool              `yaml:"structured"`
	StructuredFormat string            `yaml:"structured_format"`
	IncludePID       bool              `yaml:"include_pid"`
	ExtraFields      map[string]string `yaml:"extra_fields,omitempty"`
}

// Config is the root configuration structure.
type Config struct {
	Panel   PanelConfig   `yaml:"panel"`
	Service ServiceConfig `yaml:"service"`
	Views   ViewsConfig   `yaml:"views"`
	Logging LoggingConfig `yaml:"logging"`
}
