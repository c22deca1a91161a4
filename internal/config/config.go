// Package config handles configuration loading for newsboard.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. NEWSBOARD_LOOKUP_MODE.
const EnvPrefix = "NEWSBOARD"

// DefaultSourceOrder is the lookup priority used when none is configured.
var DefaultSourceOrder = []string{"finnhub", "yfinance", "sec", "googlenews", "websearch"}

// Config represents the complete application configuration.
type Config struct {
	Sources   SourcesConfig   `mapstructure:"sources"   yaml:"sources"`
	Lookup    LookupConfig    `mapstructure:"lookup"    yaml:"lookup"`
	Companies CompaniesConfig `mapstructure:"companies" yaml:"companies"`
	Render    RenderConfig    `mapstructure:"render"    yaml:"render"`
	API       APIConfig       `mapstructure:"api"       yaml:"api"`
	Logging   LoggingConfig   `mapstructure:"logging"   yaml:"logging"`
}

// SourcesConfig holds the source priority list and per-source settings.
type SourcesConfig struct {
	Order      []string         `mapstructure:"order"      yaml:"order"`
	Finnhub    FinnhubConfig    `mapstructure:"finnhub"    yaml:"finnhub"`
	YFinance   EndpointConfig   `mapstructure:"yfinance"   yaml:"yfinance"`
	SEC        SECConfig        `mapstructure:"sec"        yaml:"sec"`
	GoogleNews GoogleNewsConfig `mapstructure:"googlenews" yaml:"googlenews"`
	WebSearch  EndpointConfig   `mapstructure:"websearch"  yaml:"websearch"`
}

// FinnhubConfig holds Finnhub API settings.
type FinnhubConfig struct {
	APIKey  string `mapstructure:"api_key"  yaml:"api_key"`
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// EndpointConfig holds the base URL of a keyless source.
type EndpointConfig struct {
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// SECConfig holds SEC EDGAR settings.
type SECConfig struct {
	BaseURL   string `mapstructure:"base_url"   yaml:"base_url"`   // www.sec.gov
	DataURL   string `mapstructure:"data_url"   yaml:"data_url"`   // data.sec.gov
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"` // SEC asks for a contact
}

// GoogleNewsConfig holds Google News RSS settings.
type GoogleNewsConfig struct {
	BaseURL  string `mapstructure:"base_url" yaml:"base_url"`
	Language string `mapstructure:"language" yaml:"language"` // hl, e.g. "en-US"
	Region   string `mapstructure:"region"   yaml:"region"`   // gl, e.g. "US"
}

// LookupConfig controls how the dashboard queries its sources.
type LookupConfig struct {
	Mode        string `mapstructure:"mode"         yaml:"mode"`     // "sequential" or "race"
	PauseMS     int    `mapstructure:"pause_ms"     yaml:"pause_ms"` // pause between companies
	Concurrency int    `mapstructure:"concurrency"  yaml:"concurrency"`
	TimeoutSec  int    `mapstructure:"timeout_sec"  yaml:"timeout_sec"` // whole dashboard load
	Fallback    string `mapstructure:"fallback"     yaml:"fallback"`    // "ir", "search", "ir_or_search", "none"
	DateLayout  string `mapstructure:"date_layout"  yaml:"date_layout"`
	WindowDays  int    `mapstructure:"window_days"  yaml:"window_days"`
}

// CompaniesConfig points at an alternative company list.
type CompaniesConfig struct {
	File string `mapstructure:"file" yaml:"file"`
	URL  string `mapstructure:"url"  yaml:"url"`
}

// RenderConfig holds output settings.
type RenderConfig struct {
	Language string `mapstructure:"language" yaml:"language"` // "en" or "de"
	Title    string `mapstructure:"title"    yaml:"title"`
	Output   string `mapstructure:"output"   yaml:"output"`
}

// APIConfig holds HTTP API server settings.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. $XDG_CONFIG_HOME/newsboard/config.yaml
//  3. ~/.newsboard/config.yaml (home directory)
//  4. /etc/newsboard/config.yaml (system)
//
// Environment variables override config file values.
// Format: NEWSBOARD_<SECTION>_<KEY>, e.g., NEWSBOARD_SOURCES_FINNHUB_API_KEY
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(xdg.ConfigHome, "newsboard"))
	v.AddConfigPath(filepath.Join(homeDir(), ".newsboard"))
	v.AddConfigPath("/etc/newsboard")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

// DefaultPath is where `newsboard` suggests writing a user config file.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "newsboard", "config.yaml")
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Sources
	v.SetDefault("sources.order", DefaultSourceOrder)
	v.SetDefault("sources.finnhub.base_url", "https://finnhub.io/api/v1")
	v.SetDefault("sources.yfinance.base_url", "https://query2.finance.yahoo.com")
	v.SetDefault("sources.sec.base_url", "https://www.sec.gov")
	v.SetDefault("sources.sec.data_url", "https://data.sec.gov")
	v.SetDefault("sources.sec.user_agent", "newsboard/1.0 (github.com/seenimoa/newsboard)")
	v.SetDefault("sources.googlenews.base_url", "https://news.google.com")
	v.SetDefault("sources.googlenews.language", "en-US")
	v.SetDefault("sources.googlenews.region", "US")
	v.SetDefault("sources.websearch.base_url", "https://html.duckduckgo.com")

	// Lookup
	v.SetDefault("lookup.mode", "sequential")
	v.SetDefault("lookup.pause_ms", 100)
	v.SetDefault("lookup.concurrency", 1)
	v.SetDefault("lookup.timeout_sec", 60)
	v.SetDefault("lookup.fallback", "ir_or_search")
	v.SetDefault("lookup.date_layout", "2.1.2006")
	v.SetDefault("lookup.window_days", 7)

	// Render
	v.SetDefault("render.language", "en")
	v.SetDefault("render.title", "Investor News Dashboard")
	v.SetDefault("render.output", "dashboard.html")

	// API defaults
	v.SetDefault("api.host", "0.0.0.0")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"http://localhost:3000"})

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv explicitly reads sensitive keys from environment variables.
func overrideFromEnv(cfg *Config) {
	if key := os.Getenv(EnvFinnhubKey); key != "" {
		cfg.Sources.Finnhub.APIKey = key
	}
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.Lookup.Mode {
	case "sequential", "race":
	default:
		return fmt.Errorf("lookup.mode: unknown mode %q (want sequential or race)", c.Lookup.Mode)
	}
	switch c.Lookup.Fallback {
	case "ir", "search", "ir_or_search", "none":
	default:
		return fmt.Errorf("lookup.fallback: unknown mode %q", c.Lookup.Fallback)
	}
	switch c.Render.Language {
	case "en", "de":
	default:
		return fmt.Errorf("render.language: unsupported language %q (want en or de)", c.Render.Language)
	}
	if c.Lookup.Concurrency < 1 {
		c.Lookup.Concurrency = 1
	}
	if c.Lookup.PauseMS < 0 {
		return fmt.Errorf("lookup.pause_ms must not be negative")
	}
	if c.Companies.File != "" && c.Companies.URL != "" {
		return fmt.Errorf("companies: set either file or url, not both")
	}
	return nil
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
