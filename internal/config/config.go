// Package config loads enrichio settings from a YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Resolver names accepted by the resolver setting
const (
	ResolverNone   = "none"
	ResolverGemini = "gemini"
	ResolverClaude = "claude"
)

// Config holds every tunable of the enrichment console
type Config struct {
	DBPath string `yaml:"db_path"`

	// Company directory
	APIURL        string        `yaml:"api_url"`
	Timeout       time.Duration `yaml:"timeout"`
	RateInterval  time.Duration `yaml:"rate_interval"`
	UploadWorkers int           `yaml:"upload_workers"`

	// Web search fallback for names the directory misses
	WebSearch    bool   `yaml:"web_search"`
	WebSearchURL string `yaml:"web_search_url"`

	// AI fallback
	Resolver       string        `yaml:"resolver"`
	GeminiModel    string        `yaml:"gemini_model"`
	GeminiAPIKey   string        `yaml:"gemini_api_key"`
	GeminiInterval time.Duration `yaml:"gemini_interval"`
	ClaudeModel    string        `yaml:"claude_model"`

	// Extra lines dropped from pasted batches
	Denylist []string `yaml:"denylist"`

	LogLevel string `yaml:"log_level"`
	LogFile  string `yaml:"log_file"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		DBPath:         DBPath(),
		APIURL:         "https://recherche-entreprises.api.gouv.fr",
		Timeout:        10 * time.Second,
		RateInterval:   time.Second,
		UploadWorkers:  1,
		WebSearch:      true,
		WebSearchURL:   "https://api.duckduckgo.com",
		Resolver:       ResolverNone,
		GeminiModel:    "gemini-2.0-flash",
		GeminiInterval: 4 * time.Second,
		ClaudeModel:    "haiku",
		LogLevel:       "info",
	}
}

// Load reads the YAML file at path (defaults when it does not exist) and
// applies environment overrides.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating parent directories
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Validate rejects settings the adapters cannot work with
func (c *Config) Validate() error {
	switch c.Resolver {
	case ResolverNone, ResolverGemini, ResolverClaude:
	default:
		return fmt.Errorf("unknown resolver %q (want %s, %s or %s)", c.Resolver, ResolverNone, ResolverGemini, ResolverClaude)
	}
	if c.UploadWorkers < 1 {
		return fmt.Errorf("upload_workers must be at least 1, got %d", c.UploadWorkers)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", c.Timeout)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if path := os.Getenv("ENRICHIO_DB"); path != "" {
		c.DBPath = path
	}
	if url := os.Getenv("ENRICHIO_API_URL"); url != "" {
		c.APIURL = url
	}
	if web := os.Getenv("ENRICHIO_WEB_SEARCH"); web != "" {
		c.WebSearch = web != "0" && !strings.EqualFold(web, "false")
	}
	if resolver := os.Getenv("ENRICHIO_RESOLVER"); resolver != "" {
		c.Resolver = strings.ToLower(resolver)
	}
	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		c.GeminiAPIKey = key
	}
	if level := os.Getenv("ENRICHIO_LOG_LEVEL"); level != "" {
		c.LogLevel = level
	}
}

// Path returns the config file path from ENRICHIO_CONFIG,
// falling back to $XDG_CONFIG_HOME/enrichio/config.yaml.
func Path() string {
	if env := os.Getenv("ENRICHIO_CONFIG"); env != "" {
		return env
	}
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "enrichio", "config.yaml")
}

// DBPath returns the database path from ENRICHIO_DB,
// falling back to $XDG_DATA_HOME/enrichio/enrichio.db.
func DBPath() string {
	if env := os.Getenv("ENRICHIO_DB"); env != "" {
		return env
	}
	return filepath.Join(xdgDir("XDG_DATA_HOME", filepath.Join(".local", "share")), "enrichio", "enrichio.db")
}

// LogPath returns the log file used by the terminal UI
func LogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state")), "enrichio", "enrichio.log")
}

func xdgDir(env, fallback string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fallback
	}
	return filepath.Join(home, fallback)
}
