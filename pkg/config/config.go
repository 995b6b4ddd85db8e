package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Enumerations offered by the asset form
	Categories []string `yaml:"categories"`
	Statuses   []string `yaml:"statuses"`

	// View defaults
	DefaultFilter string `yaml:"default_filter"`
	DefaultSort   string `yaml:"default_sort"`
	ReverseSort   bool   `yaml:"reverse_sort"`

	// UI Settings
	DisplayDateFormat string `yaml:"display_date_format"`
	ColorTheme        string `yaml:"color_theme"`
	TableWidth        int    `yaml:"table_width"`

	// How long the dashboard keeps a transient status message visible
	StatusMessageSecs int `yaml:"status_message_secs"`

	// Search Settings
	MaxSearchResults int `yaml:"max_search_results"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		Categories:        []string{"Laptop", "Desktop", "Monitor", "Phone", "Peripheral", "Other"},
		Statuses:          []string{"Available", "Assigned", "Faulty", "Retired"},
		DefaultFilter:     "all",
		DefaultSort:       "seq",
		ReverseSort:       false,
		DisplayDateFormat: "2006-01-02",
		ColorTheme:        "auto",
		TableWidth:        0,
		StatusMessageSecs: 3,
		MaxSearchResults:  50,
	}
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if len(cfg.Categories) == 0 {
		cfg.Categories = DefaultConfig().Categories
	}
	if len(cfg.Statuses) == 0 {
		cfg.Statuses = DefaultConfig().Statuses
	}
	if cfg.DefaultSort == "" {
		cfg.DefaultSort = "seq"
	}
	if cfg.DisplayDateFormat == "" {
		cfg.DisplayDateFormat = "2006-01-02"
	}
	if cfg.StatusMessageSecs <= 0 {
		cfg.StatusMessageSecs = 3
	}
	if cfg.MaxSearchResults <= 0 {
		cfg.MaxSearchResults = 50
	}

	// Validate DefaultFilter
	if !isValidFilter(cfg.DefaultFilter) {
		cfg.DefaultFilter = "all"
	}

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasStatus reports whether the given status is one of the configured set.
func (c *Config) HasStatus(status string) bool {
	for _, s := range c.Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// HasCategory reports whether the given category is one of the configured set.
func (c *Config) HasCategory(category string) bool {
	for _, cat := range c.Categories {
		if cat == category {
			return true
		}
	}
	return false
}

// isValidFilter checks if the default filter is valid
func isValidFilter(filter string) bool {
	validFilters := []string{"", "all", "assigned", "faulty", "active-users", "activeUsers"}
	for _, valid := range validFilters {
		if filter == valid {
			return true
		}
	}
	return false
}
