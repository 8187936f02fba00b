package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultAPIEndpoint is the public dictionary lookup endpoint; the headword is appended.
const DefaultAPIEndpoint = "https://api.dictionaryapi.dev/api/v2/entries/en/"

// Config holds application configuration.
type Config struct {
	// APIEndpoint is the dictionary lookup base URL. The escaped headword is appended to it.
	APIEndpoint string `json:"api_endpoint,omitempty"`

	// LookupTimeoutSeconds bounds a single dictionary request.
	// A lookup that exceeds it is treated like any other lookup failure.
	LookupTimeoutSeconds int `json:"lookup_timeout_seconds,omitempty"`

	// WordListPath points at a YAML file replacing the built-in candidate and fallback lists.
	// Empty means use the embedded defaults.
	WordListPath string `json:"word_list_path,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`

	// WebBind and WebPort control the address of `wordly serve`.
	WebBind string `json:"web_bind,omitempty"`
	WebPort int    `json:"web_port,omitempty"`

	// DBMaxOpenConns limits the maximum number of open database connections.
	// If set to 1, all database access is serialized (reduces "database is locked" errors).
	// 0 means use sql.DB default (unlimited).
	DBMaxOpenConns int `json:"db_max_open_conns,omitempty"`

	// DBMaxIdleConns limits the maximum number of idle database connections.
	// 0 means use sql.DB default. Typically set equal to DBMaxOpenConns.
	DBMaxIdleConns int `json:"db_max_idle_conns,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from registration.
	// Unknown tool names are logged as warnings.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		APIEndpoint:          DefaultAPIEndpoint,
		LookupTimeoutSeconds: 10,
		LogLevel:             "info",
		WebBind:              "127.0.0.1",
		WebPort:              8377,
	}
}

// LookupTimeout returns the lookup timeout as a duration.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.LookupTimeoutSeconds) * time.Second
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.wordly.
func Load(baseDir string) (*Config, error) {
	return loadFile(filepath.Join(baseDir, "config.json"))
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadFile loads configuration from a specific file path.
// Returns default config if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	cfg, err := loadFileRaw(configPath)
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.APIEndpoint = firstString(overlay.APIEndpoint, base.APIEndpoint)
	result.WordListPath = firstString(overlay.WordListPath, base.WordListPath)
	result.LogLevel = firstString(overlay.LogLevel, base.LogLevel)
	result.WebBind = firstString(overlay.WebBind, base.WebBind)

	result.LookupTimeoutSeconds = firstInt(overlay.LookupTimeoutSeconds, base.LookupTimeoutSeconds)
	result.WebPort = firstInt(overlay.WebPort, base.WebPort)
	result.DBMaxOpenConns = firstInt(overlay.DBMaxOpenConns, base.DBMaxOpenConns)
	result.DBMaxIdleConns = firstInt(overlay.DBMaxIdleConns, base.DBMaxIdleConns)

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// firstString returns overlay unless it is blank.
func firstString(overlay, base string) string {
	if strings.TrimSpace(overlay) != "" {
		return strings.TrimSpace(overlay)
	}
	return base
}

// firstInt returns overlay unless it is zero or negative.
func firstInt(overlay, base int) int {
	if overlay > 0 {
		return overlay
	}
	return base
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range append(append([]string{}, a...), b...) {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
