// ABOUTME: Centralized configuration for the sidekick assistant core
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/harper/sidekick/internal/storage"
	"github.com/harper/sidekick/internal/suggest"
)

// Config holds all configuration for the assistant core.
type Config struct {
	// Storage settings
	DataDir   string
	DBPath    string
	RulesPath string

	// Suggestion settings
	LogWindow        int
	SuggestThreshold int
	ContainsPhrases  []string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataDir := getEnv("SIDEKICK_DATA_DIR", storage.DefaultDataDir())

	cfg := &Config{
		DataDir:          dataDir,
		DBPath:           getEnv("SIDEKICK_DB", filepath.Join(dataDir, "interactions.db")),
		RulesPath:        getEnv("SIDEKICK_RULES", filepath.Join(dataDir, "rules.yaml")),
		LogWindow:        getEnvInt("SIDEKICK_LOG_WINDOW", suggest.DefaultWindow),
		SuggestThreshold: getEnvInt("SIDEKICK_SUGGEST_THRESHOLD", suggest.DefaultThreshold),
		ContainsPhrases:  getEnvList("SIDEKICK_CONTAINS_PHRASES", suggest.DefaultContainsPhrases()),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.LogWindow <= 0 {
		return fmt.Errorf("SIDEKICK_LOG_WINDOW must be positive, got %d", c.LogWindow)
	}
	if c.SuggestThreshold < 1 {
		return fmt.Errorf("SIDEKICK_SUGGEST_THRESHOLD must be at least 1, got %d", c.SuggestThreshold)
	}
	return nil
}

// SuggestOptions maps the config onto suggester options.
func (c *Config) SuggestOptions() suggest.Options {
	return suggest.Options{
		Window:          c.LogWindow,
		Threshold:       c.SuggestThreshold,
		ContainsPhrases: c.ContainsPhrases,
	}
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvList(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
