// ABOUTME: Shared wiring and helpers for CLI commands
// ABOUTME: Builds the config/logger/storage/knowledge-base stack each command needs
package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/harper/sidekick/internal/config"
	"github.com/harper/sidekick/internal/engine"
	"github.com/harper/sidekick/internal/facts"
	"github.com/harper/sidekick/internal/kb"
	"github.com/harper/sidekick/internal/models"
	"github.com/harper/sidekick/internal/storage"
	"github.com/harper/sidekick/internal/suggest"
)

// core bundles the wired-up assistant components for one command run.
type core struct {
	cfg       *config.Config
	logger    *zap.Logger
	store     *storage.Store
	kb        *kb.KnowledgeBase
	engine    *engine.Engine
	suggester *suggest.Suggester
	collector *facts.Collector
}

// openCore loads config and wires storage, knowledge base, engine, and
// suggester. Callers must Close when done.
func openCore() (*core, error) {
	// Load .env if present for local overrides
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if rulesPath != "" {
		cfg.RulesPath = rulesPath
	}
	if dbPath != "" {
		cfg.DBPath = dbPath
	}

	logger, err := newLogger()
	if err != nil {
		return nil, fmt.Errorf("initializing logger: %w", err)
	}

	store, err := storage.Open(cfg.DBPath, logger)
	if err != nil {
		return nil, fmt.Errorf("opening interaction log: %w", err)
	}

	knowledge, err := kb.Load(cfg.RulesPath, logger)
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("loading knowledge base: %w", err)
	}

	return &core{
		cfg:       cfg,
		logger:    logger,
		store:     store,
		kb:        knowledge,
		engine:    engine.New(knowledge, logger),
		suggester: suggest.NewSuggester(store, knowledge, cfg.SuggestOptions(), logger),
		collector: facts.NewCollector(logger, facts.ClockProvider{}),
	}, nil
}

func (c *core) Close() {
	_ = c.store.Close()
	_ = c.logger.Sync()
}

// newLogger builds a console logger honoring the --verbose/--quiet flags.
func newLogger() (*zap.Logger, error) {
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	if quiet {
		level = zapcore.ErrorLevel
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}

// parseFactFlags parses repeated key=value flags into a fact set.
// Values are coerced: true/false become bools, numeric strings become
// numbers, everything else stays a string.
func parseFactFlags(pairs []string) (models.Facts, error) {
	out := make(models.Facts, len(pairs))
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid fact %q, expected key=value", pair)
		}
		out[key] = coerceValue(value)
	}
	return out, nil
}

func coerceValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return string(runes[:maxLen-3]) + "..."
}
