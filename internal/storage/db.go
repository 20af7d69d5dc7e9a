// ABOUTME: SQLite database connection and lifecycle for the interaction log
// ABOUTME: Uses modernc.org/sqlite for pure-Go SQLite support
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS interactions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	timestamp TEXT NOT NULL,
	action_type TEXT NOT NULL,
	facts TEXT
);

CREATE INDEX IF NOT EXISTS idx_interactions_timestamp ON interactions(timestamp);
`

// Store is the append-only interaction log. It exposes exactly the two
// operations the core needs: append one record, read the most recent N.
type Store struct {
	db     *sql.DB
	path   string
	logger *zap.Logger
}

// DefaultDataDir returns the default data directory following the XDG
// spec. XDG_DATA_HOME overrides (useful for tests).
func DefaultDataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		dataHome = xdg.DataHome
	}
	return filepath.Join(dataHome, "sidekick")
}

// DefaultDBPath returns the default interaction log database path.
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "interactions.db")
}

// Open opens or creates the interaction log database at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return initStore(db, path, logger)
}

// OpenInMemory creates an in-memory interaction log (for testing).
func OpenInMemory(logger *zap.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}
	return initStore(db, ":memory:", logger)
}

func initStore(db *sql.DB, path string, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}
	return &Store{db: db, path: path, logger: logger}, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
