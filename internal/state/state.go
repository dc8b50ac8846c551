package state

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "montage"
	dbFileName = "montage.db"
)

// Manager is a sqlite-backed key-value store.
type Manager struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens the store at path, creating it if needed.
// An empty path uses the XDG data directory.
func Open(path string) (*Manager, error) {
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	m, err := newManager(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return m, nil
}

func newManager(db *sql.DB) (*Manager, error) {
	if err := initSchema(db); err != nil {
		return nil, fmt.Errorf("init state schema: %w", err)
	}
	return &Manager{db: db, now: time.Now}, nil
}

// DefaultPath returns the XDG location of the state database.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Get returns the value stored under key. The bool is false when key is absent.
func (m *Manager) Get(key string) (string, bool, error) {
	var value string
	err := m.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key and stamps its update time.
func (m *Manager) Set(key, value string) error {
	_, err := m.db.Exec(`
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, m.now().Unix())
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error.
func (m *Manager) Delete(key string) error {
	if _, err := m.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// UpdatedAt returns when key was last written.
func (m *Manager) UpdatedAt(key string) (time.Time, bool, error) {
	var ts int64
	err := m.db.QueryRow(`SELECT updated_at FROM kv WHERE key = ?`, key).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("get %q timestamp: %w", key, err)
	}
	return time.Unix(ts, 0), true, nil
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}
