// Package gallery manages the ordered image selection and its persistence.
package gallery

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/state"
)

// DefaultKey is the storage key holding the persisted selection.
const DefaultKey = "gallery.selected"

var (
	// ErrAlreadyAdded is returned by Add when the item is already selected.
	ErrAlreadyAdded = errors.New("this image is already added")
	// ErrIndexOutOfRange is wrapped by IndexError.
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports a reorder with an invalid index.
type IndexError struct {
	From, To int
	Len      int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("reorder %d -> %d: %v (len %d)", e.From, e.To, ErrIndexOutOfRange, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

// Manager owns the selected list. The disabled set is always derived from it.
// It is not safe for concurrent use; all calls happen on the UI goroutine.
type Manager struct {
	store   state.Interface
	key     string
	logger  *slog.Logger
	items   []catalog.Item
	lastErr error
}

// Option configures a Manager.
type Option func(*Manager)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(m *Manager) { m.key = key }
}

// WithLogger sets the logger used for persistence and reorder warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New creates a manager and loads the persisted selection from store.
func New(store state.Interface, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		key:    DefaultKey,
		logger: slog.Default(),
		items:  make([]catalog.Item, 0),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.load()
	return m
}

// Selected returns a copy of the selection in order.
func (m *Manager) Selected() []catalog.Item {
	result := make([]catalog.Item, len(m.items))
	copy(result, m.items)
	return result
}

// Disabled returns the set of selected IDs.
func (m *Manager) Disabled() map[int]struct{} {
	set := make(map[int]struct{}, len(m.items))
	for _, it := range m.items {
		set[it.ID] = struct{}{}
	}
	return set
}

// IsDisabled reports whether the catalog item id can no longer be added.
func (m *Manager) IsDisabled(id int) bool {
	return m.Contains(id)
}

// Contains reports whether id is in the selection.
func (m *Manager) Contains(id int) bool {
	return m.Index(id) >= 0
}

// Index returns the position of id in the selection, or -1.
func (m *Manager) Index(id int) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Len returns the number of selected items.
func (m *Manager) Len() int {
	return len(m.items)
}

// Add appends item to the selection.
func (m *Manager) Add(item catalog.Item) error {
	if m.Contains(item.ID) {
		return ErrAlreadyAdded
	}
	m.items = append(m.items, item)
	m.persist()
	return nil
}

// Remove drops any entry with item's ID. Absent IDs are ignored.
func (m *Manager) Remove(item catalog.Item) {
	kept := m.items[:0]
	for _, it := range m.items {
		if it.ID != item.ID {
			kept = append(kept, it)
		}
	}
	if len(kept) == len(m.items) {
		return
	}
	// Clear the tail so the backing array does not pin removed entries.
	for i := len(kept); i < len(m.items); i++ {
		m.items[i] = catalog.Item{}
	}
	m.items = kept
	m.persist()
}

// Reorder moves the item at from to position to, shifting the rest.
func (m *Manager) Reorder(from, to int) error {
	n := len(m.items)
	if from < 0 || from >= n || to < 0 || to >= n {
		err := &IndexError{From: from, To: to, Len: n}
		m.logger.Warn("invalid reorder", "from", from, "to", to, "len", n)
		return err
	}
	if from == to {
		return nil
	}

	item := m.items[from]
	// Remove from old position
	m.items = append(m.items[:from], m.items[from+1:]...)
	// Insert at new position
	m.items = append(m.items[:to], append([]catalog.Item{item}, m.items[to:]...)...)
	m.persist()
	return nil
}

// Clear removes every selected item.
func (m *Manager) Clear() {
	if len(m.items) == 0 {
		return
	}
	m.items = m.items[:0]
	m.persist()
}

// LastPersistError returns the error from the most recent write, or nil.
func (m *Manager) LastPersistError() error {
	return m.lastErr
}

func (m *Manager) persist() {
	data, err := json.Marshal(m.items)
	if err != nil {
		m.lastErr = fmt.Errorf("encode selection: %w", err)
		m.logger.Error("persist selection", "error", m.lastErr)
		return
	}
	if err := m.store.Set(m.key, string(data)); err != nil {
		m.lastErr = err
		m.logger.Error("persist selection", "key", m.key, "error", err)
		return
	}
	m.lastErr = nil
}

func (m *Manager) load() {
	raw, ok, err := m.store.Get(m.key)
	if err != nil {
		m.logger.Warn("read persisted selection", "key", m.key, "error", err)
		return
	}
	if !ok {
		return
	}

	var stored []catalog.Item
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		m.logger.Warn("discarding malformed selection", "key", m.key, "error", err)
		return
	}

	seen := make(map[int]bool, len(stored))
	for _, it := range stored {
		if seen[it.ID] {
			m.logger.Warn("dropping duplicate stored item", "id", it.ID)
			continue
		}
		seen[it.ID] = true
		m.items = append(m.items, it)
	}
}
