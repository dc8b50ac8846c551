package state

import "errors"

// ErrMockClosed is returned by a Mock after Close.
var ErrMockClosed = errors.New("state closed")

// Mock is an in-memory test double for Manager.
type Mock struct {
	values   map[string]string
	getErr   error
	setErr   error
	closed   bool
	setCalls int
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{values: make(map[string]string)}
}

func (m *Mock) Get(key string) (string, bool, error) {
	if m.closed {
		return "", false, ErrMockClosed
	}
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *Mock) Set(key, value string) error {
	if m.closed {
		return ErrMockClosed
	}
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.values[key] = value
	return nil
}

func (m *Mock) Delete(key string) error {
	if m.closed {
		return ErrMockClosed
	}
	delete(m.values, key)
	return nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

// Put stores a raw value without counting it as a write.
func (m *Mock) Put(key, value string) { m.values[key] = value }

// Value returns the raw stored value.
func (m *Mock) Value(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Mock) SetGetError(err error) { m.getErr = err }

func (m *Mock) SetSetError(err error) { m.setErr = err }

// SetCalls returns how many times Set was called.
func (m *Mock) SetCalls() int { return m.setCalls }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
