package gallery

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/state"
)

var (
	itemA = catalog.Item{ID: 1, Image: "a.png"}
	itemB = catalog.Item{ID: 2, Image: "b.png"}
	itemC = catalog.Item{ID: 3, Image: "c.png"}
)

func quietLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func newTestManager(t *testing.T, items ...catalog.Item) (*Manager, *state.Mock) {
	t.Helper()
	store := state.NewMock()
	m := New(store, WithLogger(quietLogger()))
	for _, it := range items {
		require.NoError(t, m.Add(it))
	}
	return m, store
}

func ids(items []catalog.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestNew_EmptyStore(t *testing.T) {
	m, store := newTestManager(t)

	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
	if len(m.Disabled()) != 0 {
		t.Errorf("Disabled() = %v, want empty", m.Disabled())
	}
	if store.SetCalls() != 0 {
		t.Errorf("construction wrote to store %d times", store.SetCalls())
	}
}

func TestAdd_AppendsAndPersists(t *testing.T) {
	m, store := newTestManager(t, itemA)

	raw, ok := store.Value(DefaultKey)
	if !ok {
		t.Fatal("selection not persisted")
	}
	if raw != `[{"id":1,"image":"a.png"}]` {
		t.Errorf("persisted = %s", raw)
	}
	if !m.IsDisabled(1) {
		t.Error("IsDisabled(1) = false after Add")
	}
}

func TestAdd_DuplicateRejected(t *testing.T) {
	m, store := newTestManager(t, itemA)
	writes := store.SetCalls()

	err := m.Add(catalog.Item{ID: 1, Image: "other.png"})
	if !errors.Is(err, ErrAlreadyAdded) {
		t.Fatalf("Add() error = %v, want ErrAlreadyAdded", err)
	}
	if got := m.Selected(); len(got) != 1 || got[0] != itemA {
		t.Errorf("Selected() = %v, want [A]", got)
	}
	if store.SetCalls() != writes {
		t.Error("rejected Add should not persist")
	}
}

func TestRemove(t *testing.T) {
	tests := []struct {
		name       string
		remove     catalog.Item
		wantIDs    []int
		wantWrites int
	}{
		{"middle", itemB, []int{1, 3}, 1},
		{"first", itemA, []int{2, 3}, 1},
		{"absent", catalog.Item{ID: 9}, []int{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, store := newTestManager(t, itemA, itemB, itemC)
			before := store.SetCalls()

			m.Remove(tt.remove)

			require.Equal(t, tt.wantIDs, ids(m.Selected()))
			require.Equal(t, tt.wantWrites, store.SetCalls()-before)
		})
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		wantIDs  []int
	}{
		{"first to last", 0, 2, []int{2, 3, 1}},
		{"last to first", 2, 0, []int{3, 1, 2}},
		{"adjacent down", 0, 1, []int{2, 1, 3}},
		{"adjacent up", 2, 1, []int{1, 3, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestManager(t, itemA, itemB, itemC)

			require.NoError(t, m.Reorder(tt.from, tt.to))
			require.Equal(t, tt.wantIDs, ids(m.Selected()))
		})
	}
}

func TestReorder_SameIndexIsNoop(t *testing.T) {
	m, store := newTestManager(t, itemA, itemB)
	before := store.SetCalls()

	if err := m.Reorder(0, 0); err != nil {
		t.Fatalf("Reorder(0, 0) error = %v", err)
	}
	if store.SetCalls() != before {
		t.Error("Reorder(0, 0) should not persist")
	}
	require.Equal(t, []int{1, 2}, ids(m.Selected()))
}

func TestReorder_OutOfRange(t *testing.T) {
	var logs bytes.Buffer
	store := state.NewMock()
	m := New(store, WithLogger(slog.New(slog.NewTextHandler(&logs, nil))))
	require.NoError(t, m.Add(itemA))
	require.NoError(t, m.Add(itemB))
	before := store.SetCalls()

	cases := [][2]int{{0, 5}, {-1, 0}, {2, 0}, {0, -3}}
	for _, c := range cases {
		err := m.Reorder(c[0], c[1])
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Reorder(%d, %d) error = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
		var idxErr *IndexError
		if !errors.As(err, &idxErr) || idxErr.Len != 2 {
			t.Errorf("Reorder(%d, %d) error should be *IndexError with Len 2, got %v", c[0], c[1], err)
		}
	}

	require.Equal(t, []int{1, 2}, ids(m.Selected()))
	require.Equal(t, before, store.SetCalls())
	if !strings.Contains(logs.String(), "invalid reorder") {
		t.Errorf("expected warning in logs, got %q", logs.String())
	}
}

func TestReorder_InverseRestoresOrder(t *testing.T) {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			m, _ := newTestManager(t, itemA, itemB, itemC, catalog.Item{ID: 4, Image: "d.png"})
			original := ids(m.Selected())

			require.NoError(t, m.Reorder(i, j))
			require.NoError(t, m.Reorder(j, i))
			require.Equal(t, original, ids(m.Selected()), "Reorder(%d,%d) then Reorder(%d,%d)", i, j, j, i)
		}
	}
}

func TestDisabledMatchesSelection(t *testing.T) {
	m, _ := newTestManager(t)

	steps := []struct {
		add  bool
		item catalog.Item
	}{
		{true, itemA}, {true, itemB}, {false, itemA}, {true, itemC},
		{true, itemA}, {false, itemB}, {false, itemB}, {true, itemB},
	}
	for i, s := range steps {
		if s.add {
			_ = m.Add(s.item)
		} else {
			m.Remove(s.item)
		}

		want := make(map[int]struct{})
		for _, id := range ids(m.Selected()) {
			want[id] = struct{}{}
		}
		require.Equal(t, want, m.Disabled(), "step %d", i)
	}
}

func TestRoundTrip(t *testing.T) {
	store := state.NewMock()
	first := New(store, WithLogger(quietLogger()))
	require.NoError(t, first.Add(itemA))
	require.NoError(t, first.Add(itemB))

	second := New(store, WithLogger(quietLogger()))
	require.Equal(t, []catalog.Item{itemA, itemB}, second.Selected())
}

func TestAddAddRemoveScenario(t *testing.T) {
	store := state.NewMock()
	m := New(store, WithLogger(quietLogger()))

	require.NoError(t, m.Add(itemA))
	require.NoError(t, m.Add(itemB))
	m.Remove(itemA)

	require.Equal(t, []catalog.Item{itemB}, m.Selected())
	require.False(t, m.IsDisabled(1))
	require.True(t, m.IsDisabled(2))

	raw, _ := store.Value(DefaultKey)
	require.JSONEq(t, `[{"id":2,"image":"b.png"}]`, raw)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		stored  string
		wantIDs []int
	}{
		{"valid", `[{"id":1,"image":"a.png"},{"id":2,"image":"b.png"}]`, []int{1, 2}},
		{"malformed", `{not json`, []int{}},
		{"wrong shape", `{"id":1}`, []int{}},
		{"null", `null`, []int{}},
		{"duplicates dropped", `[{"id":1,"image":"a.png"},{"id":1,"image":"x.png"},{"id":2,"image":"b.png"}]`, []int{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := state.NewMock()
			store.Put(DefaultKey, tt.stored)

			m := New(store, WithLogger(quietLogger()))
			require.Equal(t, tt.wantIDs, ids(m.Selected()))
		})
	}
}

func TestLoad_ReadErrorYieldsEmpty(t *testing.T) {
	store := state.NewMock()
	store.Put(DefaultKey, `[{"id":1,"image":"a.png"}]`)
	store.SetGetError(errors.New("disk on fire"))

	m := New(store, WithLogger(quietLogger()))
	if m.Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Len())
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	store := state.NewMock()
	m := New(store, WithLogger(quietLogger()))
	writeErr := errors.New("quota exceeded")
	store.SetSetError(writeErr)

	require.NoError(t, m.Add(itemA))
	require.Equal(t, []int{1}, ids(m.Selected()))
	require.ErrorIs(t, m.LastPersistError(), writeErr)

	store.SetSetError(nil)
	require.NoError(t, m.Add(itemB))
	require.NoError(t, m.LastPersistError())
}

func TestWithKey(t *testing.T) {
	store := state.NewMock()
	m := New(store, WithKey("profile.work"), WithLogger(quietLogger()))
	require.NoError(t, m.Add(itemA))

	if _, ok := store.Value(DefaultKey); ok {
		t.Error("default key should be untouched")
	}
	if _, ok := store.Value("profile.work"); !ok {
		t.Error("custom key not written")
	}
}

func TestClear(t *testing.T) {
	m, store := newTestManager(t, itemA, itemB)

	m.Clear()
	require.Equal(t, 0, m.Len())
	raw, _ := store.Value(DefaultKey)
	require.Equal(t, "[]", raw)

	before := store.SetCalls()
	m.Clear()
	require.Equal(t, before, store.SetCalls(), "clearing an empty selection should not persist")
}

func TestIndex(t *testing.T) {
	m, _ := newTestManager(t, itemA, itemB)

	if got := m.Index(2); got != 1 {
		t.Errorf("Index(2) = %d, want 1", got)
	}
	if got := m.Index(7); got != -1 {
		t.Errorf("Index(7) = %d, want -1", got)
	}
}

func TestIsDisabled_MatchesSelection(t *testing.T) {
	m, _ := newTestManager(t, itemA, itemC)

	for _, id := range []int{1, 2, 3, 9} {
		_, inSet := m.Disabled()[id]
		require.Equal(t, inSet, m.IsDisabled(id), "id %d", id)
		require.Equal(t, m.Contains(id), m.IsDisabled(id), "id %d", id)
	}
}

func TestSelectedIsCopy(t *testing.T) {
	m, _ := newTestManager(t, itemA)
	sel := m.Selected()
	sel[0].ID = 99

	if !m.Contains(1) {
		t.Error("modifying Selected() result should not affect the manager")
	}
}
