package keymap

import (
	"slices"
	"testing"
)

func TestResolver_Resolve(t *testing.T) {
	bindings := []Binding{
		{ActionQuit, []string{"q", "ctrl+c"}, "Quit", ContextGlobal},
		{ActionMoveUp, []string{"k", "up"}, "Move up", ContextCatalog},
		{ActionMoveDown, []string{"j", "down"}, "Move down", ContextCatalog},
	}

	r := NewResolver(bindings)

	tests := []struct {
		key  string
		want Action
	}{
		{"q", ActionQuit},
		{"ctrl+c", ActionQuit},
		{"k", ActionMoveUp},
		{"down", ActionMoveDown},
		{"x", ""},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			if got := r.Resolve(tt.key); got != tt.want {
				t.Errorf("Resolve(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestResolver_FirstBindingWins(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionAdd, []string{"a"}, "Add", ContextCatalog},
		{ActionDelete, []string{"a", "d"}, "Delete", ContextGallery},
	})

	if got := r.Resolve("a"); got != ActionAdd {
		t.Errorf("Resolve(a) = %q, want %q", got, ActionAdd)
	}
	if got := r.Resolve("d"); got != ActionDelete {
		t.Errorf("Resolve(d) = %q, want %q", got, ActionDelete)
	}
}

func TestResolver_KeysFor(t *testing.T) {
	r := NewResolver([]Binding{
		{ActionDelete, []string{"d", "delete"}, "Remove", ContextCatalog},
		{ActionDelete, []string{"d"}, "Remove tile", ContextGallery},
	})

	got := r.KeysFor(ActionDelete)
	want := []string{"d", "delete"}
	if !slices.Equal(got, want) {
		t.Errorf("KeysFor(delete) = %v, want %v", got, want)
	}
	if keys := r.KeysFor(ActionHelp); keys != nil {
		t.Errorf("KeysFor(unbound) = %v, want nil", keys)
	}
}

func TestNewContextResolver(t *testing.T) {
	gallery := NewContextResolver(ContextGlobal, ContextGallery)
	catalog := NewContextResolver(ContextGlobal, ContextCatalog)

	if got := gallery.Resolve("J"); got != ActionMoveItemDown {
		t.Errorf("gallery Resolve(J) = %q, want %q", got, ActionMoveItemDown)
	}
	if got := catalog.Resolve("J"); got != "" {
		t.Errorf("catalog Resolve(J) = %q, want unbound", got)
	}
	if got := catalog.Resolve("enter"); got != ActionAdd {
		t.Errorf("catalog Resolve(enter) = %q, want %q", got, ActionAdd)
	}
	for _, r := range []*Resolver{gallery, catalog} {
		if got := r.Resolve("q"); got != ActionQuit {
			t.Errorf("Resolve(q) = %q, want %q", got, ActionQuit)
		}
	}
}

func TestDedupe(t *testing.T) {
	got := dedupe([]string{"a", "b", "a", "c", "b"})
	want := []string{"a", "b", "c"}
	if !slices.Equal(got, want) {
		t.Errorf("dedupe = %v, want %v", got, want)
	}
}
