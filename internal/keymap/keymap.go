// Package keymap defines key bindings for the application.
package keymap

// Binding contexts.
const (
	ContextGlobal  = "global"
	ContextCatalog = "catalog"
	ContextGallery = "gallery"
)

// Binding describes a single key binding.
type Binding struct {
	Action      Action
	Keys        []string
	Description string
	Context     string // ContextGlobal, ContextCatalog or ContextGallery
}

// All contains all key bindings for help generation and resolution.
var All = []Binding{
	// Global
	{ActionQuit, []string{"q", "ctrl+c"}, "Quit application", ContextGlobal},
	{ActionSwitchFocus, []string{"tab"}, "Switch focus", ContextGlobal},
	{ActionClearSelection, []string{"C"}, "Clear selection", ContextGlobal},
	{ActionHelp, []string{"?"}, "Show help", ContextGlobal},

	// Catalog
	{ActionMoveUp, []string{"k", "up"}, "Move up", ContextCatalog},
	{ActionMoveDown, []string{"j", "down"}, "Move down", ContextCatalog},
	{ActionTop, []string{"g", "home"}, "First image", ContextCatalog},
	{ActionBottom, []string{"G", "end"}, "Last image", ContextCatalog},
	{ActionAdd, []string{"a", "enter"}, "Add to selection", ContextCatalog},
	{ActionDelete, []string{"d", "delete"}, "Remove from selection", ContextCatalog},
	{ActionFilter, []string{"/"}, "Filter by name", ContextCatalog},

	// Gallery
	{ActionMoveUp, []string{"k", "up"}, "Previous tile", ContextGallery},
	{ActionMoveDown, []string{"j", "down"}, "Next tile", ContextGallery},
	{ActionTop, []string{"g", "home"}, "First tile", ContextGallery},
	{ActionBottom, []string{"G", "end"}, "Last tile", ContextGallery},
	{ActionMoveItemUp, []string{"K", "shift+up"}, "Move tile up", ContextGallery},
	{ActionMoveItemDown, []string{"J", "shift+down"}, "Move tile down", ContextGallery},
	{ActionDelete, []string{"d", "delete"}, "Remove tile", ContextGallery},
}

// ByContext returns key bindings filtered by context.
func ByContext(context string) []Binding {
	var result []Binding
	for _, kb := range All {
		if kb.Context == context {
			result = append(result, kb)
		}
	}
	return result
}

// ForContexts returns the bindings of each context, in the given order.
func ForContexts(contexts ...string) []Binding {
	var result []Binding
	for _, ctx := range contexts {
		result = append(result, ByContext(ctx)...)
	}
	return result
}
