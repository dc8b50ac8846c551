// Package keymap defines key bindings and action dispatch for the application.
package keymap

// Action represents a user-triggerable action.
type Action string

const (
	// Global actions
	ActionQuit           Action = "quit"
	ActionSwitchFocus    Action = "switch_focus"
	ActionHelp           Action = "help"
	ActionClearSelection Action = "clear_selection"

	// Cursor movement
	ActionMoveUp   Action = "move_up"
	ActionMoveDown Action = "move_down"
	ActionTop      Action = "top"
	ActionBottom   Action = "bottom"

	// Catalog actions
	ActionAdd    Action = "add"
	ActionFilter Action = "filter"

	// Shared by catalog and gallery
	ActionDelete Action = "delete"

	// Gallery reordering
	ActionMoveItemUp   Action = "move_item_up"
	ActionMoveItemDown Action = "move_item_down"
)
