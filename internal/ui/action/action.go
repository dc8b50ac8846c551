// Package action defines the interface for UI component actions.
package action

import tea "github.com/charmbracelet/bubbletea"

// Action represents an action from a UI component.
// ActionType returns a string identifier for logging.
type Action interface {
	ActionType() string
}

// Msg wraps a UI action with its source component name.
// Components send these to the app instead of mutating shared state.
type Msg struct {
	Source string // Component name: "catalogpanel", "gallerypanel", ...
	Action Action
}

// Ensure Msg implements tea.Msg (compile-time check).
var _ tea.Msg = Msg{}
