package gallerypanel

import (
	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/ui/action"
)

// Reordered reports a tile move that was applied to the selection.
type Reordered struct {
	From, To int
}

// ActionType implements action.Action.
func (a Reordered) ActionType() string { return "gallerypanel.reordered" }

// Removed reports a tile deleted from the selection.
type Removed struct {
	Item catalog.Item
}

// ActionType implements action.Action.
func (a Removed) ActionType() string { return "gallerypanel.removed" }

// ReorderFailed reports a move the selection rejected.
type ReorderFailed struct {
	Err error
}

// ActionType implements action.Action.
func (a ReorderFailed) ActionType() string { return "gallerypanel.reorder_failed" }

// ActionMsg creates an action.Msg for a gallerypanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "gallerypanel", Action: a}
}
