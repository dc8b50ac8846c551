package catalogpanel

import (
	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/ui/action"
)

// AddRequested asks the app to add an item to the gallery.
type AddRequested struct {
	Item catalog.Item
}

// ActionType implements action.Action.
func (a AddRequested) ActionType() string { return "catalogpanel.add_requested" }

// DeleteRequested asks the app to remove an item from the gallery.
type DeleteRequested struct {
	Item catalog.Item
}

// ActionType implements action.Action.
func (a DeleteRequested) ActionType() string { return "catalogpanel.delete_requested" }

// ActionMsg creates an action.Msg for a catalogpanel action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "catalogpanel", Action: a}
}
