package notice

import (
	"github.com/llehouerou/montage/internal/ui/action"
)

// Dismissed is emitted when the user acknowledges the notice.
type Dismissed struct {
	Message string
}

// ActionType implements action.Action.
func (a Dismissed) ActionType() string { return "notice.dismissed" }

// ActionMsg creates an action.Msg for a notice action.
func ActionMsg(a action.Action) action.Msg {
	return action.Msg{Source: "notice", Action: a}
}
