package confirm

import (
	"testing"

	"github.com/llehouerou/montage/internal/ui/action"
	"github.com/llehouerou/montage/internal/ui/testutil"
)

type clearRequest struct{}

func newTestConfirm(context any) (*Model, *testutil.PopupHarness) {
	m := New()
	m.Show("Clear selection?", "Remove all 3 images from the gallery", context, 80, 24)
	return &m, testutil.NewPopupHarness(&m)
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	actionMsg, ok := testutil.ExecuteCmd(cmd).(action.Msg)
	if !ok {
		t.Fatal("expected action.Msg")
	}
	result, ok := actionMsg.Action.(Result)
	if !ok {
		t.Fatalf("expected Result, got %T", actionMsg.Action)
	}
	return result
}

func TestConfirm_Keys(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"enter", true},
		{"y", true},
		{"Y", true},
		{"esc", false},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m, h := newTestConfirm(clearRequest{})

			h.SendKey(tt.key)

			result := getResult(t, h)
			if result.Confirmed != tt.want {
				t.Errorf("Confirmed = %v, want %v", result.Confirmed, tt.want)
			}
			if _, ok := result.Context.(clearRequest); !ok {
				t.Errorf("Context = %v, want clearRequest", result.Context)
			}
			if m.Active() {
				t.Error("popup should close after answering")
			}
		})
	}
}

func TestConfirm_OtherKeysIgnored(t *testing.T) {
	m, h := newTestConfirm(nil)

	if cmd := h.SendKey("x"); cmd != nil {
		t.Error("unrelated key should not answer")
	}
	if !m.Active() {
		t.Error("popup should remain active")
	}
}

func TestConfirm_View(t *testing.T) {
	_, h := newTestConfirm(nil)

	for _, want := range []string{"Clear selection?", "Remove all 3 images", "Enter/Y: confirm"} {
		if !h.ViewContains(want) {
			t.Errorf("view missing %q", want)
		}
	}
}
