// Package popupctl owns the modal popups shown over the main view.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/ui/confirm"
	"github.com/llehouerou/montage/internal/ui/helpbindings"
	"github.com/llehouerou/montage/internal/ui/notice"
	"github.com/llehouerou/montage/internal/ui/overlay"
	"github.com/llehouerou/montage/internal/ui/popup"
)

// activer is implemented by popups that close themselves.
type activer interface {
	Active() bool
}

// Manager manages all modal popups and overlays.
type Manager struct {
	popups map[Type]popup.Popup
	sizes  map[Type]popup.SizeConfig
	width  int
	height int
}

// New creates a new Manager.
func New() *Manager {
	return &Manager{
		popups: make(map[Type]popup.Popup),
		sizes: map[Type]popup.SizeConfig{
			Help:    popup.SizeLarge,
			Confirm: popup.SizeAuto,
			Notice:  popup.SizeAuto,
		},
	}
}

// SetSize updates the dimensions for popup rendering.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for t, pop := range p.popups {
		w, h := p.contentSize(p.sizes[t])
		pop.SetSize(w, h)
	}
}

// IsVisible returns true if the specified popup type is visible.
func (p *Manager) IsVisible(t Type) bool {
	if t == None {
		return false
	}
	return p.popups[t] != nil
}

// ActivePopup returns which popup is currently active (highest priority).
func (p *Manager) ActivePopup() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Show displays a popup of the given type.
func (p *Manager) Show(t Type, pop popup.Popup) tea.Cmd {
	w, h := p.contentSize(p.sizes[t])
	pop.SetSize(w, h)
	p.popups[t] = pop
	return pop.Init()
}

// Hide hides the specified popup type.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// Get retrieves a popup for type assertion when needed.
func (p *Manager) Get(t Type) popup.Popup {
	return p.popups[t]
}

// contentSize calculates popup content dimensions based on size config.
func (p *Manager) contentSize(size popup.SizeConfig) (width, height int) {
	if size.WidthPct > 0 {
		return p.width * size.WidthPct / 100, p.height * size.HeightPct / 100
	}
	// Auto-fit: give full screen size, popup decides
	return p.width, p.height
}

// --- Show Methods (convenience wrappers) ---

// ShowHelp displays the help popup with the given contexts.
func (p *Manager) ShowHelp(contexts []string) tea.Cmd {
	help := helpbindings.New()
	help.SetContexts(contexts)
	return p.Show(Help, &help)
}

// ShowConfirm displays a confirmation dialog.
func (p *Manager) ShowConfirm(title, message string, context any) tea.Cmd {
	c := confirm.New()
	c.Show(title, message, context, p.width, p.height)
	return p.Show(Confirm, &c)
}

// ShowNotice displays a blocking notice.
func (p *Manager) ShowNotice(title, message string) tea.Cmd {
	n := notice.New()
	n.Show(title, message, p.width, p.height)
	return p.Show(Notice, &n)
}

// --- Input Handling ---

// HandleKey routes key events to the active popup.
// Returns (handled, cmd) where handled is true if a popup consumed the key.
func (p *Manager) HandleKey(msg tea.KeyMsg) (bool, tea.Cmd) {
	active := p.ActivePopup()
	if active == None {
		return false, nil
	}

	updated, cmd := p.popups[active].Update(msg)
	if a, ok := updated.(activer); ok && !a.Active() {
		delete(p.popups, active)
	} else {
		p.popups[active] = updated
	}
	return true, cmd
}

// HandleMouse reports whether a popup is open; open popups swallow mouse events.
func (p *Manager) HandleMouse(tea.MouseMsg) bool {
	return p.ActivePopup() != None
}

// --- Rendering ---

// RenderOverlay renders active popup(s) on top of the base view.
func (p *Manager) RenderOverlay(base string) string {
	for _, t := range RenderOrder {
		pop := p.popups[t]
		if pop == nil {
			continue
		}
		rendered := popup.RenderBordered(pop.View(), p.width, p.height, p.sizes[t])
		base = overlay.Compose(base, rendered, p.width)
	}
	return base
}
