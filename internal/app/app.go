// Package app wires the gallery state and the panels into the root Bubble Tea model.
package app

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/app/popupctl"
	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/gallery"
	"github.com/llehouerou/montage/internal/keymap"
	"github.com/llehouerou/montage/internal/ui/catalogpanel"
	"github.com/llehouerou/montage/internal/ui/gallerypanel"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

// FocusTarget identifies which panel receives key input.
type FocusTarget int

const (
	FocusCatalog FocusTarget = iota
	FocusGallery
)

// Context returns the keymap context of the focused panel.
func (f FocusTarget) Context() string {
	if f == FocusGallery {
		return keymap.ContextGallery
	}
	return keymap.ContextCatalog
}

// clearRequest tags the confirmation that empties the gallery.
type clearRequest struct{}

// Model is the root application model containing all state.
type Model struct {
	Gallery      *gallery.Manager
	Catalog      *catalog.Catalog
	GalleryPanel gallerypanel.Model
	CatalogPanel catalogpanel.Model
	Popups       *popupctl.Manager
	Focus        FocusTarget
	Status       string
	StatusError  bool
	Width        int
	Height       int

	keys   *keymap.Resolver
	logger *slog.Logger
}

// New creates the application model. thumbs renders the catalog preview and
// tileThumbs the gallery tile pictures; either may be nil to disable it.
func New(cat *catalog.Catalog, mgr *gallery.Manager, thumbs, tileThumbs *thumbnail.Loader, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		Gallery:      mgr,
		Catalog:      cat,
		GalleryPanel: gallerypanel.New(mgr),
		CatalogPanel: catalogpanel.New(cat.Items(), mgr, thumbs),
		Popups:       popupctl.New(),
		Focus:        FocusCatalog,
		keys:         keymap.NewContextResolver(keymap.ContextGlobal),
		logger:       logger,
	}
	m.GalleryPanel.SetThumbnails(tileThumbs)
	m.applyFocus()
	m.checkPersistError()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.CatalogPanel.Init(), m.GalleryPanel.LoadThumbnails())
}

// SetFocus moves key input to the given panel.
func (m *Model) SetFocus(f FocusTarget) {
	m.Focus = f
	m.applyFocus()
}

func (m *Model) applyFocus() {
	m.GalleryPanel.SetFocused(m.Focus == FocusGallery)
	m.CatalogPanel.SetFocused(m.Focus == FocusCatalog)
}

func (m *Model) toggleFocus() {
	if m.Focus == FocusGallery {
		m.SetFocus(FocusCatalog)
		return
	}
	m.SetFocus(FocusGallery)
}

// setStatus shows an informational message in the status line.
func (m *Model) setStatus(s string) {
	m.Status = s
	m.StatusError = false
}
