package app

import (
	"errors"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/montage/internal/app/popupctl"
	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/gallery"
	"github.com/llehouerou/montage/internal/state"
	"github.com/llehouerou/montage/internal/ui/action"
	"github.com/llehouerou/montage/internal/ui/notice"
	"github.com/llehouerou/montage/internal/ui/testutil"
)

var (
	itemA = catalog.Item{ID: 1, Image: "/pics/a.png"}
	itemB = catalog.Item{ID: 2, Image: "/pics/b.png"}
	itemC = catalog.Item{ID: 3, Image: "/pics/c.png"}
)

func newTestModel(t *testing.T) (Model, *state.Mock) {
	t.Helper()
	quiet := slog.New(slog.DiscardHandler)
	cat, err := catalog.New(itemA, itemB, itemC)
	require.NoError(t, err)
	store := state.NewMock()
	mgr := gallery.New(store, gallery.WithLogger(quiet))

	m := New(cat, mgr, nil, nil, quiet)
	return update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40}), store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result
}

// send delivers msg and feeds every resulting action back into the model,
// the way the Bubble Tea runtime would.
func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	for _, out := range testutil.CollectMsgs(cmd) {
		if am, ok := out.(action.Msg); ok {
			result = send(t, result, am)
		}
	}
	return result
}

func ids(items []catalog.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

// galleryRow returns the screen row of a gallery content row at the default size.
func galleryRow(contentY int) int { return contentY + 4 }

func TestUpdate_WindowSizeMsg_ResizesComponents(t *testing.T) {
	m, _ := newTestModel(t)

	require.Equal(t, 72, m.GalleryPanel.Width())
	require.Equal(t, 48, m.CatalogPanel.Width())
	require.Equal(t, 38, m.GalleryPanel.Height())
	require.False(t, m.IsNarrowMode())

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})
	require.True(t, m.IsNarrowMode())
	require.Equal(t, 80, m.GalleryPanel.Width())
	require.Equal(t, 80, m.CatalogPanel.Width())
	require.Equal(t, 22, m.GalleryPanel.Height())
	require.Equal(t, 16, m.CatalogPanel.Height())
}

func TestAdd_FromCatalogKeys(t *testing.T) {
	m, store := newTestModel(t)
	require.Equal(t, FocusCatalog, m.Focus)

	m = send(t, m, testutil.Key("a"))
	m = send(t, m, testutil.Key("j"))
	m = send(t, m, testutil.Key("a"))

	require.Equal(t, []int{1, 2}, ids(m.Gallery.Selected()))
	require.Equal(t, "Added b.png", m.Status)
	_, stored := store.Value(gallery.DefaultKey)
	require.True(t, stored)
}

func TestAdd_DuplicateShowsNotice(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, testutil.Key("a"))
	m = send(t, m, testutil.Key("a"))

	require.Equal(t, popupctl.Notice, m.Popups.ActivePopup())
	require.Equal(t, []int{1}, ids(m.Gallery.Selected()))

	view := testutil.StripANSI(m.View())
	require.True(t, testutil.ContainsLine(view, notice.AlreadyAdded))

	// The notice blocks everything else, including quit and mouse input.
	_, cmd := m.Update(testutil.Key("q"))
	require.Nil(t, cmd)
	m = send(t, m, testutil.Press(74, 4))
	require.Equal(t, []int{1}, ids(m.Gallery.Selected()))

	m = send(t, m, testutil.Key("enter"))
	require.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestDelete_FromCatalog(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, testutil.Key("a"))

	m = send(t, m, testutil.Key("d"))
	require.Empty(t, m.Gallery.Selected())
	require.Equal(t, "Removed a.png", m.Status)

	// Deleting an item that is not in the gallery changes nothing.
	m = send(t, m, testutil.Key("d"))
	require.Empty(t, m.Gallery.Selected())
}

func TestSwitchFocus(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, testutil.Key("tab"))
	require.Equal(t, FocusGallery, m.Focus)
	require.True(t, m.GalleryPanel.IsFocused())
	require.False(t, m.CatalogPanel.IsFocused())

	m = send(t, m, testutil.Key("tab"))
	require.Equal(t, FocusCatalog, m.Focus)
}

func TestClearSelection_Confirmed(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, testutil.Key("a"))
	m = send(t, m, testutil.Key("j"))
	m = send(t, m, testutil.Key("a"))

	m = send(t, m, testutil.Key("C"))
	require.Equal(t, popupctl.Confirm, m.Popups.ActivePopup())

	m = send(t, m, testutil.Key("y"))
	require.Equal(t, popupctl.None, m.Popups.ActivePopup())
	require.Empty(t, m.Gallery.Selected())
	require.Equal(t, "Cleared 2 images", m.Status)
}

func TestClearSelection_Cancelled(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, testutil.Key("a"))

	m = send(t, m, testutil.Key("C"))
	m = send(t, m, testutil.Key("n"))

	require.Equal(t, []int{1}, ids(m.Gallery.Selected()))
}

func TestClearSelection_Empty(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, testutil.Key("C"))

	require.Equal(t, popupctl.None, m.Popups.ActivePopup())
	require.Equal(t, "Gallery is already empty", m.Status)
}

func TestHelp_OpenAndClose(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, testutil.Key("?"))
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())

	m = send(t, m, testutil.Key("esc"))
	require.Equal(t, popupctl.None, m.Popups.ActivePopup())
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t)

	_, cmd := m.Update(testutil.Key("q"))

	require.NotNil(t, cmd)
	require.Equal(t, tea.QuitMsg{}, cmd())
}

func TestDrag_ReordersThroughApp(t *testing.T) {
	m, store := newTestModel(t)
	for _, key := range []string{"a", "j", "a", "j", "a"} {
		m = send(t, m, testutil.Key(key))
	}
	require.Equal(t, []int{1, 2, 3}, ids(m.Gallery.Selected()))

	m = send(t, m, testutil.Press(5, galleryRow(1)))
	require.Equal(t, FocusGallery, m.Focus)
	require.True(t, m.GalleryPanel.Dragging())

	// Leaving the panel keeps the drag alive without moving anything.
	m = send(t, m, testutil.Drag(100, galleryRow(13)))
	require.Equal(t, []int{1, 2, 3}, ids(m.Gallery.Selected()))

	m = send(t, m, testutil.Drag(5, galleryRow(13)))
	require.Equal(t, []int{2, 3, 1}, ids(m.Gallery.Selected()))
	require.Equal(t, "Moved to position 3", m.Status)
	require.True(t, testutil.ContainsLine(testutil.StripANSI(m.View()), "dragging"))

	m = send(t, m, testutil.Release(100, 30))
	require.False(t, m.GalleryPanel.Dragging())

	// The new order survives a restart on the same store.
	reloaded := gallery.New(store, gallery.WithLogger(slog.New(slog.DiscardHandler)))
	require.Equal(t, []int{2, 3, 1}, ids(reloaded.Selected()))
}

func TestDrag_EndedByPopupKey(t *testing.T) {
	m, _ := newTestModel(t)
	for _, key := range []string{"a", "j", "a"} {
		m = send(t, m, testutil.Key(key))
	}

	m = send(t, m, testutil.Press(5, galleryRow(1)))
	require.True(t, m.GalleryPanel.Dragging())

	m = send(t, m, testutil.Key("?"))
	require.Equal(t, popupctl.Help, m.Popups.ActivePopup())
	require.False(t, m.GalleryPanel.Dragging())

	// The popup swallows the release and the motion.
	m = send(t, m, testutil.Drag(5, galleryRow(6)))
	m = send(t, m, testutil.Release(5, galleryRow(6)))
	m = send(t, m, testutil.Key("esc"))

	require.Equal(t, popupctl.None, m.Popups.ActivePopup())
	require.Equal(t, []int{1, 2}, ids(m.Gallery.Selected()))
	view := testutil.StripANSI(m.View())
	require.False(t, testutil.ContainsLine(view, "moving"))
	require.False(t, testutil.ContainsLine(view, "dragging"))
}

func TestDrag_ReleaseUnderPopupEndsDrag(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, testutil.Key("a"))
	m = send(t, m, testutil.Press(5, galleryRow(1)))
	require.True(t, m.GalleryPanel.Dragging())

	m.Popups.ShowNotice("Already added", "This image is already added.")
	m = send(t, m, testutil.Release(5, galleryRow(1)))

	require.Equal(t, popupctl.Notice, m.Popups.ActivePopup())
	require.False(t, m.GalleryPanel.Dragging())
}

func TestMouse_CatalogAddControl(t *testing.T) {
	m, _ := newTestModel(t)
	m.SetFocus(FocusGallery)

	// Catalog starts at column 72; its rows start at screen row 4.
	m = send(t, m, testutil.Press(74, 5))

	require.Equal(t, FocusCatalog, m.Focus)
	require.Equal(t, []int{2}, ids(m.Gallery.Selected()))
}

func TestPersistError_ShownInStatus(t *testing.T) {
	m, store := newTestModel(t)
	store.SetSetError(errors.New("disk full"))

	m = send(t, m, testutil.Key("a"))

	require.True(t, m.StatusError)
	require.Equal(t, "Failed to save selection: disk full", m.Status)
	require.Equal(t, []int{1}, ids(m.Gallery.Selected()))
}

func TestView(t *testing.T) {
	m, _ := newTestModel(t)
	m = send(t, m, testutil.Key("a"))

	view := testutil.StripANSI(m.View())

	require.True(t, testutil.ContainsLine(view, "montage"))
	require.True(t, testutil.ContainsLine(view, "1/3 selected"))
	require.True(t, testutil.ContainsLine(view, "Gallery (1)"))
	require.True(t, testutil.ContainsLine(view, "Catalog (3)"))
	require.True(t, testutil.ContainsLine(view, "Added a.png"))
	require.Len(t, testutil.SplitLines(m.View()), 40)
}

func TestView_ZeroSize(t *testing.T) {
	quiet := slog.New(slog.DiscardHandler)
	cat, err := catalog.New(itemA)
	require.NoError(t, err)
	m := New(cat, gallery.New(state.NewMock(), gallery.WithLogger(quiet)), nil, nil, quiet)

	require.Empty(t, m.View())
}

func TestFilter_TakesGlobalKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m = send(t, m, testutil.Key("/"))
	require.True(t, m.CatalogPanel.Filtering())

	// "q" is typed into the filter instead of quitting.
	next, cmd := m.Update(testutil.Key("q"))
	m = next.(Model)
	for _, msg := range testutil.CollectMsgs(cmd) {
		require.NotEqual(t, tea.QuitMsg{}, msg)
	}
	require.Equal(t, "q", m.CatalogPanel.FilterValue())

	m = send(t, m, testutil.Key("esc"))
	m = send(t, m, testutil.Key("tab"))
	require.Equal(t, FocusGallery, m.Focus)
}
