package app

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/montage/internal/app/popupctl"
	"github.com/llehouerou/montage/internal/errmsg"
	"github.com/llehouerou/montage/internal/gallery"
	"github.com/llehouerou/montage/internal/ui/action"
	"github.com/llehouerou/montage/internal/ui/catalogpanel"
	"github.com/llehouerou/montage/internal/ui/confirm"
	"github.com/llehouerou/montage/internal/ui/gallerypanel"
	"github.com/llehouerou/montage/internal/ui/helpbindings"
	"github.com/llehouerou/montage/internal/ui/notice"
)

// handleAction applies a component action to the application state.
func (m Model) handleAction(msg action.Msg) (tea.Model, tea.Cmd) {
	m.logger.Debug("action", "source", msg.Source, "type", msg.Action.ActionType())

	var cmd tea.Cmd
	switch a := msg.Action.(type) {
	case catalogpanel.AddRequested:
		cmd = m.addItem(a)

	case catalogpanel.DeleteRequested:
		if m.Gallery.Contains(a.Item.ID) {
			m.Gallery.Remove(a.Item)
			m.GalleryPanel.ClampCursor()
			m.setStatus("Removed " + a.Item.Name())
		}

	case gallerypanel.Reordered:
		m.setStatus(fmt.Sprintf("Moved to position %d", a.To+1))

	case gallerypanel.Removed:
		m.setStatus("Removed " + a.Item.Name())

	case gallerypanel.ReorderFailed:
		m.Status = errmsg.Format(errmsg.OpGalleryReorder, a.Err)
		m.StatusError = true
		return m, nil

	case confirm.Result:
		if _, ok := a.Context.(clearRequest); ok && a.Confirmed {
			n := m.Gallery.Len()
			m.Gallery.Clear()
			m.GalleryPanel.ClampCursor()
			m.setStatus(fmt.Sprintf("Cleared %d images", n))
		}

	case notice.Dismissed:
		m.Popups.Hide(popupctl.Notice)

	case helpbindings.Close:
		m.Popups.Hide(popupctl.Help)
	}

	m.checkPersistError()
	return m, tea.Batch(cmd, m.GalleryPanel.LoadThumbnails())
}

func (m *Model) addItem(a catalogpanel.AddRequested) tea.Cmd {
	err := m.Gallery.Add(a.Item)
	if errors.Is(err, gallery.ErrAlreadyAdded) {
		m.logger.Debug("duplicate add", "id", a.Item.ID)
		return m.Popups.ShowNotice("Already added", notice.AlreadyAdded)
	}
	m.setStatus("Added " + a.Item.Name())
	return nil
}

// checkPersistError surfaces the last failed write in the status line.
func (m *Model) checkPersistError() {
	if err := m.Gallery.LastPersistError(); err != nil {
		m.Status = errmsg.Format(errmsg.OpGallerySave, err)
		m.StatusError = true
	}
}
