package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrRemote is returned for images that are not local files.
var ErrRemote = errors.New("remote images are not previewed")

// LoadedMsg reports a finished thumbnail load.
type LoadedMsg struct {
	Path   string
	View   string // rendered thumbnail, empty on error
	Size   int64  // file size in bytes
	Width  int    // cell box the view was rendered for
	Height int
	Err    error
}

type entry struct {
	view string
	size int64
	err  error
}

// Loader decodes and renders thumbnails off the UI goroutine and memoizes results.
type Loader struct {
	mu      sync.Mutex
	width   int
	height  int
	disk    *Cache
	logger  *slog.Logger
	loaded  map[string]entry
	pending map[string]struct{}
}

// NewLoader creates a loader for width x height cell thumbnails.
// disk may be nil to skip on-disk caching.
func NewLoader(width, height int, disk *Cache, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		width:   width,
		height:  height,
		disk:    disk,
		logger:  logger,
		loaded:  make(map[string]entry),
		pending: make(map[string]struct{}),
	}
}

// Size returns the thumbnail box in cells.
func (l *Loader) Size() (width, height int) {
	return l.width, l.height
}

// Cached returns a previously loaded result.
func (l *Loader) Cached(path string) (LoadedMsg, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e, ok := l.loaded[path]
	if !ok {
		return LoadedMsg{}, false
	}
	return l.msg(path, e), true
}

// Fits reports whether msg was rendered for this loader's box.
func (l *Loader) Fits(msg LoadedMsg) bool {
	return msg.Width == l.width && msg.Height == l.height
}

// Load returns a command that renders path. It returns nil when the result
// is already cached or a load for path is in flight.
func (l *Loader) Load(path string) tea.Cmd {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.loaded[path]; ok {
		return nil
	}
	if _, ok := l.pending[path]; ok {
		return nil
	}
	l.pending[path] = struct{}{}

	return func() tea.Msg {
		view, size, err := l.render(path)
		if err != nil {
			l.logger.Debug("thumbnail failed", "path", path, "error", err)
		}
		e := entry{view: view, size: size, err: err}
		l.mu.Lock()
		l.loaded[path] = e
		delete(l.pending, path)
		l.mu.Unlock()
		return l.msg(path, e)
	}
}

func (l *Loader) msg(path string, e entry) LoadedMsg {
	return LoadedMsg{
		Path:   path,
		View:   e.view,
		Size:   e.size,
		Width:  l.width,
		Height: l.height,
		Err:    e.err,
	}
}

func (l *Loader) render(path string) (string, int64, error) {
	if isRemote(path) {
		return "", 0, ErrRemote
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", 0, err
	}

	img, err := l.scaled(path, info.ModTime())
	if err != nil {
		return "", info.Size(), err
	}
	return Render(img, l.width, l.height), info.Size(), nil
}

// scaled returns the resized image, from the disk cache when possible.
func (l *Loader) scaled(path string, modTime time.Time) (image.Image, error) {
	if data := l.disk.Get(path, modTime, l.width, l.height); data != nil {
		if img, err := png.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	img = Scale(img, l.width, l.height)

	if l.disk != nil {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err == nil {
			if err := l.disk.Put(path, modTime, l.width, l.height, buf.Bytes()); err != nil {
				l.logger.Debug("thumbnail cache write", "path", path, "error", err)
			}
		}
	}
	return img, nil
}

func isRemote(path string) bool {
	return strings.Contains(path, "://")
}
