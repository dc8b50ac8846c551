package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/spf13/pflag"

	"github.com/llehouerou/montage/internal/app"
	"github.com/llehouerou/montage/internal/catalog"
	"github.com/llehouerou/montage/internal/config"
	"github.com/llehouerou/montage/internal/errmsg"
	"github.com/llehouerou/montage/internal/gallery"
	"github.com/llehouerou/montage/internal/state"
	"github.com/llehouerou/montage/internal/ui"
	"github.com/llehouerou/montage/internal/ui/thumbnail"
)

var version = "dev"

type options struct {
	configPath string
	statePath  string
	logPath    string
	clear      bool
	json       bool
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: montage [options]\n\n")
		fmt.Fprintf(os.Stderr, "montage arranges images from a catalog into an ordered gallery.\n")
		fmt.Fprintf(os.Stderr, "The gallery is saved after every change and restored on start.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  montage                  # Start the UI\n")
		fmt.Fprintf(os.Stderr, "  montage --json           # Print the saved gallery as JSON\n")
		fmt.Fprintf(os.Stderr, "  montage --clear          # Forget the saved gallery\n")
	}

	var opts options
	pflag.StringVarP(&opts.configPath, "config", "c", "", "Load this config file after the default ones")
	pflag.StringVar(&opts.statePath, "state", "", "Path of the state database")
	pflag.StringVar(&opts.logPath, "log", "", "Write logs to this file")
	pflag.BoolVar(&opts.clear, "clear", false, "Delete the saved gallery and exit")
	pflag.BoolVarP(&opts.json, "json", "j", false, "Print the saved gallery as JSON and exit")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("montage version %s\n", version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if opts.statePath != "" {
		cfg.StatePath = opts.statePath
	}
	if opts.logPath != "" {
		cfg.LogFile = opts.logPath
	}

	logger, logFile, err := setupLogger(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logFile.Close()
	slog.SetDefault(logger)

	store, err := state.Open(cfg.StatePath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer store.Close()

	if opts.clear {
		return clearSelection(store, cfg.StorageKey)
	}

	galleryOpts := []gallery.Option{gallery.WithLogger(logger)}
	if cfg.StorageKey != "" {
		galleryOpts = append(galleryOpts, gallery.WithKey(cfg.StorageKey))
	}
	mgr := gallery.New(store, galleryOpts...)
	if opts.json {
		return printSelection(os.Stdout, mgr.Selected())
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}
	logger.Info("starting", "version", version, "catalog", cat.Len(), "selected", mgr.Len())
	logLastSaved(logger, store, cfg.StorageKey)

	preview, tiles := newThumbnailLoaders(cfg, logger)
	m := app.New(cat, mgr, preview, tiles, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

// buildCatalog merges the configured images with the scanned folder.
// Without any configured source the working directory is scanned.
func buildCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	dir := cfg.CatalogDir
	if !cfg.HasCatalog() {
		wd, err := os.Getwd()
		if err != nil {
			return nil, errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
		}
		dir = wd
	}

	cat, err := catalog.Build(cfg.CatalogItems(), dir)
	if err != nil {
		return nil, errors.New(errmsg.FormatWith(errmsg.OpCatalogScan, dir, err))
	}
	return cat, nil
}

// newThumbnailLoaders returns the catalog preview loader and the gallery tile
// loader. Both share one disk cache.
func newThumbnailLoaders(cfg *config.Config, logger *slog.Logger) (preview, tiles *thumbnail.Loader) {
	if !cfg.ThumbnailsEnabled() {
		return nil, nil
	}
	tc := cfg.GetThumbnailConfig()

	var disk *thumbnail.Cache
	if *tc.Cache {
		c, err := thumbnail.NewCache("")
		if err != nil {
			logger.Warn("thumbnail cache disabled", "error", err)
		} else {
			disk = c
		}
	}
	preview = thumbnail.NewLoader(tc.Width, tc.Height, disk, logger)
	tiles = thumbnail.NewLoader(ui.TileThumbWidth, ui.TileThumbHeight, disk, logger)
	return preview, tiles
}

func clearSelection(store state.Interface, key string) error {
	if key == "" {
		key = gallery.DefaultKey
	}
	if err := store.Delete(key); err != nil {
		return errors.New(errmsg.Format(errmsg.OpGalleryClear, err))
	}
	fmt.Println("Gallery cleared.")
	return nil
}

// logLastSaved records when the restored selection was written.
func logLastSaved(logger *slog.Logger, store *state.Manager, key string) {
	if key == "" {
		key = gallery.DefaultKey
	}
	ts, ok, err := store.UpdatedAt(key)
	if err != nil {
		logger.Warn("read selection timestamp", "error", err)
		return
	}
	if ok {
		logger.Info("restored selection", "saved", humanize.Time(ts))
	}
}

func printSelection(w io.Writer, items []catalog.Item) error {
	if items == nil {
		items = []catalog.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

// setupLogger opens the log file and builds a text logger at the configured level.
// Logs go to a file because stderr is hidden behind the alt screen.
func setupLogger(path, level string) (*slog.Logger, io.Closer, error) {
	if path == "" {
		p, err := xdg.StateFile("montage/montage.log")
		if err != nil {
			return nil, nil, fmt.Errorf("resolve log path: %w", err)
		}
		path = p
	} else if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: parseLevel(level)})
	return slog.New(handler), f, nil
}

func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
