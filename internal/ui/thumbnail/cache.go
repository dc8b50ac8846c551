package thumbnail

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	cacheDirName = "montage/thumbnails"
	cacheMaxAge  = 30 * 24 * time.Hour // 30 days
)

// Cache stores resized thumbnails as PNG files on disk.
type Cache struct {
	dir string
}

// NewCache creates a disk cache under baseDir, or the XDG cache dir when empty.
// Entries older than 30 days are pruned in the background.
func NewCache(baseDir string) (*Cache, error) {
	if baseDir == "" {
		baseDir = xdg.CacheHome
	}

	dir := filepath.Join(baseDir, cacheDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	c := &Cache{dir: dir}
	go c.prune(time.Now())
	return c, nil
}

// cacheKey identifies a source file version at specific dimensions.
func cacheKey(path string, modTime time.Time, width, height int) string {
	data := fmt.Sprintf("%s:%d:%d:%d", path, modTime.UnixNano(), width, height)
	hash := sha256.Sum256([]byte(data))
	return hex.EncodeToString(hash[:])
}

func (c *Cache) file(key string) string {
	return filepath.Join(c.dir, key+".png")
}

// Get returns cached PNG data, or nil if absent. A nil Cache is always empty.
func (c *Cache) Get(path string, modTime time.Time, width, height int) []byte {
	if c == nil {
		return nil
	}

	file := c.file(cacheKey(path, modTime, width, height))
	data, err := os.ReadFile(file)
	if err != nil {
		return nil
	}

	// Touch the file so frequently used entries survive pruning
	now := time.Now()
	_ = os.Chtimes(file, now, now) //nolint:errcheck // best-effort

	return data
}

// Put stores PNG data.
func (c *Cache) Put(path string, modTime time.Time, width, height int, data []byte) error {
	if c == nil {
		return nil
	}
	return os.WriteFile(c.file(cacheKey(path, modTime, width, height)), data, 0o600)
}

// prune removes entries last touched before now - cacheMaxAge.
func (c *Cache) prune(now time.Time) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return
	}

	cutoff := now.Add(-cacheMaxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			_ = os.Remove(filepath.Join(c.dir, entry.Name())) //nolint:errcheck // best-effort cleanup
		}
	}
}
