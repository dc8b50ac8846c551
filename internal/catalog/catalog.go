// Package catalog holds the static set of images offered for selection.
package catalog

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Item is a single selectable image.
type Item struct {
	ID    int    `json:"id"`
	Image string `json:"image"` // file path or URI
}

// ErrDuplicateID is returned when two catalog entries share an ID.
var ErrDuplicateID = errors.New("duplicate catalog id")

// imageExts lists the file extensions picked up by ScanDir.
var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

// Catalog is an ordered, immutable list of items.
type Catalog struct {
	items []Item
}

// New builds a catalog from items, rejecting duplicate IDs.
func New(items ...Item) (*Catalog, error) {
	c := &Catalog{items: make([]Item, 0, len(items))}
	seen := make(map[int]struct{}, len(items))
	for _, it := range items {
		if _, exists := seen[it.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateID, it.ID)
		}
		seen[it.ID] = struct{}{}
		c.items = append(c.items, it)
	}
	return c, nil
}

// Build merges configured entries with images found in dir.
// Scanned images get IDs after the highest configured ID, in name order.
// An empty dir skips scanning.
func Build(entries []Item, dir string) (*Catalog, error) {
	items := append([]Item(nil), entries...)
	if dir != "" {
		paths, err := ScanDir(dir)
		if err != nil {
			return nil, err
		}
		next := maxID(entries) + 1
		for _, p := range paths {
			items = append(items, Item{ID: next, Image: p})
			next++
		}
	}
	return New(items...)
}

// ScanDir returns the image files directly inside dir, sorted by name.
func ScanDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scan catalog dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if !IsImage(e.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, e.Name()))
	}
	sort.Strings(paths)
	return paths, nil
}

// IsImage reports whether name has a supported image extension.
func IsImage(name string) bool {
	return imageExts[strings.ToLower(filepath.Ext(name))]
}

func maxID(items []Item) int {
	m := 0
	for _, it := range items {
		if it.ID > m {
			m = it.ID
		}
	}
	return m
}

// Items returns a copy of all items in catalog order.
func (c *Catalog) Items() []Item {
	result := make([]Item, len(c.items))
	copy(result, c.items)
	return result
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Name returns a short display name for an item's image.
func (it Item) Name() string {
	if it.Image == "" {
		return fmt.Sprintf("#%d", it.ID)
	}
	name := it.Image
	if i := strings.LastIndexAny(name, `/\`); i >= 0 && i < len(name)-1 {
		name = name[i+1:]
	}
	return name
}
