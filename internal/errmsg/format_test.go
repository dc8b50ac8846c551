package errmsg

import (
	"errors"
	"fmt"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		op   Op
		err  error
		want string
	}{
		{"nil error", OpGallerySave, nil, ""},
		{"save", OpGallerySave, errors.New("disk full"), "Failed to save selection: disk full"},
		{"reorder", OpGalleryReorder, errors.New("index out of range"), "Failed to move image: index out of range"},
		{"config", OpConfigLoad, errors.New("bad toml"), "Failed to load configuration: bad toml"},
		{
			"wrapped",
			OpStateOpen,
			fmt.Errorf("open state db: %w", errors.New("permission denied")),
			"Failed to open state database: open state db: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.op, tt.err); got != tt.want {
				t.Errorf("Format(%q, %v) = %q, want %q", tt.op, tt.err, got, tt.want)
			}
		})
	}
}

func TestFormatWith(t *testing.T) {
	tests := []struct {
		name    string
		op      Op
		context string
		err     error
		want    string
	}{
		{"nil error", OpImageLoad, "cat.png", nil, ""},
		{"with context", OpImageLoad, "cat.png", errors.New("unknown format"), "Failed to load image 'cat.png': unknown format"},
		{"empty context falls back", OpCatalogScan, "", errors.New("no such dir"), "Failed to scan image folder: no such dir"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatWith(tt.op, tt.context, tt.err); got != tt.want {
				t.Errorf("FormatWith(%q, %q, %v) = %q, want %q", tt.op, tt.context, tt.err, got, tt.want)
			}
		})
	}
}
