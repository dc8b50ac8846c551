// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Gallery operations
	OpGalleryLoad    Op = "load selection"
	OpGallerySave    Op = "save selection"
	OpGalleryReorder Op = "move image"
	OpGalleryClear   Op = "clear selection"

	// Catalog operations
	OpCatalogLoad Op = "load catalog"
	OpCatalogScan Op = "scan image folder"

	// Image operations
	OpImageLoad Op = "load image"

	// Startup
	OpConfigLoad Op = "load configuration"
	OpStateOpen  Op = "open state database"
	OpInitialize Op = "initialize application"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
