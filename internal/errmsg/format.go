// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Artwork lookup
	OpSearchArtworks Op = "search artworks"
	OpFetchArtwork   Op = "fetch artwork"
	OpPickRandom     Op = "pick a random artwork"

	// Rendering pipeline
	OpReadTerminal  Op = "read terminal size"
	OpDownloadImage Op = "download image"
	OpConvertImage  Op = "convert image"
	OpDecodeCells   Op = "decode cell encoding"
	OpRenderArt     Op = "render artwork"

	// Startup
	OpLoadConfig Op = "load configuration"
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
