// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Content
	OpContentLoad     Op = "load site content"
	OpContentValidate Op = "validate site content"

	// Photos
	OpPhotoFetch   Op = "load photo"
	OpPhotoDisplay Op = "display photo"
	OpCacheOpen    Op = "open image cache"
	OpCacheClear   Op = "clear image cache"

	// Links
	OpLinkOpen Op = "open link"

	// Output
	OpSitemapWrite Op = "write sitemap"
	OpLogOpen      Op = "open log file"

	// Initialization
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
