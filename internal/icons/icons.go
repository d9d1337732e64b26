// Package icons provides the link and photo markers used on the pages in
// one of three styles.
package icons

import "strings"

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Document string
	Web      string
	Mail     string
	Photo    string
	Star     string
}

var (
	nerdIcons = Icons{
		Document: "\uf1c1 ", // nf-fa-file_pdf_o
		Web:      "\uf0ac ", // nf-fa-globe
		Mail:     "\uf0e0 ", // nf-fa-envelope
		Photo:    "\uf030 ", // nf-fa-camera
		Star:     "\uf005",  // nf-fa-star
	}

	unicodeIcons = Icons{
		Document: "📄 ",
		Web:      "🌐 ",
		Mail:     "✉ ",
		Photo:    "📷 ",
		Star:     "★",
	}

	noneIcons = Icons{
		Star: "*",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	default:
		current = noneIcons
	}
}

// ForURL returns the marker for a link target: a document for PDFs, mail
// for mailto links and a globe for other web pages. Empty for internal
// links and in the "none" style.
func ForURL(url string) string {
	switch {
	case url == "":
		return ""
	case strings.HasPrefix(url, "mailto:"):
		return current.Mail
	case strings.HasSuffix(strings.ToLower(url), ".pdf"):
		return current.Document
	default:
		return current.Web
	}
}

// FormatLink prefixes label with the marker for url.
func FormatLink(label, url string) string {
	return ForURL(url) + label
}

// FormatPhoto prefixes a photo label with the camera icon.
func FormatPhoto(label string) string {
	return current.Photo + label
}

// Star returns the sponsor tier marker.
func Star() string {
	return current.Star
}
