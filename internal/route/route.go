// Package route lists the pages of the club site and resolves paths to them.
package route

import (
	"strings"
)

// Route is one navigable page.
type Route struct {
	Path  string
	Title string
	Short string // header tab label when space is tight
}

// Site paths.
const (
	Home         = "/"
	Executive    = "/executive"
	Newsletters  = "/newsletters"
	Gallery      = "/gallery"
	Sponsors     = "/sponsors"
	CodeOfEthics = "/code-of-ethics"
	InMemoriam   = "/in-memoriam"
)

// All holds the site pages in navigation order.
var All = []Route{
	{Home, "Home", "Home"},
	{Executive, "Executive", "Exec"},
	{Newsletters, "Newsletters", "News"},
	{Gallery, "Gallery", "Photos"},
	{Sponsors, "Club Sponsors", "Sponsors"},
	{CodeOfEthics, "Code of Ethics", "Ethics"},
	{InMemoriam, "In Memoriam", "Memoriam"},
}

// Normalize canonicalizes a path: leading slash, no trailing slash, lower
// case, no query or fragment.
func Normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	path = strings.ToLower(strings.TrimSpace(path))
	path = strings.TrimRight(path, "/")
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path
}

// Lookup finds the page for path.
func Lookup(path string) (Route, bool) {
	i := Index(path)
	if i < 0 {
		return Route{}, false
	}
	return All[i], true
}

// Index returns the navigation position of path, or -1 if unknown.
func Index(path string) int {
	p := Normalize(path)
	for i, r := range All {
		if r.Path == p {
			return i
		}
	}
	return -1
}

// Step moves n pages from path in navigation order, wrapping around.
// Unknown paths step from home.
func Step(path string, n int) Route {
	i := max(Index(path), 0)
	count := len(All)
	return All[((i+n)%count+count)%count]
}
