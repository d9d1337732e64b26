// Package sitemap builds the sitemaps.org document for the club site.
package sitemap

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/llehouerou/clubview/internal/route"
)

// ChangeFreq is how often a page is expected to change.
type ChangeFreq string

const (
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
)

// Entry is one URL of the sitemap.
type Entry struct {
	URL          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
}

var schedule = map[string]struct {
	freq     ChangeFreq
	priority float64
}{
	route.Home:         {Weekly, 1},
	route.Executive:    {Monthly, 0.8},
	route.Newsletters:  {Monthly, 0.8},
	route.Gallery:      {Monthly, 0.7},
	route.Sponsors:     {Monthly, 0.7},
	route.CodeOfEthics: {Yearly, 0.5},
	route.InMemoriam:   {Monthly, 0.6},
}

// Entries returns one entry per site page, in navigation order, all
// modified at now. The home page URL is baseURL itself.
func Entries(baseURL string, now time.Time) []Entry {
	base := strings.TrimSuffix(baseURL, "/")
	entries := make([]Entry, 0, len(route.All))
	for _, r := range route.All {
		s := schedule[r.Path]
		url := base
		if r.Path != route.Home {
			url += r.Path
		}
		entries = append(entries, Entry{
			URL:          url,
			LastModified: now.UTC(),
			ChangeFreq:   s.freq,
			Priority:     s.priority,
		})
	}
	return entries
}

const namespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type urlset struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

type urlEntry struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Write encodes entries as an indented sitemap document.
func Write(w io.Writer, entries []Entry) error {
	set := urlset{Xmlns: namespace, URLs: make([]urlEntry, len(entries))}
	for i, e := range entries {
		u := urlEntry{Loc: e.URL, ChangeFreq: string(e.ChangeFreq)}
		if !e.LastModified.IsZero() {
			u.LastMod = e.LastModified.Format(time.RFC3339)
		}
		if e.Priority > 0 {
			u.Priority = strconv.FormatFloat(e.Priority, 'f', 1, 64)
		}
		set.URLs[i] = u
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return fmt.Errorf("encode sitemap: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
