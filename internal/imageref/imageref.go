// Package imageref maps opaque image identifiers to fetchable URLs.
package imageref

import "strings"

// Default remote image host and access parameters used by the club site.
const (
	DefaultHost   = "https://nebula.wsimg.com"
	DefaultParams = "AccessKeyId=65531CC4E6E01F7CEEA0&disposition=0&alloworigin=1"
)

// Resolver builds image URLs from a fixed host and query string.
// It is a value type; the zero value resolves against the defaults.
type Resolver struct {
	host  string
	query string
}

// New creates a resolver for host with the given key=value parameters.
// Parameters are kept in the order given. An empty host falls back to
// DefaultHost and nil params fall back to DefaultParams.
func New(host string, params []string) Resolver {
	host = strings.TrimSuffix(host, "/")
	if host == "" {
		host = DefaultHost
	}
	query := DefaultParams
	if params != nil {
		query = strings.Join(params, "&")
	}
	return Resolver{host: host, query: query}
}

// Host returns the configured host without a trailing slash.
func (r Resolver) Host() string {
	if r.host == "" {
		return DefaultHost
	}
	return r.host
}

// Resolve returns the full URL for id. Identifiers are inserted verbatim
// and not validated: a bad identifier yields a URL that fails to load.
func (r Resolver) Resolve(id string) string {
	query := r.query
	if r.host == "" && query == "" {
		query = DefaultParams
	}

	var sb strings.Builder
	sb.Grow(len(r.Host()) + len(id) + len(query) + 2)
	sb.WriteString(r.Host())
	sb.WriteByte('/')
	sb.WriteString(id)
	if query != "" {
		sb.WriteByte('?')
		sb.WriteString(query)
	}
	return sb.String()
}

// ResolveAll resolves every identifier in ids, preserving order.
func (r Resolver) ResolveAll(ids []string) []string {
	urls := make([]string, len(ids))
	for i, id := range ids {
		urls[i] = r.Resolve(id)
	}
	return urls
}
