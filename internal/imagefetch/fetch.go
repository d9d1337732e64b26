// Package imagefetch downloads gallery images through a memory LRU and an
// optional persistent store.
package imagefetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/llehouerou/clubview/internal/imagecache"
	"github.com/llehouerou/clubview/internal/logger"
)

// ErrNotFound is returned when the image host answers 404.
var ErrNotFound = errors.New("image not found")

// ErrTooLarge is returned when a response exceeds MaxBytes.
var ErrTooLarge = errors.New("image too large")

const (
	userAgent        = "clubview/1.0 (+https://github.com/llehouerou/clubview)"
	defaultTimeout   = 15 * time.Second
	defaultEntries   = 64
	defaultMaxBytes  = 20 << 20
	minMemoryEntries = 1
)

// Source tells where an image came from.
type Source int

const (
	SourceNetwork Source = iota
	SourceMemory
	SourceDisk
)

func (s Source) String() string {
	switch s {
	case SourceMemory:
		return "memory"
	case SourceDisk:
		return "disk"
	default:
		return "network"
	}
}

// Image is a fetched image body.
type Image struct {
	URL         string
	Data        []byte
	ContentType string
	Source      Source
}

// Store persists images between runs. *imagecache.Cache satisfies it.
type Store interface {
	Get(ctx context.Context, url string) (imagecache.Entry, bool, error)
	Put(ctx context.Context, url string, data []byte, contentType string) error
}

// Options configures a Fetcher. Zero values pick defaults.
type Options struct {
	HTTPClient    *http.Client
	Timeout       time.Duration
	MemoryEntries int
	MaxBytes      int64
	Store         Store
	Logger        *logger.Logger
}

// Fetcher is safe for concurrent use; image loads run as tea.Cmds.
type Fetcher struct {
	httpClient *http.Client
	memory     *lru.Cache
	store      Store
	maxBytes   int64
	log        *logger.Logger
}

type cached struct {
	data        []byte
	contentType string
}

// New creates a Fetcher.
func New(opts Options) (*Fetcher, error) {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	entries := opts.MemoryEntries
	if entries < minMemoryEntries {
		entries = defaultEntries
	}
	memory, err := lru.New(entries)
	if err != nil {
		return nil, fmt.Errorf("create memory cache: %w", err)
	}

	maxBytes := opts.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}

	return &Fetcher{
		httpClient: client,
		memory:     memory,
		store:      opts.Store,
		maxBytes:   maxBytes,
		log:        opts.Logger,
	}, nil
}

// Fetch returns the image at url, trying memory, then the store, then
// the network. Network results are written back to both caches.
func (f *Fetcher) Fetch(ctx context.Context, url string) (Image, error) {
	if v, ok := f.memory.Get(url); ok {
		c := v.(cached)
		return Image{URL: url, Data: c.data, ContentType: c.contentType, Source: SourceMemory}, nil
	}

	if f.store != nil {
		e, ok, err := f.store.Get(ctx, url)
		if err != nil {
			f.log.With("url", url).Error(err, "image cache read failed")
		} else if ok {
			f.memory.Add(url, cached{data: e.Data, contentType: e.ContentType})
			return Image{URL: url, Data: e.Data, ContentType: e.ContentType, Source: SourceDisk}, nil
		}
	}

	data, contentType, err := f.download(ctx, url)
	if err != nil {
		return Image{}, err
	}

	f.memory.Add(url, cached{data: data, contentType: contentType})
	if f.store != nil {
		if err := f.store.Put(ctx, url, data, contentType); err != nil {
			f.log.With("url", url).Error(err, "image cache write failed")
		}
	}
	f.log.WithFields(map[string]any{"url": url, "bytes": len(data)}).Debug("image downloaded")

	return Image{URL: url, Data: data, ContentType: contentType, Source: SourceNetwork}, nil
}

func (f *Fetcher) download(ctx context.Context, url string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status: %s", resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > f.maxBytes {
		return nil, "", ErrTooLarge
	}

	return data, resp.Header.Get("Content-Type"), nil
}

// Cached reports whether url is in the memory cache.
func (f *Fetcher) Cached(url string) bool {
	return f.memory.Contains(url)
}

// Forget drops url from the memory cache.
func (f *Fetcher) Forget(url string) {
	f.memory.Remove(url)
}
