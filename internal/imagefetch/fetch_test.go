package imagefetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/clubview/internal/imagecache"
)

func newServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		switch r.URL.Path {
		case "/missing.jpg":
			http.NotFound(w, r)
		case "/broken.jpg":
			w.WriteHeader(http.StatusInternalServerError)
		case "/big.jpg":
			_, _ = w.Write(make([]byte, 64))
		default:
			w.Header().Set("Content-Type", "image/jpeg")
			_, _ = w.Write([]byte("jpeg:" + r.URL.Path))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_NetworkThenMemory(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{})
	require.NoError(t, err)

	img, err := f.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceNetwork, img.Source)
	assert.Equal(t, "jpeg:/a.jpg", string(img.Data))
	assert.Equal(t, "image/jpeg", img.ContentType)

	img, err = f.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceMemory, img.Source)
	assert.Equal(t, int32(1), hits.Load())
	assert.True(t, f.Cached(srv.URL+"/a.jpg"))
}

func TestFetch_NotFound(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{})
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), srv.URL+"/missing.jpg")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.False(t, f.Cached(srv.URL+"/missing.jpg"))
}

func TestFetch_ServerError(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{})
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), srv.URL+"/broken.jpg")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNotFound))
}

func TestFetch_TooLarge(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{MaxBytes: 16})
	require.NoError(t, err)

	_, err = f.Fetch(context.Background(), srv.URL+"/big.jpg")
	assert.True(t, errors.Is(err, ErrTooLarge))
}

func TestFetch_DiskStore(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	ctx := context.Background()

	store, err := imagecache.Open(ctx, ":memory:", time.Hour)
	require.NoError(t, err)
	defer store.Close()

	first, err := New(Options{Store: store})
	require.NoError(t, err)
	_, err = first.Fetch(ctx, srv.URL+"/b.jpg")
	require.NoError(t, err)

	// A fresh fetcher has an empty memory cache but shares the store.
	second, err := New(Options{Store: store})
	require.NoError(t, err)
	img, err := second.Fetch(ctx, srv.URL+"/b.jpg")
	require.NoError(t, err)
	assert.Equal(t, SourceDisk, img.Source)
	assert.Equal(t, "image/jpeg", img.ContentType)
	assert.Equal(t, int32(1), hits.Load())
}

func TestFetch_MemoryEviction(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{MemoryEntries: 1})
	require.NoError(t, err)
	ctx := context.Background()

	_, err = f.Fetch(ctx, srv.URL+"/1.jpg")
	require.NoError(t, err)
	_, err = f.Fetch(ctx, srv.URL+"/2.jpg")
	require.NoError(t, err)

	assert.False(t, f.Cached(srv.URL+"/1.jpg"))
	assert.True(t, f.Cached(srv.URL+"/2.jpg"))

	f.Forget(srv.URL + "/2.jpg")
	assert.False(t, f.Cached(srv.URL+"/2.jpg"))
}

func TestFetch_CanceledContext(t *testing.T) {
	var hits atomic.Int32
	srv := newServer(t, &hits)
	f, err := New(Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.Fetch(ctx, srv.URL+"/c.jpg")
	require.Error(t, err)
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "network", SourceNetwork.String())
	assert.Equal(t, "memory", SourceMemory.String())
	assert.Equal(t, "disk", SourceDisk.String())
}
