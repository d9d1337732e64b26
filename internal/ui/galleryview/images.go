package galleryview

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/clubview/internal/imagefetch"
	"github.com/llehouerou/clubview/internal/ui/imageview"
	"github.com/llehouerou/clubview/internal/ui/render"
)

// Fetcher loads image bytes. *imagefetch.Fetcher satisfies it.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (imagefetch.Image, error)
}

// ImageLoadedMsg reports the outcome of a fetch, tagged with its URL.
type ImageLoadedMsg struct {
	URL    string
	Data   []byte
	Source imagefetch.Source
	Err    error
}

// ImagePreparedMsg carries the terminal sequence that uploads a decoded
// photo, sized for a width x height cell box.
type ImagePreparedMsg struct {
	URL           string
	Width, Height int
	Transmit      string
	Err           error
}

// graphicsFlushedMsg clears a pending transmit once at least one frame
// has written it.
type graphicsFlushedMsg struct {
	seq int64
}

// flushSeq numbers pending graphics across all gallery views, so a flush
// delivered to every view only clears the one it belongs to.
var flushSeq atomic.Int64

// flushDelay leaves the renderer a few frames to write pending graphics.
const flushDelay = 100 * time.Millisecond

func fetchCmd(ctx context.Context, f Fetcher, url string) tea.Cmd {
	return func() tea.Msg {
		img, err := f.Fetch(ctx, url)
		if err != nil {
			return ImageLoadedMsg{URL: url, Err: err}
		}
		return ImageLoadedMsg{URL: url, Data: img.Data, Source: img.Source}
	}
}

func prepareCmd(r *imageview.Renderer, url string, data []byte, width, height int) tea.Cmd {
	return func() tea.Msg {
		transmit, err := r.Prepare(url, data, width, height)
		return ImagePreparedMsg{URL: url, Width: width, Height: height, Transmit: transmit, Err: err}
	}
}

func flushCmd(seq int64) tea.Cmd {
	return tea.Tick(flushDelay, func(time.Time) tea.Msg {
		return graphicsFlushedMsg{seq: seq}
	})
}

// failureText turns a load error into the short placeholder message.
func failureText(err error) string {
	switch {
	case errors.Is(err, imagefetch.ErrNotFound):
		return "Photo not found"
	case errors.Is(err, imagefetch.ErrTooLarge):
		return "Photo is too large"
	case errors.Is(err, context.DeadlineExceeded):
		return "Timed out loading photo"
	case errors.Is(err, context.Canceled):
		return "Loading cancelled"
	default:
		return fmt.Sprintf("Could not load photo (%s)", render.Truncate(err.Error(), 48))
	}
}
