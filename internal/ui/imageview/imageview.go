// Package imageview draws downloaded photos in the terminal with the Kitty
// or Sixel graphics protocols.
package imageview

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder for gallery photos
	_ "image/jpeg" // JPEG decoder for gallery photos
	_ "image/png"  // PNG decoder for gallery photos
	"slices"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/nfnt/resize"
)

// DefaultLimit bounds how many images stay transmitted to the terminal.
const DefaultLimit = 24

// ErrDisabled is returned by Prepare when no protocol is available.
var ErrDisabled = errors.New("terminal images disabled")

var nextImageID uint32

func getNextImageID() uint32 {
	return atomic.AddUint32(&nextImageID, 1)
}

type imageKey struct {
	url           string
	width, height int
}

type prepared struct {
	id         uint32
	cols, rows int
}

// Renderer prepares photos for a protocol and remembers them by URL and
// cell size. Prepare runs inside tea.Cmds, so the renderer is locked.
type Renderer struct {
	mu     sync.Mutex
	proto  Protocol
	images map[imageKey]prepared
	order  []imageKey
	limit  int
}

// NewRenderer returns a renderer for proto. A nil proto disables images.
func NewRenderer(proto Protocol) *Renderer {
	return &Renderer{
		proto:  proto,
		images: make(map[imageKey]prepared),
		limit:  DefaultLimit,
	}
}

// Enabled reports whether photos can be drawn.
func (r *Renderer) Enabled() bool {
	return r != nil && r.proto != nil
}

// ProtocolName returns the active protocol name or "none".
func (r *Renderer) ProtocolName() string {
	if !r.Enabled() {
		return "none"
	}
	return r.proto.Name()
}

// Prepare decodes data, scales it to fit width x height cells and hands it
// to the protocol. The returned command must be written to the terminal
// once; it also carries deletions of images evicted to stay under the limit.
func (r *Renderer) Prepare(url string, data []byte, width, height int) (string, error) {
	if !r.Enabled() {
		return "", ErrDisabled
	}
	if width <= 0 || height <= 0 {
		return "", fmt.Errorf("invalid size %dx%d", width, height)
	}

	key := imageKey{url: url, width: width, height: height}
	r.mu.Lock()
	_, ok := r.images[key]
	r.mu.Unlock()
	if ok {
		return "", nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	pw, ph := r.proto.TargetPixelSize(width, height)
	resized := resize.Thumbnail(uint(max(pw, 1)), uint(max(ph, 1)), img, resize.Lanczos3) //nolint:gosec // cell sizes are small

	id := getNextImageID()
	cmd, err := r.proto.Prepare(resized, id)
	if err != nil {
		return "", err
	}

	cellW, cellH := r.proto.TargetPixelSize(1, 1)
	b := resized.Bounds()
	p := prepared{
		id:   id,
		cols: clamp(ceilDiv(b.Dx(), cellW), 1, width),
		rows: clamp(ceilDiv(b.Dy(), cellH), 1, height),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	sb.WriteString(cmd)
	if old, exists := r.images[key]; exists {
		// Lost a race with another Prepare for the same key.
		sb.WriteString(r.proto.Delete(old.id))
		r.order = slices.DeleteFunc(r.order, func(k imageKey) bool { return k == key })
	}
	r.images[key] = p
	r.order = append(r.order, key)

	for len(r.order) > r.limit {
		evict := r.order[0]
		r.order = r.order[1:]
		sb.WriteString(r.proto.Delete(r.images[evict].id))
		delete(r.images, evict)
	}

	return sb.String(), nil
}

// Ready reports whether url has been prepared for the given cell size.
func (r *Renderer) Ready(url string, width, height int) bool {
	if !r.Enabled() {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.images[imageKey{url: url, width: width, height: height}]
	return ok
}

// Place returns the sequence drawing url centered in the width x height
// box whose top-left cell is (row, col), both 1-based.
func (r *Renderer) Place(url string, row, col, width, height int) string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	p, ok := r.images[imageKey{url: url, width: width, height: height}]
	r.mu.Unlock()
	if !ok {
		return ""
	}

	row += (height - p.rows) / 2
	col += (width - p.cols) / 2
	return r.proto.Place(p.id, row, col, p.cols, p.rows)
}

// Hide removes visible placements while keeping image data.
func (r *Renderer) Hide() string {
	if !r.Enabled() {
		return ""
	}
	if _, ok := r.proto.(KittyProtocol); ok {
		return deleteAllPlacements()
	}
	return ""
}

// Clear frees every prepared image.
func (r *Renderer) Clear() string {
	if !r.Enabled() {
		return ""
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	var sb strings.Builder
	for _, key := range r.order {
		sb.WriteString(r.proto.Delete(r.images[key].id))
	}
	r.images = make(map[imageKey]prepared)
	r.order = nil
	return sb.String()
}

// Len returns the number of prepared images.
func (r *Renderer) Len() int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.order)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
