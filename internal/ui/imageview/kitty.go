package imageview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strings"
)

// Kitty graphics protocol escape sequences
const (
	escStart = "\x1b_G"
	escEnd   = "\x1b\\"

	kittyChunkSize = 4096
	kittyCellW     = 8
	kittyCellH     = 16
)

// KittyProtocol implements Protocol with the Kitty graphics protocol.
type KittyProtocol struct{}

func (KittyProtocol) Name() string { return "kitty" }

func (KittyProtocol) Prepare(img image.Image, id uint32) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}
	return transmitPNG(buf.Bytes(), id), nil
}

func (KittyProtocol) Place(id uint32, row, col, width, height int) string {
	return placeImage(id, row, col, width, height)
}

func (KittyProtocol) Delete(id uint32) string {
	return deleteImage(id)
}

func (KittyProtocol) TargetPixelSize(widthCells, heightCells int) (pixelWidth, pixelHeight int) {
	return widthCells * kittyCellW, heightCells * kittyCellH
}

// transmitPNG builds the chunked a=t (transmit, don't display) command.
func transmitPNG(pngData []byte, id uint32) string {
	encoded := base64.StdEncoding.EncodeToString(pngData)

	var sb strings.Builder
	for i := 0; i < len(encoded); i += kittyChunkSize {
		end := min(i+kittyChunkSize, len(encoded))
		more := 0
		if end < len(encoded) {
			more = 1
		}

		sb.WriteString(escStart)
		if i == 0 {
			// f=100: PNG, q=2: suppress responses
			fmt.Fprintf(&sb, "a=t,f=100,i=%d,q=2,m=%d;", id, more)
		} else {
			fmt.Fprintf(&sb, "m=%d;", more)
		}
		sb.WriteString(encoded[i:end])
		sb.WriteString(escEnd)
	}

	return sb.String()
}

// placeImage positions a transmitted image. row and col are 1-based.
// The fixed placement ID (p=1) makes a new placement replace the previous
// one, so flipping photos never leaves ghosts behind.
func placeImage(id uint32, row, col, width, height int) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "\x1b[s\x1b[%d;%dH", row, col)
	fmt.Fprintf(&sb, "%sa=p,i=%d,p=1,c=%d,r=%d,C=1,q=2;%s", escStart, id, width, height, escEnd)
	sb.WriteString("\x1b[u")
	return sb.String()
}

// deleteImage removes a transmitted image and all of its placements.
func deleteImage(id uint32) string {
	return fmt.Sprintf("%sa=d,d=i,i=%d,q=2;%s", escStart, id, escEnd)
}

// deleteAllPlacements hides every visible image without freeing data.
func deleteAllPlacements() string {
	return escStart + "a=d,d=a,q=2;" + escEnd
}
