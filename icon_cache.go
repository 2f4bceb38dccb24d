package splitrender

import (
	"bytes"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"golang.org/x/image/webp"
)

// errIconDecode is returned by DecodeIcon when no registered decoder
// recognizes the data. Callers drop the icon rather than propagate this;
// see spec's error table ("Icon decode fails -> No icon drawn").
var errIconDecode = errors.New("splitrender: unrecognized icon image format")

// DecodeIcon decodes an embedded raster icon to an image.Image. PNG, JPEG
// and GIF are tried first via the standard library's registered decoders;
// BMP, TIFF and WebP follow via golang.org/x/image, mirroring the donor's
// layered decode strategy in its own image-loading path.
func DecodeIcon(data []byte) (image.Image, error) {
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := bmp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := tiff.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	if img, err := webp.Decode(bytes.NewReader(data)); err == nil {
		return img, nil
	}
	return nil, errIconDecode
}

// imageToRGBA8 packs img into tightly-packed, straight-alpha RGBA8 bytes
// suitable for Backend.CreateImage.
func imageToRGBA8(img image.Image) (width, height int, pix []byte) {
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	pix = make([]byte, width*height*4)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bch, a := img.At(x, y).RGBA()
			if a == 0 {
				i += 4
				continue
			}
			pix[i+0] = uint8(r * 255 / a)
			pix[i+1] = uint8(g * 255 / a)
			pix[i+2] = uint8(bch * 255 / a)
			pix[i+3] = uint8(a >> 8)
			i += 4
		}
	}
	return width, height, pix
}

// Icon is a decoded raster icon: a backend image handle plus the source
// image's aspect ratio (width/height), used by RenderContext.RenderIcon to
// letterbox it inside its target box.
type Icon[I any] struct {
	Image       I
	AspectRatio float64
}

// iconSlot remembers the raw bytes last decoded into a slot so repeated
// frames with an unchanged icon skip re-decoding and re-uploading the
// image, matching the "re-rendering an unchanged layout state allocates no
// new images" testable property.
type iconSlot[P any, I any] struct {
	raw   []byte
	icon  Icon[I]
	valid bool
}

func (s *iconSlot[P, I]) get(backend Backend[P, I], raw []byte) (Icon[I], bool) {
	if len(raw) == 0 {
		s.free(backend)
		return Icon[I]{}, false
	}
	if s.valid && bytes.Equal(s.raw, raw) {
		return s.icon, true
	}

	img, err := DecodeIcon(raw)
	if err != nil {
		s.free(backend)
		return Icon[I]{}, false
	}

	s.free(backend)
	w, h, pix := imageToRGBA8(img)
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	s.icon = Icon[I]{Image: backend.CreateImage(w, h, pix), AspectRatio: aspect}
	s.raw = append([]byte(nil), raw...)
	s.valid = true
	return s.icon, true
}

func (s *iconSlot[P, I]) free(backend Backend[P, I]) {
	if s.valid {
		backend.FreeImage(s.icon.Image)
	}
	s.valid = false
	s.raw = nil
}

// IconCache holds the three icon slots the renderer draws from: the game
// icon (Title component), the detailed-timer segment icon, and one slot
// per Splits row (grown and shrunk to match the current row count).
type IconCache[P any, I any] struct {
	game          iconSlot[P, I]
	detailedTimer iconSlot[P, I]
	splits        []iconSlot[P, I]
}

// NewIconCache creates an empty icon cache.
func NewIconCache[P any, I any]() *IconCache[P, I] { return &IconCache[P, I]{} }

// GameIcon decodes (or returns the cached decode of) raw for the Title
// component's game icon slot. ok is false when raw is nil or undecodable.
func (c *IconCache[P, I]) GameIcon(backend Backend[P, I], raw []byte) (Icon[I], bool) {
	return c.game.get(backend, raw)
}

// DetailedTimerIcon is GameIcon's counterpart for the detailed-timer
// component's segment icon slot.
func (c *IconCache[P, I]) DetailedTimerIcon(backend Backend[P, I], raw []byte) (Icon[I], bool) {
	return c.detailedTimer.get(backend, raw)
}

// SplitIcon decodes (or returns the cached decode of) raw for split row
// index. The caller must call TruncateSplits once per frame with the
// current row count so icons for rows that no longer exist are freed.
func (c *IconCache[P, I]) SplitIcon(backend Backend[P, I], index int, raw []byte) (Icon[I], bool) {
	if index >= len(c.splits) {
		grown := make([]iconSlot[P, I], index+1)
		copy(grown, c.splits)
		c.splits = grown
	}
	return c.splits[index].get(backend, raw)
}

// TruncateSplits frees and drops every split-icon slot at index >= n.
func (c *IconCache[P, I]) TruncateSplits(backend Backend[P, I], n int) {
	for i := n; i < len(c.splits); i++ {
		c.splits[i].free(backend)
	}
	if n < len(c.splits) {
		c.splits = c.splits[:n]
	}
}

// Clear frees every decoded icon, used when the renderer is torn down.
func (c *IconCache[P, I]) Clear(backend Backend[P, I]) {
	c.game.free(backend)
	c.detailedTimer.free(backend)
	c.TruncateSplits(backend, 0)
}
