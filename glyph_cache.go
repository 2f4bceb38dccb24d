package splitrender

import (
	"github.com/gogpu/splitrender/text"
	"github.com/gogpu/splitrender/text/emoji"
	"github.com/gogpu/splitrender/timerfont"
)

// GlyphLayer is one tessellated path making up a cached glyph. A nil Color
// means the layer carries no fixed color and is filled with whatever
// shader the surrounding text is drawn with (the common, non-color-font
// case); a non-nil Color is a resolved CPAL palette entry baked in at
// cache time for COLR layers.
type GlyphLayer[P any] struct {
	Color *RGBA
	Path  P
}

// GlyphEntry is a cached glyph: one or more layers drawn back to front.
// Paths are in raw font units with y flipped to screen orientation, so a
// single entry serves every text size a glyph is drawn at; callers scale
// via the draw transform, never by re-tessellating.
type GlyphEntry[P any] struct {
	Layers []GlyphLayer[P]
}

// GlyphCache is an unbounded, non-evicting cache of tessellated glyph
// paths, keyed by glyph id. Entries are never evicted within the cache's
// lifetime; Clear drops everything at once, e.g. when the backing font
// changes. The cache does not guard itself: callers serialize access.
type GlyphCache[P any] struct {
	entries map[text.GlyphID]*GlyphEntry[P]
}

// NewGlyphCache creates an empty cache.
func NewGlyphCache[P any]() *GlyphCache[P] {
	return &GlyphCache[P]{entries: make(map[text.GlyphID]*GlyphEntry[P])}
}

// Clear drops every cached entry, freeing the backend paths they hold.
func (c *GlyphCache[P]) Clear(backend interface{ FreePath(P) }) {
	for _, e := range c.entries {
		for _, l := range e.Layers {
			backend.FreePath(l.Path)
		}
	}
	c.entries = make(map[text.GlyphID]*GlyphEntry[P])
}

// Len reports the number of cached glyphs.
func (c *GlyphCache[P]) Len() int { return len(c.entries) }

// LookupOrInsert returns the cached entry for gid, tessellating and
// inserting it first if this is the first time gid has been drawn. The
// returned pointer is stable for the cache's lifetime (or until Clear):
// callers may hold onto it across frames without a further lookup.
func LookupOrInsert[P any, I any](cache *GlyphCache[P], backend Backend[P, I], font *timerfont.Font, gid text.GlyphID) *GlyphEntry[P] {
	if e, ok := cache.entries[gid]; ok {
		return e
	}
	e := buildGlyphEntry(backend, font, gid)
	cache.entries[gid] = e
	return e
}

func buildGlyphEntry[P any, I any](backend Backend[P, I], font *timerfont.Font, gid text.GlyphID) *GlyphEntry[P] {
	if cf, ok := font.ColorFont(); ok && cf.GlyphType(uint16(gid)) == text.GlyphTypeCOLR {
		if colr, err := cf.COLRGlyph(uint16(gid), 0); err == nil && colr != nil {
			return &GlyphEntry[P]{Layers: colrLayers(backend, font, colr)}
		}
	}

	path, ok := tessellateOutline(backend, font, gid)
	if !ok {
		return &GlyphEntry[P]{}
	}
	return &GlyphEntry[P]{Layers: []GlyphLayer[P]{{Path: path}}}
}

func colrLayers[P any, I any](backend Backend[P, I], font *timerfont.Font, colr *emoji.COLRGlyph) []GlyphLayer[P] {
	layers := make([]GlyphLayer[P], 0, len(colr.Layers))
	for _, layer := range colr.Layers {
		path, ok := tessellateOutline(backend, font, text.GlyphID(layer.GlyphID))
		if !ok {
			continue
		}
		l := GlyphLayer[P]{Path: path}
		if !layer.IsForeground() {
			c := RGBA{
				R: float64(layer.Color.R) / 255,
				G: float64(layer.Color.G) / 255,
				B: float64(layer.Color.B) / 255,
				A: float64(layer.Color.A) / 255,
			}
			l.Color = &c
		}
		layers = append(layers, l)
	}
	return layers
}

// tessellateOutline extracts gid's vector outline in raw font units and
// walks its segments into the backend's fill builder. The extraction
// already hands back y-down coordinates, so no flip happens here.
func tessellateOutline[P any, I any](backend Backend[P, I], font *timerfont.Font, gid text.GlyphID) (P, bool) {
	var zero P
	outline, err := font.Outline(gid)
	if err != nil || outline == nil || len(outline.Segments) == 0 {
		return zero, false
	}

	b := backend.FillBuilder()
	for _, seg := range outline.Segments {
		switch seg.Op {
		case text.OutlineOpMoveTo:
			b.MoveTo(float64(seg.Points[0].X), float64(seg.Points[0].Y))
		case text.OutlineOpLineTo:
			b.LineTo(float64(seg.Points[0].X), float64(seg.Points[0].Y))
		case text.OutlineOpQuadTo:
			b.QuadTo(float64(seg.Points[0].X), float64(seg.Points[0].Y), float64(seg.Points[1].X), float64(seg.Points[1].Y))
		case text.OutlineOpCubicTo:
			b.CurveTo(
				float64(seg.Points[0].X), float64(seg.Points[0].Y),
				float64(seg.Points[1].X), float64(seg.Points[1].Y),
				float64(seg.Points[2].X), float64(seg.Points[2].Y),
			)
		}
	}
	b.Close()
	return b.Finish(), true
}
