package splitrender

import (
	"github.com/gogpu/splitrender/layoutstate"
	"github.com/gogpu/splitrender/timerfont"
)

// Renderer is the top-level entry point: it owns the three fonts (timer,
// times, text), their three parallel glyph caches, the icon cache, the
// cached unit-rectangle path, and the layout extent remembered across
// frames to detect direction or size changes. One Renderer is created per
// output surface and reused for every subsequent Render call; a Renderer
// is not safe for concurrent use (see the package doc).
type Renderer[P any, I any] struct {
	timerFont *timerfont.Font
	timesFont *timerfont.Font
	textFont  *timerfont.Font

	timerSettings layoutstate.FontSettings
	timesSettings layoutstate.FontSettings
	textSettings  layoutstate.FontSettings

	timerGlyphs *GlyphCache[P]
	timesGlyphs *GlyphCache[P]
	textGlyphs  *GlyphCache[P]

	icons     *IconCache[P, I]
	rectangle cachedPath[P]

	haveCachedSize bool
	cachedSize     CachedSize
}

// NewRenderer creates a renderer with the embedded default fonts loaded
// into all three slots: a bold monospace timer face, a bold times face
// and a regular text face. Glyph and icon caches start empty.
func NewRenderer[P any, I any]() *Renderer[P, I] {
	return &Renderer[P, I]{
		timerGlyphs: NewGlyphCache[P](),
		timesGlyphs: NewGlyphCache[P](),
		textGlyphs:  NewGlyphCache[P](),
		icons:       NewIconCache[P, I](),

		timerFont: loadEmbeddedDefault(defaultTimerFontBytes, 700, 100),
		timesFont: loadEmbeddedDefault(defaultTimesFontBytes, 700, 100),
		textFont:  loadEmbeddedDefault(defaultTextFontBytes, 400, 100),
	}
}

// loadEmbeddedDefault parses data as an upright face at the given weight
// and stretch, returning nil on a parse error rather than panicking. A
// nil font is a legal Renderer state: every draw that touches it degrades
// to a no-op.
func loadEmbeddedDefault(data []byte, weight, stretch int) *timerfont.Font {
	f, err := timerfont.NewFontFromBytes(data, 0, timerfont.StyleNormal, weight, stretch)
	if err != nil {
		return nil
	}
	return f
}

// CachedSize returns the layout extent remembered from the previous
// Render call, or ok=false if Render has never been called.
func (r *Renderer[P, I]) CachedSize() (size CachedSize, ok bool) {
	return r.cachedSize, r.haveCachedSize
}

// Close releases every path and image this renderer owns (glyph caches,
// icon cache and the unit rectangle) through backend. Call once when the
// renderer is torn down; the renderer must not be used afterward.
func (r *Renderer[P, I]) Close(backend Backend[P, I]) {
	r.timerGlyphs.Clear(backend)
	r.timesGlyphs.Clear(backend)
	r.textGlyphs.Clear(backend)
	r.icons.Clear(backend)
	r.rectangle.free(backend)
}

func toTimerStyle(s layoutstate.FontStyle) timerfont.Style {
	if s == layoutstate.StyleItalic {
		return timerfont.StyleItalic
	}
	return timerfont.StyleNormal
}

// syncFont resolves one font slot against its requested setting, reloading
// (and clearing that slot's glyph cache through backend) only when the
// setting actually changed since the last call. On change: try an
// installed system font when the caller named one by family, falling back
// to the embedded default on any load failure. The remembered setting is
// updated either way so an unchanged setting is a no-op next frame.
func syncFont[P any, I any](backend Backend[P, I], font **timerfont.Font, cache *GlyphCache[P], remembered *layoutstate.FontSettings, requested layoutstate.FontSettings, embedded []byte, defaultWeight, defaultStretch int) {
	if remembered.Equal(requested) {
		return
	}

	var next *timerfont.Font
	if !requested.IsEmpty() && timerfont.SystemFontsAvailable {
		if f, err := timerfont.LoadSystemFont(requested.Family, toTimerStyle(requested.Style), requested.Weight, requested.Stretch); err == nil {
			next = f
		}
	}
	if next == nil {
		next = loadEmbeddedDefault(embedded, defaultWeight, defaultStretch)
	}

	*font = next
	cache.Clear(backend)
	*remembered = requested
}

// syncFonts applies syncFont to all three font slots.
func (r *Renderer[P, I]) syncFonts(backend Backend[P, I], state *layoutstate.LayoutState) {
	syncFont(backend, &r.timerFont, r.timerGlyphs, &r.timerSettings, state.TimerFont, defaultTimerFontBytes, 700, 100)
	syncFont(backend, &r.timesFont, r.timesGlyphs, &r.timesSettings, state.TimesFont, defaultTimesFontBytes, 700, 100)
	syncFont(backend, &r.textFont, r.textGlyphs, &r.textSettings, state.TextFont, defaultTextFontBytes, 400, 100)
}

// Render draws state against backend at the given pixel resolution. This
// is the library's single entry point: it runs synchronously to
// completion on the caller's thread and issues every backend call inline.
func (r *Renderer[P, I]) Render(backend Backend[P, I], widthPx, heightPx int, state *layoutstate.LayoutState) {
	r.syncFonts(backend, state)

	if state.Direction == layoutstate.Horizontal {
		r.renderHorizontal(backend, widthPx, heightPx, state)
		return
	}
	r.renderVertical(backend, widthPx, heightPx, state)
}

func (r *Renderer[P, I]) newContext(backend Backend[P, I]) *RenderContext[P, I] {
	return &RenderContext[P, I]{
		Backend:     backend,
		Transform:   Identity(),
		TimerFont:   r.timerFont,
		TimesFont:   r.timesFont,
		TextFont:    r.textFont,
		TimerGlyphs: r.timerGlyphs,
		TimesGlyphs: r.timesGlyphs,
		TextGlyphs:  r.textGlyphs,
		rectangle:   &r.rectangle,
	}
}

func (r *Renderer[P, I]) renderVertical(backend Backend[P, I], widthPx, heightPx int, state *layoutstate.LayoutState) {
	totalHeight := 0.0
	for _, c := range state.Components {
		totalHeight += ComponentHeight(c)
	}

	r.applyResizeVertical(backend, widthPx, heightPx, totalHeight)

	aspectRatio := float64(widthPx) / float64(heightPx)
	rc := r.newContext(backend)

	// Initially we are in backend coordinate space, so the background can
	// cover (0,0)-(1,1) outright without knowing anything about aspect
	// ratio or sizes.
	rc.RenderRectangle(Point{}, Point{X: 1, Y: 1}, state.Background)

	// Renderer space: non-uniformly correct for the aspect ratio.
	rc.ScaleNonUniformX(1 / aspectRatio)

	// Component space, at the first component's origin.
	rc.Scale(1 / totalHeight)

	// In vertical mode every component shares the same width.
	width := aspectRatio * totalHeight

	for _, c := range state.Components {
		height := ComponentHeight(c)
		saved := rc.Save()
		renderComponent(rc, Point{X: width, Y: height}, c, state, r.icons)
		rc.Restore(saved)
		rc.Translate(0, height)
	}
}

func (r *Renderer[P, I]) renderHorizontal(backend Backend[P, I], widthPx, heightPx int, state *layoutstate.LayoutState) {
	totalWidth := 0.0
	for _, c := range state.Components {
		totalWidth += ComponentWidth(c)
	}

	r.applyResizeHorizontal(backend, widthPx, heightPx, totalWidth)

	aspectRatio := float64(widthPx) / float64(heightPx)
	rc := r.newContext(backend)

	rc.RenderRectangle(Point{}, Point{X: 1, Y: 1}, state.Background)
	rc.ScaleNonUniformX(1 / aspectRatio)

	// Every horizontal component is TwoRowHeight tall, so that reciprocal
	// is the uniform scale into component space.
	rc.Scale(1 / TwoRowHeight)

	// A component's width preference only serves as a ratio of how much
	// of the total width to distribute to it; this factor converts the
	// preference into an actual component-space width.
	widthScaling := TwoRowHeight * aspectRatio / totalWidth

	for _, c := range state.Components {
		width := ComponentWidth(c) * widthScaling
		saved := rc.Save()
		renderComponent(rc, Point{X: width, Y: TwoRowHeight}, c, state, r.icons)
		rc.Restore(saved)
		rc.Translate(width, 0)
	}
}

// applyResizeVertical implements the resize protocol for a vertical
// frame: the first frame records the extent without resizing; an
// unchanged direction with a changed extent scales the pixel height
// proportionally; a direction change converts through
// DefaultVerticalWidth and TwoRowHeight.
func (r *Renderer[P, I]) applyResizeVertical(backend Backend[P, I], widthPx, heightPx int, totalHeight float64) {
	if !r.haveCachedSize {
		r.cachedSize = VerticalSize(totalHeight)
		r.haveCachedSize = true
		return
	}

	if cachedHeight, isVertical := r.cachedSize.IsVertical(); isVertical {
		if cachedHeight != totalHeight {
			newHeight := float64(heightPx) / cachedHeight * totalHeight
			backend.Resize(widthPx, int(newHeight+0.5))
			r.cachedSize = VerticalSize(totalHeight)
		}
		return
	}

	toPixels := float64(heightPx) / TwoRowHeight
	newHeight := totalHeight * toPixels
	newWidth := DefaultVerticalWidth * toPixels
	backend.Resize(int(newWidth+0.5), int(newHeight+0.5))
	r.cachedSize = VerticalSize(totalHeight)
}

// applyResizeHorizontal is applyResizeVertical's horizontal counterpart.
func (r *Renderer[P, I]) applyResizeHorizontal(backend Backend[P, I], widthPx, heightPx int, totalWidth float64) {
	if !r.haveCachedSize {
		r.cachedSize = HorizontalSize(totalWidth)
		r.haveCachedSize = true
		return
	}

	cachedValue, isVertical := r.cachedSize.IsVertical()
	if isVertical {
		newHeight := float64(heightPx) * TwoRowHeight / cachedValue
		newWidth := totalWidth * newHeight / TwoRowHeight
		backend.Resize(int(newWidth+0.5), int(newHeight+0.5))
		r.cachedSize = HorizontalSize(totalWidth)
		return
	}

	if cachedValue != totalWidth {
		newWidth := float64(widthPx) / cachedValue * totalWidth
		backend.Resize(int(newWidth+0.5), heightPx)
		r.cachedSize = HorizontalSize(totalWidth)
	}
}
