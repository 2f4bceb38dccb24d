package splitrender

import (
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/splitrender/layoutstate"
	"github.com/gogpu/splitrender/timerfont"
)

func mustFont(t *testing.T, data []byte, weight int) *timerfont.Font {
	t.Helper()
	f, err := timerfont.NewFontFromBytes(data, 0, timerfont.StyleNormal, weight, 100)
	if err != nil {
		t.Fatalf("NewFontFromBytes: %v", err)
	}
	return f
}

func newTestContext(t *testing.T, backend *fakeBackend) *RenderContext[int, int] {
	t.Helper()
	return &RenderContext[int, int]{
		Backend:     backend,
		Transform:   Identity(),
		TimerFont:   mustFont(t, gomonobold.TTF, 700),
		TimesFont:   mustFont(t, gobold.TTF, 700),
		TextFont:    mustFont(t, goregular.TTF, 400),
		TimerGlyphs: NewGlyphCache[int](),
		TimesGlyphs: NewGlyphCache[int](),
		TextGlyphs:  NewGlyphCache[int](),
		rectangle:   &cachedPath[int]{},
	}
}

func TestRenderRectangleTransparentSkipsDraw(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	rc.RenderRectangle(Point{}, Point{X: 1, Y: 1}, layoutstate.Transparent)

	if len(backend.ops) != 0 {
		t.Errorf("transparent gradient issued %d draw calls, want 0", len(backend.ops))
	}
	if len(backend.alivePaths) != 0 {
		t.Errorf("transparent gradient created %d paths, want 0", len(backend.alivePaths))
	}
}

func TestRenderRectangleReusesUnitRect(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	red := layoutstate.Plain(layoutstate.Color{R: 1, A: 1})
	rc.RenderRectangle(Point{}, Point{X: 1, Y: 1}, red)
	rc.RenderRectangle(Point{X: 0.2, Y: 0.2}, Point{X: 0.8, Y: 0.6}, red)

	if len(backend.alivePaths) != 1 {
		t.Fatalf("two rectangle draws created %d paths, want 1 cached unit rect", len(backend.alivePaths))
	}
	for _, op := range backend.ops {
		if !strings.HasPrefix(op, "fill p1 ") {
			t.Errorf("draw did not use the cached rectangle: %q", op)
		}
	}
}

func TestRenderRectangleEncodesBoxInTransform(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	rc.RenderRectangle(Point{X: 2, Y: 3}, Point{X: 6, Y: 5}, layoutstate.Plain(layoutstate.Color{A: 1}))

	want := matrixString(Identity().PreTranslate(2, 3).PreScaleXY(4, 2))
	if len(backend.ops) != 1 || !strings.HasSuffix(backend.ops[0], want) {
		t.Errorf("rectangle transform = %v, want suffix %v", backend.ops, want)
	}
}

func TestRenderIconLetterboxesWideIcon(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	img := backend.CreateImage(2, 1, make([]byte, 8))
	icon := Icon[int]{Image: img, AspectRatio: 2}

	rc.RenderIcon(Point{}, Point{X: 1, Y: 1}, icon)

	// A 2:1 icon in a square box keeps the full width and centers a
	// half-height band vertically.
	want := matrixString(Identity().PreTranslate(0, 0.25).PreScaleXY(1, 0.5))
	if len(backend.ops) != 1 || !strings.HasSuffix(backend.ops[0], want) {
		t.Errorf("icon transform = %v, want suffix %v", backend.ops, want)
	}
}

func TestRenderIconLetterboxesTallIcon(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	img := backend.CreateImage(1, 2, make([]byte, 8))
	icon := Icon[int]{Image: img, AspectRatio: 0.5}

	rc.RenderIcon(Point{}, Point{X: 1, Y: 1}, icon)

	want := matrixString(Identity().PreTranslate(0.25, 0).PreScaleXY(0.5, 1))
	if len(backend.ops) != 1 || !strings.HasSuffix(backend.ops[0], want) {
		t.Errorf("icon transform = %v, want suffix %v", backend.ops, want)
	}
}

func TestRenderTextEllipsisStaysWithinMaxX(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	shader := SolidColor(RGBA{A: 1})
	full := rc.MeasureText("A Rather Long Segment Name", 0.8)
	maxX := Padding + full/3

	end := rc.RenderTextEllipsis("A Rather Long Segment Name", Point{X: Padding, Y: 0.7}, 0.8, shader, maxX)
	if end > maxX+1e-9 {
		t.Errorf("ellipsized text ended at %v, past maxX %v", end, maxX)
	}
	if len(backend.ops) == 0 {
		t.Error("expected glyph draw calls")
	}
}

func TestRenderNumbersMatchesMeasureNumbers(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	const text = "1:23.45"
	width := rc.MeasureNumbers(text, 0.8)
	if width <= 0 {
		t.Fatalf("MeasureNumbers = %v, want > 0", width)
	}

	end := rc.RenderNumbers(text, Point{X: 5, Y: 0.7}, 0.8, SolidColor(RGBA{A: 1}))
	if got := 5 - end; !near6(got, width) {
		t.Errorf("rendered width %v, measured %v", got, width)
	}
}

func TestChooseAbbreviationPicksWidestFitting(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	candidates := []string{"Sum of Best Segments", "Sum of Best", "SoB"}
	midWidth := rc.MeasureText("Sum of Best", 0.8)

	got := rc.ChooseAbbreviation(candidates, 0.8, midWidth+0.01)
	if got != "Sum of Best" {
		t.Errorf("ChooseAbbreviation = %q, want %q", got, "Sum of Best")
	}
}

func TestChooseAbbreviationFallsBackToWidest(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	candidates := []string{"Sum of Best", "Sum of Best Segments", "SoB"}
	got := rc.ChooseAbbreviation(candidates, 0.8, 0.0001)
	if got != "Sum of Best Segments" {
		t.Errorf("ChooseAbbreviation = %q, want the overall widest", got)
	}
}

func TestChooseAbbreviationEmpty(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)

	if got := rc.ChooseAbbreviation(nil, 0.8, 1); got != "" {
		t.Errorf("ChooseAbbreviation(nil) = %q, want empty", got)
	}
}

func TestNilFontDegradesToNoOp(t *testing.T) {
	backend := newFakeBackend()
	rc := newTestContext(t, backend)
	rc.TextFont = nil
	rc.TimerFont = nil
	rc.TimesFont = nil

	shader := SolidColor(RGBA{A: 1})
	if got := rc.RenderTextEllipsis("x", Point{X: 1}, 0.8, shader, 5); got != 1 {
		t.Errorf("nil-font ellipsis moved the cursor to %v", got)
	}
	if got := rc.RenderTimer("1:23", Point{X: 4}, 1, shader); got != 4 {
		t.Errorf("nil-font timer moved the cursor to %v", got)
	}
	if len(backend.ops) != 0 {
		t.Errorf("nil fonts issued %d draw calls, want 0", len(backend.ops))
	}
}
