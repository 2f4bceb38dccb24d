package splitrender

import (
	"fmt"
	"strings"
)

// fakeBackend is a recording Backend used across the renderer tests. Path
// and image handles are plain ints so ownership bugs (double free, use
// after free) show up as test failures rather than memory corruption.
type fakeBackend struct {
	nextPath  int
	nextImage int

	alivePaths  map[int][]string // path id -> recorded commands
	aliveImages map[int][2]int   // image id -> dimensions
	pathSig     map[int]string   // path id -> command signature, survives FreePath

	ops      []string
	canonOps []string // like ops, but path ids replaced by their signatures
	resizes  [][2]int

	errors []string
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		alivePaths:  make(map[int][]string),
		aliveImages: make(map[int][2]int),
		pathSig:     make(map[int]string),
	}
}

type fakeBuilder struct {
	backend *fakeBackend
	cmds    []string
	done    bool
}

func (b *fakeBuilder) MoveTo(x, y float64) {
	b.cmds = append(b.cmds, fmt.Sprintf("M %.6g %.6g", x, y))
}

func (b *fakeBuilder) LineTo(x, y float64) {
	b.cmds = append(b.cmds, fmt.Sprintf("L %.6g %.6g", x, y))
}

func (b *fakeBuilder) QuadTo(cx, cy, x, y float64) {
	b.cmds = append(b.cmds, fmt.Sprintf("Q %.6g %.6g %.6g %.6g", cx, cy, x, y))
}

func (b *fakeBuilder) CurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	b.cmds = append(b.cmds, fmt.Sprintf("C %.6g %.6g %.6g %.6g %.6g %.6g", c1x, c1y, c2x, c2y, x, y))
}

func (b *fakeBuilder) Close() {
	b.cmds = append(b.cmds, "Z")
}

func (b *fakeBuilder) Finish() int {
	if b.done {
		b.backend.errors = append(b.backend.errors, "builder finished twice")
	}
	b.done = true
	b.backend.nextPath++
	id := b.backend.nextPath
	b.backend.alivePaths[id] = b.cmds
	b.backend.pathSig[id] = strings.Join(b.cmds, ";")
	return id
}

func (f *fakeBackend) FillBuilder() PathBuilder[int] {
	return &fakeBuilder{backend: f}
}

func (f *fakeBackend) StrokeBuilder(width float64) PathBuilder[int] {
	return &fakeBuilder{backend: f}
}

func (f *fakeBackend) checkPath(path int) {
	if _, ok := f.alivePaths[path]; !ok {
		f.errors = append(f.errors, fmt.Sprintf("use of unknown or freed path %d", path))
	}
}

func shaderString(s Shader) string {
	if c, ok := s.IsSolid(); ok {
		return fmt.Sprintf("solid(%.3g %.3g %.3g %.3g)", c.R, c.G, c.B, c.A)
	}
	a, b, vertical := s.Endpoints()
	axis := "h"
	if vertical {
		axis = "v"
	}
	return fmt.Sprintf("grad%s(%.3g %.3g %.3g %.3g -> %.3g %.3g %.3g %.3g)", axis, a.R, a.G, a.B, a.A, b.R, b.G, b.B, b.A)
}

func matrixString(m Matrix) string {
	return fmt.Sprintf("[%.6g %.6g %.6g %.6g %.6g %.6g]", m.A, m.B, m.C, m.D, m.E, m.F)
}

func (f *fakeBackend) RenderFillPath(path int, shader Shader, transform Matrix) {
	f.checkPath(path)
	f.ops = append(f.ops, fmt.Sprintf("fill p%d %s %s", path, shaderString(shader), matrixString(transform)))
	f.canonOps = append(f.canonOps, fmt.Sprintf("fill {%s} %s %s", f.pathSig[path], shaderString(shader), matrixString(transform)))
}

func (f *fakeBackend) RenderStrokePath(path int, strokeWidth float64, color RGBA, transform Matrix) {
	f.checkPath(path)
	f.ops = append(f.ops, fmt.Sprintf("stroke p%d w%.4g %s", path, strokeWidth, matrixString(transform)))
	f.canonOps = append(f.canonOps, fmt.Sprintf("stroke {%s} w%.4g %s", f.pathSig[path], strokeWidth, matrixString(transform)))
}

func (f *fakeBackend) RenderImage(image int, rectanglePath int, transform Matrix) {
	f.checkPath(rectanglePath)
	if _, ok := f.aliveImages[image]; !ok {
		f.errors = append(f.errors, fmt.Sprintf("use of unknown or freed image %d", image))
	}
	f.ops = append(f.ops, fmt.Sprintf("image i%d p%d %s", image, rectanglePath, matrixString(transform)))
	f.canonOps = append(f.canonOps, fmt.Sprintf("image p%d %s", rectanglePath, matrixString(transform)))
}

func (f *fakeBackend) CreateImage(width, height int, rgba8 []byte) int {
	if len(rgba8) != width*height*4 {
		f.errors = append(f.errors, fmt.Sprintf("CreateImage %dx%d with %d bytes", width, height, len(rgba8)))
	}
	f.nextImage++
	id := f.nextImage
	f.aliveImages[id] = [2]int{width, height}
	return id
}

func (f *fakeBackend) FreePath(path int) {
	if _, ok := f.alivePaths[path]; !ok {
		f.errors = append(f.errors, fmt.Sprintf("double free of path %d", path))
		return
	}
	delete(f.alivePaths, path)
}

func (f *fakeBackend) FreeImage(image int) {
	if _, ok := f.aliveImages[image]; !ok {
		f.errors = append(f.errors, fmt.Sprintf("double free of image %d", image))
		return
	}
	delete(f.aliveImages, image)
}

func (f *fakeBackend) Resize(widthPx, heightPx int) {
	f.resizes = append(f.resizes, [2]int{widthPx, heightPx})
}

// opLog renders the recorded draw calls as one comparable string.
func (f *fakeBackend) opLog() string {
	return strings.Join(f.ops, "\n")
}

// canonLog is opLog with path ids replaced by the paths' command
// signatures, so two logs compare equal even when handle numbering
// differs (e.g. after a glyph cache cycle re-tessellated everything).
func (f *fakeBackend) canonLog() string {
	return strings.Join(f.canonOps, "\n")
}
