// Package splitrender provides a resolution-independent 2D layout renderer
// for speedrun-timer style UIs, together with the 2D graphics primitives
// (Matrix, Path, Paint, Pixmap) it is built on.
//
// # Overview
//
// The package has two layers. The lower layer is a pure Go 2D graphics
// toolkit: paths, paints, gradients and a scanline anti-aliased
// rasterizer over a float Pixmap.
//
// The upper layer, in [Renderer] and [RenderContext], takes a declarative
// layout-state tree (see package layoutstate) describing a timer's visual
// layout — splits, timer, title, graph and so on — and drives an abstract
// [Backend] through coordinate-space setup, per-component dispatch and
// text shaping. It never touches a display or an event loop; it only
// draws.
//
// # Quick Start
//
//	backend := softbackend.New(300, 500)
//	renderer := splitrender.NewRenderer[*softbackend.Path, *softbackend.Image]()
//	renderer.Render(backend, 300, 500, state)
//	img := backend.Pixmap().ToImage()
//
// # Coordinate Spaces
//
// A frame composes four spaces. Backend space is the unit square [0,1]²,
// the final target of all transforms. Renderer space is aspect-corrected
// with y in [0,1]. Component space is local to one component, with a unit
// of 1 equal to the default row height. A pseudo-pixel is 1/24 of a
// component unit, the granularity layout files use for user-authored
// sizes. Transforms compose by pre-multiplication, so the outermost
// Render call sets the base and each component adds local transforms
// without disturbing its siblings.
//
// # Architecture
//
// The module is organized into:
//   - Layout renderer: [Renderer], [RenderContext], [Backend], the
//     per-component renderers, and layoutstate (the input tree)
//   - Text: timerfont (font wrapper, alignment strategies) on top of
//     text (shaping, outline extraction, color fonts), with the glyph
//     caches in this package
//   - Drawing primitives: [Matrix], [Path], [Paint], [Pixmap],
//     [SoftwareRenderer] and the internal raster/path/stroke packages
//   - softbackend: the reference [Backend] implementation on the CPU
//
// # Concurrency
//
// A [Renderer] and its backend are strictly single-threaded: a Render
// call runs to completion on the caller's thread and issues every backend
// call inline. Callers that share a renderer across goroutines must
// serialize access externally.
package splitrender
