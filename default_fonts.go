package splitrender

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Embedded default font assets: a bold monospace face for the timer slot
// (tabular by construction, so the clock never jitters), a bold face for
// the times slot, and a regular face for general text. A layout state that
// requests no explicit font gets these; an explicit font that fails to
// load falls back to them as well.
var (
	defaultTimerFontBytes = gomonobold.TTF
	defaultTimesFontBytes = gobold.TTF
	defaultTextFontBytes  = goregular.TTF
)
