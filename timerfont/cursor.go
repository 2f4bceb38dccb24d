package timerfont

// Cursor is the mutable pen position advanced by shaping passes.
type Cursor struct {
	X, Y float64
}
