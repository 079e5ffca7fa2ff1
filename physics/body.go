package physics

// Body is an axis-aligned box anchored at its top-left corner.
// Width is Size and height is twice Size.
type Body struct {
	X, Y float64
	Size float64
}

func (b Body) Width() float64  { return b.Size }
func (b Body) Height() float64 { return 2 * b.Size }
func (b Body) Right() float64  { return b.X + b.Width() }
func (b Body) Bottom() float64 { return b.Y + b.Height() }

// Center returns the midpoint of the box.
func (b Body) Center() (float64, float64) {
	return b.X + b.Width()/2, b.Y + b.Height()/2
}

// Rect returns the box as a rectangle.
func (b Body) Rect() Rect {
	return Rect{X: b.X, Y: b.Y, W: b.Width(), H: b.Height()}
}

// Overlaps reports whether the two boxes share any area.
func (b Body) Overlaps(o Body) bool {
	return b.Rect().Overlaps(o.Rect())
}

// Contains reports whether the point lies inside the box.
func (b Body) Contains(x, y float64) bool {
	return x >= b.X && x < b.Right() && y >= b.Y && y < b.Bottom()
}

// Rect is a free-form axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && o.X < r.X+r.W && r.Y < o.Y+o.H && o.Y < r.Y+r.H
}
