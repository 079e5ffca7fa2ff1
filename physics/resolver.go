package physics

// Occupancy answers whether a world point is solid.
type Occupancy interface {
	IsBlocked(x, y float64) bool
}

// OccupancyFunc adapts a plain function to Occupancy.
type OccupancyFunc func(x, y float64) bool

func (f OccupancyFunc) IsBlocked(x, y float64) bool { return f(x, y) }

// Axis selects the axes a probe samples.
type Axis uint8

const (
	AxisX Axis = 1 << iota
	AxisY
)

// leadingCorners returns the two corners of b that face the direction of travel,
// sampled after b has moved by (dx, dy). The far edges are the last pixel inside
// the box, so a body flush against a wall is not reported as overlapping it.
func leadingCorners(b Body, dx, dy float64, axis Axis) (x1, y1, x2, y2 float64) {
	left := b.X + dx
	top := b.Y + dy
	right := left + b.Width() - 1
	bottom := top + b.Height() - 1

	if axis == AxisX {
		if dx > 0 {
			return right, top, right, bottom
		}
		return left, top, left, bottom
	}
	if dy > 0 {
		return left, bottom, right, bottom
	}
	return left, top, right, top
}

// Probe reports whether moving b by (dx, dy) would put a leading corner in blocked
// space. An axis listed in ignore is neither sampled nor applied as an offset when
// sampling the other axis, so a vertical probe accepts a body whose only contact
// on the horizontal axis is a shared corner.
func Probe(occ Occupancy, b Body, dx, dy int, ignore Axis) bool {
	fx, fy := float64(dx), float64(dy)
	if ignore&AxisX != 0 {
		fx = 0
	}
	if ignore&AxisY != 0 {
		fy = 0
	}
	if dx != 0 && ignore&AxisX == 0 {
		x1, y1, x2, y2 := leadingCorners(b, fx, fy, AxisX)
		if occ.IsBlocked(x1, y1) || occ.IsBlocked(x2, y2) {
			return true
		}
	}
	if dy != 0 && ignore&AxisY == 0 {
		x1, y1, x2, y2 := leadingCorners(b, fx, fy, AxisY)
		if occ.IsBlocked(x1, y1) || occ.IsBlocked(x2, y2) {
			return true
		}
	}
	return false
}

// TryMoveUnit moves b by one unit along a single axis unless either leading corner
// would land in blocked space. dx and dy must be in {-1, 0, 1} with at most one of
// them non-zero; anything else is rejected without moving.
func TryMoveUnit(occ Occupancy, b *Body, dx, dy int) bool {
	if dx < -1 || dx > 1 || dy < -1 || dy > 1 || (dx != 0 && dy != 0) {
		return false
	}
	if dx == 0 && dy == 0 {
		return true
	}
	if Probe(occ, *b, dx, dy, 0) {
		return false
	}
	b.X += float64(dx)
	b.Y += float64(dy)
	return true
}

// Step performs up to n unit moves in direction (dx, dy) and stops at the first
// rejected one. It returns the number of units actually moved, so the result is
// the longest unblocked prefix of the request.
func Step(occ Occupancy, b *Body, dx, dy, n int) int {
	moved := 0
	for moved < n {
		if !TryMoveUnit(occ, b, dx, dy) {
			break
		}
		moved++
	}
	return moved
}

// Fits reports whether all four corners of b are in open space. Boxes no larger
// than one tile cannot straddle a solid tile without a corner inside it.
func Fits(occ Occupancy, b Body) bool {
	right := b.X + b.Width() - 1
	bottom := b.Y + b.Height() - 1
	return !occ.IsBlocked(b.X, b.Y) && !occ.IsBlocked(right, b.Y) &&
		!occ.IsBlocked(b.X, bottom) && !occ.IsBlocked(right, bottom)
}
