package component

// Rect is an axis-aligned box in screen space, top-left anchored.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Intersects reports whether the two boxes share a non-empty area.
// Boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		r.X+r.Width > other.X &&
		r.Y < other.Y+other.Height &&
		r.Y+r.Height > other.Y
}

// Inset shrinks the box by pad on every side.
func (r Rect) Inset(pad float64) Rect {
	return Rect{
		X:      r.X + pad,
		Y:      r.Y + pad,
		Width:  r.Width - 2*pad,
		Height: r.Height - 2*pad,
	}
}
