package common

// Rect is an axis-aligned box with its origin at the top-left corner,
// in world pixels.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Right() float64 {
	return r.X + r.W
}

func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}

func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Intersects reports whether the two rects overlap. Edge contact does not
// count as an overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}
