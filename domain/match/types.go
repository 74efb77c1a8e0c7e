package match

// Result is a single template detection in absolute screen coordinates.
type Result struct {
	X, Y          int
	Width, Height int
	Confidence    float64
	Scale         float64
}

// Center returns the midpoint of the matched region.
func (r Result) Center() (x, y int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Right returns the x coordinate one past the right edge.
func (r Result) Right() int { return r.X + r.Width }

// Bottom returns the y coordinate one past the bottom edge.
func (r Result) Bottom() int { return r.Y + r.Height }

// Area returns the region area in pixels.
func (r Result) Area() int { return r.Width * r.Height }

// Overlaps reports whether the two regions intersect.
func (r Result) Overlaps(o Result) bool {
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// IoU returns the intersection-over-union of the two regions.
func (r Result) IoU(o Result) float64 {
	if !r.Overlaps(o) {
		return 0
	}
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	inter := (x1 - x0) * (y1 - y0)
	union := r.Area() + o.Area() - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}
