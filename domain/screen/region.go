package screen

import (
	"fmt"
	"image"
)

// Region is an absolute, bounded rectangle of screen coordinates.
type Region struct {
	X, Y          int
	Width, Height int
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// BoundsError reports a search region that cannot be captured: non-positive
// dimensions, a negative origin, or a rectangle exceeding the screen bounds.
// It is returned before any capture call is made.
type BoundsError struct {
	Region Region
	Screen image.Rectangle
	Msg    string
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("screen: region %+v: %s", e.Region, e.Msg)
}

// ValidateRegion checks that r is well-formed and fully contained within the
// given screen bounds.
func ValidateRegion(r Region, screen image.Rectangle) error {
	if r.Width <= 0 || r.Height <= 0 {
		return &BoundsError{Region: r, Screen: screen, Msg: "non-positive dimensions"}
	}
	if r.X < 0 || r.Y < 0 {
		return &BoundsError{Region: r, Screen: screen, Msg: "negative origin"}
	}
	if !r.Rect().In(screen) {
		return &BoundsError{Region: r, Screen: screen, Msg: fmt.Sprintf("exceeds screen bounds %v", screen)}
	}
	return nil
}
