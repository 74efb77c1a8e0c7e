package screen

import "image"

// Capturer supplies raw pixel data for the whole screen or a sub-region.
// Implementations own all OS interaction; failures (permissions, headless
// sessions) propagate opaquely to callers. Frames are never cached across
// calls.
type Capturer interface {
	// Bounds returns the current screen rectangle, origin (0,0).
	Bounds() (image.Rectangle, error)
	// Grab captures the full screen into a zero-origin RGBA frame.
	Grab() (*image.RGBA, error)
	// GrabRegion captures only the given region. The returned frame is
	// zero-origin; the caller is responsible for coordinate translation.
	GrabRegion(r Region) (*image.RGBA, error)
}

// normalize rebases a captured frame to a zero origin without copying pixels.
func normalize(img *image.RGBA) *image.RGBA {
	if img == nil || img.Rect.Min == (image.Point{}) {
		return img
	}
	img.Rect = image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy())
	return img
}
