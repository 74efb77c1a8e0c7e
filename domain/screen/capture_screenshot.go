//go:build !windows

package screen

import (
	"image"

	"github.com/vova616/screenshot"
)

// screenshotCapturer is the default capture provider on non-Windows systems,
// backed by the screenshot library's X11/Quartz grabbers.
type screenshotCapturer struct{}

// NewCapturer returns the platform capture provider.
func NewCapturer() Capturer { return screenshotCapturer{} }

func (screenshotCapturer) Bounds() (image.Rectangle, error) {
	r, err := screenshot.ScreenRect()
	if err != nil {
		return image.Rectangle{}, err
	}
	return image.Rect(0, 0, r.Dx(), r.Dy()), nil
}

func (screenshotCapturer) Grab() (*image.RGBA, error) {
	return screenshot.CaptureScreen()
}

func (screenshotCapturer) GrabRegion(r Region) (*image.RGBA, error) {
	img, err := screenshot.CaptureRect(r.Rect())
	if err != nil {
		return nil, err
	}
	return normalize(img), nil
}
