package screen

import (
	"errors"
	"image"
	"testing"
)

func TestValidateRegionOK(t *testing.T) {
	bounds := image.Rect(0, 0, 1920, 1080)
	if err := ValidateRegion(Region{X: 0, Y: 0, Width: 1920, Height: 1080}, bounds); err != nil {
		t.Fatalf("full-screen region must validate: %v", err)
	}
	if err := ValidateRegion(Region{X: 100, Y: 200, Width: 50, Height: 60}, bounds); err != nil {
		t.Fatalf("inner region must validate: %v", err)
	}
}

func TestValidateRegionFailures(t *testing.T) {
	bounds := image.Rect(0, 0, 800, 600)
	cases := []struct {
		name string
		r    Region
	}{
		{"zero width", Region{X: 0, Y: 0, Width: 0, Height: 10}},
		{"negative height", Region{X: 0, Y: 0, Width: 10, Height: -5}},
		{"negative origin x", Region{X: -1, Y: 0, Width: 10, Height: 10}},
		{"negative origin y", Region{X: 0, Y: -3, Width: 10, Height: 10}},
		{"exceeds width", Region{X: 795, Y: 0, Width: 10, Height: 10}},
		{"exceeds height", Region{X: 0, Y: 595, Width: 10, Height: 10}},
	}
	for _, tc := range cases {
		err := ValidateRegion(tc.r, bounds)
		var berr *BoundsError
		if !errors.As(err, &berr) {
			t.Fatalf("%s: expected BoundsError, got %v", tc.name, err)
		}
	}
}

func TestRegionRect(t *testing.T) {
	r := Region{X: 10, Y: 20, Width: 30, Height: 40}
	if got := r.Rect(); got != image.Rect(10, 20, 40, 60) {
		t.Fatalf("rect conversion wrong: %v", got)
	}
}
