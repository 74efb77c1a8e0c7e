package match

import (
	"testing"

	"github.com/soocke/screen-match-go/config"
)

func TestScaleSpaceSingleScale(t *testing.T) {
	cfg := config.DefaultConfig().WithMultiScale(false)
	steps := ScaleSpace(30, 20, 100, 100, cfg)
	if len(steps) != 1 {
		t.Fatalf("expected exactly one step, got %d", len(steps))
	}
	if steps[0].Scale != 1.0 || steps[0].W != 30 || steps[0].H != 20 {
		t.Fatalf("unexpected step %+v", steps[0])
	}
}

func TestScaleSpaceDims(t *testing.T) {
	cfg := config.DefaultConfig().WithScaleSteps([]float64{1.0, 0.5, 0.25})
	steps := ScaleSpace(40, 30, 200, 200, cfg)
	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	// round(40*0.5)=20, round(30*0.25)=8
	if steps[1].W != 20 || steps[1].H != 15 {
		t.Fatalf("0.5 step dims wrong: %+v", steps[1])
	}
	if steps[2].W != 10 || steps[2].H != 8 {
		t.Fatalf("0.25 step dims wrong: %+v", steps[2])
	}
}

func TestScaleSpaceSkipsOversized(t *testing.T) {
	cfg := config.DefaultConfig().WithScaleSteps([]float64{2.0, 1.0, 0.5})
	steps := ScaleSpace(40, 30, 60, 60, cfg)
	// 2.0 would be 80x60 and exceed the 60-wide haystack; skipped, not an error.
	if len(steps) != 2 {
		t.Fatalf("expected oversized scale skipped, got %+v", steps)
	}
	if steps[0].Scale != 1.0 || steps[1].Scale != 0.5 {
		t.Fatalf("order not preserved: %+v", steps)
	}
}

func TestScaleSpaceClampsToOnePixel(t *testing.T) {
	cfg := config.DefaultConfig().WithScaleSteps([]float64{0.1})
	steps := ScaleSpace(3, 3, 100, 100, cfg)
	if len(steps) != 1 || steps[0].W != 1 || steps[0].H != 1 {
		t.Fatalf("expected 1x1 clamp, got %+v", steps)
	}
}

func TestScaleSpaceSingleScaleOversizedTemplate(t *testing.T) {
	cfg := config.DefaultConfig().WithMultiScale(false)
	if steps := ScaleSpace(200, 200, 100, 100, cfg); len(steps) != 0 {
		t.Fatalf("oversized template cannot match, got %+v", steps)
	}
}
