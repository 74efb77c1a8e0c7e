package match

import (
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/soocke/screen-match-go/config"
)

// ScaleStep is one entry of the scale space: a resize factor plus the
// resulting template dimensions.
type ScaleStep struct {
	Scale float64
	W, H  int
}

// ScaleSpace expands a template into the ordered list of scaled variants to
// search. With multi-scale disabled exactly one step at 1.0 is produced.
// Scaled dimensions round to nearest and clamp to 1x1; any scale whose
// template would exceed the haystack in either axis cannot match and is
// skipped rather than reported as an error.
func ScaleSpace(tmplW, tmplH, hayW, hayH int, cfg *config.MatchConfig) []ScaleStep {
	if tmplW <= 0 || tmplH <= 0 {
		return nil
	}
	if !cfg.SearchMultipleScales {
		if tmplW > hayW || tmplH > hayH {
			return nil
		}
		return []ScaleStep{{Scale: 1.0, W: tmplW, H: tmplH}}
	}
	steps := make([]ScaleStep, 0, len(cfg.ScaleSteps))
	for _, s := range cfg.ScaleSteps {
		w := int(math.Round(float64(tmplW) * s))
		h := int(math.Round(float64(tmplH) * s))
		if w < 1 {
			w = 1
		}
		if h < 1 {
			h = 1
		}
		if w > hayW || h > hayH {
			continue
		}
		steps = append(steps, ScaleStep{Scale: s, W: w, H: h})
	}
	return steps
}

// resizeTemplate produces the scaled template for one step. The identity step
// returns the original; everything else resamples with a triangle filter.
func resizeTemplate(tmpl image.Image, step ScaleStep) image.Image {
	b := tmpl.Bounds()
	if step.W == b.Dx() && step.H == b.Dy() {
		return tmpl
	}
	return imaging.Resize(tmpl, step.W, step.H, imaging.Linear)
}
