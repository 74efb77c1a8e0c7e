package match

import (
	"image"
	"image/draw"
	"math"
)

// Rec.709 luminance weights, applied identically to haystack and template.
const (
	lumaR = 0.2126
	lumaG = 0.7152
	lumaB = 0.0722
)

// Scores this close to 1.0 are treated as pixel-identical to absorb float64
// rounding in the integral-image arithmetic.
const exactMatchEps = 1e-6

// framePlanes holds per-pixel channel samples of a haystack frame together
// with a summed-area table of the per-pixel channel energy. The integral
// gives O(1) window energy queries during the sliding scan.
type framePlanes struct {
	chans      int
	W, H       int
	data       []float32 // interleaved channel samples, len W*H*chans
	integralSq []float64 // per-pixel sum of squared channel values, len W*H
}

// templatePlanes holds channel samples and total energy for one (possibly
// scaled) template.
type templatePlanes struct {
	chans int
	W, H  int
	data  []float32
	sumSq float64
}

// toRGBA returns img as a zero-origin *image.RGBA, copying only when needed.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// buildFramePlanes extracts channel planes from a frame: a single luminance
// plane when grayscale is set, interleaved RGB otherwise.
func buildFramePlanes(frame *image.RGBA, grayscale bool) *framePlanes {
	w, h := frame.Rect.Dx(), frame.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	chans := 3
	if grayscale {
		chans = 1
	}
	p := &framePlanes{
		chans:      chans,
		W:          w,
		H:          h,
		data:       acquireF32(w * h * chans),
		integralSq: acquireF64(w * h),
	}
	for y := 0; y < h; y++ {
		var rowSq float64
		row := frame.Pix[y*frame.Stride:]
		for x := 0; x < w; x++ {
			r := float64(row[x*4])
			g := float64(row[x*4+1])
			b := float64(row[x*4+2])
			off := y*w + x
			if grayscale {
				v := lumaR*r + lumaG*g + lumaB*b
				p.data[off] = float32(v)
				rowSq += v * v
			} else {
				p.data[off*3] = float32(r)
				p.data[off*3+1] = float32(g)
				p.data[off*3+2] = float32(b)
				rowSq += r*r + g*g + b*b
			}
			if y == 0 {
				p.integralSq[off] = rowSq
			} else {
				p.integralSq[off] = p.integralSq[(y-1)*w+x] + rowSq
			}
		}
	}
	return p
}

func (p *framePlanes) release() {
	releaseF32(p.data)
	releaseF64(p.integralSq)
	p.data, p.integralSq = nil, nil
}

// buildTemplatePlanes extracts channel planes and total energy for a template.
func buildTemplatePlanes(tmpl image.Image, grayscale bool) *templatePlanes {
	rgba := toRGBA(tmpl)
	w, h := rgba.Rect.Dx(), rgba.Rect.Dy()
	if w == 0 || h == 0 {
		return nil
	}
	chans := 3
	if grayscale {
		chans = 1
	}
	t := &templatePlanes{chans: chans, W: w, H: h, data: acquireF32(w * h * chans)}
	for y := 0; y < h; y++ {
		row := rgba.Pix[y*rgba.Stride:]
		for x := 0; x < w; x++ {
			r := float64(row[x*4])
			g := float64(row[x*4+1])
			b := float64(row[x*4+2])
			off := y*w + x
			if grayscale {
				v := lumaR*r + lumaG*g + lumaB*b
				t.data[off] = float32(v)
				t.sumSq += v * v
			} else {
				t.data[off*3] = float32(r)
				t.data[off*3+1] = float32(g)
				t.data[off*3+2] = float32(b)
				t.sumSq += r*r + g*g + b*b
			}
		}
	}
	return t
}

func (t *templatePlanes) release() {
	releaseF32(t.data)
	t.data = nil
}

// windowSum returns the inclusive sum over rectangle [x0..x1] x [y0..y1] from
// an integral image stored in row-major order with width W.
func windowSum(integral []float64, W, x0, y0, x1, y1 int) float64 {
	at := func(x, y int) float64 {
		if x < 0 || y < 0 {
			return 0
		}
		return integral[y*W+x]
	}
	return at(x1, y1) - at(x0-1, y1) - at(x1, y0-1) + at(x0-1, y0-1)
}

// matchScale slides one scaled template over the precomputed frame planes and
// returns every local-maximum position scoring at least minConf.
//
// The similarity metric is normalized cross-correlation without mean
// subtraction: sum(F*T) / sqrt(sum(F^2)*sum(T^2)). For non-negative samples
// the score lies in [0,1] and equals 1.0 exactly when the window is
// pixel-identical to the template, uniform windows included. Degenerate
// zero-energy cases: two all-black operands score 1.0, one all-black scores 0.
func matchScale(pre *framePlanes, tp *templatePlanes, scale float64, minConf float64) []Result {
	if pre == nil || tp == nil || pre.chans != tp.chans {
		return nil
	}
	W, H, c := pre.W, pre.H, pre.chans
	w, h := tp.W, tp.H
	if w > W || h > H {
		return nil
	}
	var cands []Result
	rowLen := w * c
	for y := 0; y <= H-h; y++ {
		for x := 0; x <= W-w; x++ {
			sumF2 := windowSum(pre.integralSq, W, x, y, x+w-1, y+h-1)
			var score float64
			switch {
			case tp.sumSq == 0 && sumF2 == 0:
				score = 1
			case tp.sumSq == 0 || sumF2 == 0:
				score = 0
			default:
				var sumFT float64
				for ty := 0; ty < h; ty++ {
					fi := ((y+ty)*W + x) * c
					ti := ty * rowLen
					for i := 0; i < rowLen; i++ {
						sumFT += float64(pre.data[fi+i]) * float64(tp.data[ti+i])
					}
				}
				score = sumFT / math.Sqrt(sumF2*tp.sumSq)
				if score > 1-exactMatchEps {
					score = 1
				} else if score < 0 {
					score = 0
				}
			}
			if score >= minConf {
				cands = append(cands, Result{
					X: x, Y: y,
					Width: w, Height: h,
					Confidence: score,
					Scale:      scale,
				})
			}
		}
	}
	// Local non-maximum suppression within a window about the size of the
	// scaled template: overlapping positions collapse onto the best one.
	return suppress(cands, overlapThreshold)
}
