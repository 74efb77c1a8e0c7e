package match

import (
	"image"
	"runtime"
	"sync"

	"github.com/soocke/screen-match-go/config"
)

// FindAll runs the full matching pipeline for one haystack frame: scale-space
// expansion, one NCC scan per scale with workers bounded by the CPU count, and
// cross-scale aggregation. The returned results are ordered by confidence and
// truncated to cfg.Limit; coordinates are relative to the haystack origin.
//
// cfg must already be normalized. FindAll is a pure function of its inputs
// and holds no state between calls, so unrelated searches may run
// concurrently.
func FindAll(haystack, tmpl image.Image, cfg *config.MatchConfig) []Result {
	if haystack == nil || tmpl == nil {
		return nil
	}
	frame := toRGBA(haystack)
	tb := tmpl.Bounds()
	steps := ScaleSpace(tb.Dx(), tb.Dy(), frame.Rect.Dx(), frame.Rect.Dy(), cfg)
	if len(steps) == 0 {
		return nil
	}

	pre := buildFramePlanes(frame, cfg.UseGrayscale)
	if pre == nil {
		return nil
	}
	defer pre.release()

	results := make(chan []Result, len(steps))
	var wg sync.WaitGroup
	sem := make(chan struct{}, runtime.NumCPU())
	for _, st := range steps {
		wg.Add(1)
		sem <- struct{}{}
		go func(st ScaleStep) {
			defer wg.Done()
			defer func() { <-sem }()
			tp := buildTemplatePlanes(resizeTemplate(tmpl, st), cfg.UseGrayscale)
			if tp == nil {
				return
			}
			cands := matchScale(pre, tp, st.Scale, cfg.Confidence)
			tp.release()
			if len(cands) > 0 {
				results <- cands
			}
		}(st)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var all []Result
	for cs := range results {
		all = append(all, cs...)
	}
	return Aggregate(all, cfg.Limit)
}
