package search

import (
	"errors"
	"image"
	"io"
	"log/slog"
	"time"

	"github.com/soocke/screen-match-go/config"
	"github.com/soocke/screen-match-go/domain/match"
	"github.com/soocke/screen-match-go/domain/screen"
	"github.com/soocke/screen-match-go/domain/template"
)

// Searcher orchestrates capture, matching and aggregation for whole-screen
// and region-bounded searches. It holds no per-search state beyond atomic
// instrumentation counters, so concurrent unrelated searches are safe.
type Searcher struct {
	capturer screen.Capturer
	logger   *slog.Logger
	stats    counters
}

// NewSearcher constructs a Searcher over the given capture provider. A nil
// logger discards all output.
func NewSearcher(capturer screen.Capturer, logger *slog.Logger) *Searcher {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Searcher{capturer: capturer, logger: logger}
}

// FindAllOnScreen captures the full screen and returns the ranked list of
// template detections. An empty list means "not found" and is not an error.
func (s *Searcher) FindAllOnScreen(tmpl *template.Resource, cfg *config.MatchConfig) ([]match.Result, error) {
	norm, img, err := s.prepare(tmpl, cfg)
	if err != nil {
		return nil, err
	}
	frame, err := s.capturer.Grab()
	if err != nil {
		return nil, err
	}
	return s.matchFrame(frame, img, norm, 0, 0), nil
}

// FindOnScreen returns the single best detection, or nil when none exists.
func (s *Searcher) FindOnScreen(tmpl *template.Resource, cfg *config.MatchConfig) (*match.Result, error) {
	results, err := s.FindAllOnScreen(tmpl, cfg)
	if err != nil {
		return nil, err
	}
	return head(results), nil
}

// FindAllInRegion captures only the given screen region and returns ranked
// detections translated back into absolute screen coordinates. The region is
// validated against the current screen bounds before any capture happens.
func (s *Searcher) FindAllInRegion(tmpl *template.Resource, x, y, w, h int, cfg *config.MatchConfig) ([]match.Result, error) {
	norm, img, err := s.prepare(tmpl, cfg)
	if err != nil {
		return nil, err
	}
	bounds, err := s.capturer.Bounds()
	if err != nil {
		return nil, err
	}
	reg := screen.Region{X: x, Y: y, Width: w, Height: h}
	if err := screen.ValidateRegion(reg, bounds); err != nil {
		return nil, err
	}
	frame, err := s.capturer.GrabRegion(reg)
	if err != nil {
		return nil, err
	}
	return s.matchFrame(frame, img, norm, x, y), nil
}

// FindInRegion returns the single best detection within the region, or nil.
func (s *Searcher) FindInRegion(tmpl *template.Resource, x, y, w, h int, cfg *config.MatchConfig) (*match.Result, error) {
	results, err := s.FindAllInRegion(tmpl, x, y, w, h, cfg)
	if err != nil {
		return nil, err
	}
	return head(results), nil
}

// prepare resolves the configuration and decodes the template. Both fail
// before any capture work is attempted.
func (s *Searcher) prepare(tmpl *template.Resource, cfg *config.MatchConfig) (*config.MatchConfig, image.Image, error) {
	if tmpl == nil {
		return nil, nil, errors.New("search: nil template")
	}
	norm, err := config.Normalize(cfg)
	if err != nil {
		return nil, nil, err
	}
	img, err := tmpl.Decode()
	if err != nil {
		return nil, nil, err
	}
	return norm, img, nil
}

// matchFrame runs the matching pipeline over one captured frame and shifts
// every result by the region offset so coordinates stay absolute.
func (s *Searcher) matchFrame(frame *image.RGBA, tmpl image.Image, cfg *config.MatchConfig, offX, offY int) []match.Result {
	start := time.Now()
	results := match.FindAll(frame, tmpl, cfg)
	if offX != 0 || offY != 0 {
		for i := range results {
			results[i].X += offX
			results[i].Y += offY
		}
	}
	elapsed := time.Since(start)
	s.stats.record(len(results), elapsed)
	s.logger.Debug("search complete",
		"results", len(results),
		"dur", elapsed,
		"grayscale", cfg.UseGrayscale,
		"multi_scale", cfg.SearchMultipleScales,
	)
	return results
}

func head(results []match.Result) *match.Result {
	if len(results) == 0 {
		return nil
	}
	r := results[0]
	return &r
}
