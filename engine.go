package screenmatch

import (
	"io"
	"log/slog"

	"github.com/soocke/screen-match-go/config"
	"github.com/soocke/screen-match-go/domain/match"
	"github.com/soocke/screen-match-go/domain/screen"
	"github.com/soocke/screen-match-go/domain/search"
	"github.com/soocke/screen-match-go/domain/template"
)

// Engine is the assembled matching pipeline: a capture provider, a logger and
// the search orchestration behind one entry point. Engines are stateless
// between calls apart from instrumentation counters and may be shared across
// goroutines.
type Engine struct {
	capturer screen.Capturer
	logger   *slog.Logger
	searcher *search.Searcher
}

// Option configures an Engine during construction.
type Option func(*Engine)

// WithCapturer replaces the platform capture provider.
func WithCapturer(c screen.Capturer) Option {
	return func(e *Engine) { e.capturer = c }
}

// WithLogger attaches a structured logger; by default all output is
// discarded.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithDebug installs a JSON logger at debug level, which emits a line per
// search pass and per poll state transition.
func WithDebug() Option {
	return func(e *Engine) { e.logger = NewLogger(slog.LevelDebug) }
}

// New assembles an Engine. Without options it captures through the platform
// provider and logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.capturer == nil {
		e.capturer = screen.NewCapturer()
	}
	if e.logger == nil {
		e.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	e.searcher = search.NewSearcher(e.capturer, e.logger)
	return e
}

// FindOnScreen captures the full screen and returns the best detection of the
// template, or nil when none reaches the configured confidence.
func (e *Engine) FindOnScreen(tmpl *template.Resource, cfg *config.MatchConfig) (*match.Result, error) {
	return e.searcher.FindOnScreen(tmpl, cfg)
}

// FindAllOnScreen captures the full screen and returns the full ranked list.
func (e *Engine) FindAllOnScreen(tmpl *template.Resource, cfg *config.MatchConfig) ([]match.Result, error) {
	return e.searcher.FindAllOnScreen(tmpl, cfg)
}

// FindInRegion searches only the given absolute screen rectangle and returns
// the best detection in absolute coordinates, or nil.
func (e *Engine) FindInRegion(tmpl *template.Resource, x, y, w, h int, cfg *config.MatchConfig) (*match.Result, error) {
	return e.searcher.FindInRegion(tmpl, x, y, w, h, cfg)
}

// FindAllInRegion is the region-bounded variant of FindAllOnScreen.
func (e *Engine) FindAllInRegion(tmpl *template.Resource, x, y, w, h int, cfg *config.MatchConfig) ([]match.Result, error) {
	return e.searcher.FindAllInRegion(tmpl, x, y, w, h, cfg)
}

// WaitFor polls until the template appears or the timeout elapses.
func (e *Engine) WaitFor(tmpl *template.Resource, cfg *config.MatchConfig, opts search.WaitOptions) (*match.Result, error) {
	return e.searcher.WaitFor(tmpl, cfg, opts)
}

// WaitForGone polls until the template disappears or the timeout elapses.
func (e *Engine) WaitForGone(tmpl *template.Resource, cfg *config.MatchConfig, opts search.WaitOptions) (bool, error) {
	return e.searcher.WaitForGone(tmpl, cfg, opts)
}

// Stats returns a snapshot of the engine's search counters.
func (e *Engine) Stats() search.Stats {
	return e.searcher.Stats()
}
