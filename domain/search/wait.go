package search

import (
	"image"
	"time"

	"github.com/corona10/goimagehash"

	"github.com/soocke/screen-match-go/config"
	"github.com/soocke/screen-match-go/domain/match"
	"github.com/soocke/screen-match-go/domain/template"
)

// PollState tracks where a wait loop is in its lifecycle.
type PollState int

const (
	StatePolling PollState = iota
	StateFound
	StateTimedOut
)

func (s PollState) String() string {
	switch s {
	case StatePolling:
		return "polling"
	case StateFound:
		return "found"
	case StateTimedOut:
		return "timed_out"
	}
	return "unknown"
}

const (
	DefaultWaitTimeout  = 10 * time.Second
	DefaultWaitInterval = 500 * time.Millisecond
)

// WaitOptions controls the polling cadence. Zero values fall back to the
// defaults. Each attempt performs one full capture+match pass whose cost is
// not excluded from the timeout budget, so the true cadence is
// Interval + search cost.
type WaitOptions struct {
	Timeout  time.Duration
	Interval time.Duration
	// SkipUnchanged reuses the previous attempt's outcome when the captured
	// frame's perceptual hash is identical to the previous frame's, saving a
	// full multi-scale pass on a static screen. The hash is lossy, so leave
	// this off when single-pixel changes must be caught.
	SkipUnchanged bool
}

func (o WaitOptions) withDefaults() WaitOptions {
	if o.Timeout <= 0 {
		o.Timeout = DefaultWaitTimeout
	}
	if o.Interval <= 0 {
		o.Interval = DefaultWaitInterval
	}
	return o
}

// WaitFor polls the screen until the template appears or the timeout elapses.
// A match returns immediately with no extra delay; deadline expiry returns
// (nil, nil). Any underlying error aborts the loop and propagates unmodified.
func (s *Searcher) WaitFor(tmpl *template.Resource, cfg *config.MatchConfig, opts WaitOptions) (*match.Result, error) {
	opts = opts.withDefaults()
	norm, img, err := s.prepare(tmpl, cfg)
	if err != nil {
		return nil, err
	}
	start := time.Now()
	state := StatePolling
	var prevHash *goimagehash.ImageHash
	for {
		frame, err := s.capturer.Grab()
		if err != nil {
			return nil, err
		}
		run := true
		if opts.SkipUnchanged {
			// Prior attempts found nothing; an unchanged frame cannot
			// flip the outcome, so the match pass is skipped.
			run, prevHash = frameChanged(frame, prevHash)
		}
		if run {
			if best := head(s.matchFrame(frame, img, norm, 0, 0)); best != nil {
				s.transition(&state, StateFound)
				return best, nil
			}
		}
		time.Sleep(opts.Interval)
		if time.Since(start) >= opts.Timeout {
			s.transition(&state, StateTimedOut)
			return nil, nil
		}
	}
}

// WaitForGone polls the screen while the template is still found. It returns
// true the moment a pass finds no match, false when the deadline expires with
// the template still present.
func (s *Searcher) WaitForGone(tmpl *template.Resource, cfg *config.MatchConfig, opts WaitOptions) (bool, error) {
	opts = opts.withDefaults()
	norm, img, err := s.prepare(tmpl, cfg)
	if err != nil {
		return false, err
	}
	start := time.Now()
	state := StatePolling
	var prevHash *goimagehash.ImageHash
	for {
		frame, err := s.capturer.Grab()
		if err != nil {
			return false, err
		}
		run := true
		if opts.SkipUnchanged {
			// All prior passes still saw the template; a frame identical
			// to the last one still does.
			run, prevHash = frameChanged(frame, prevHash)
		}
		if run {
			if head(s.matchFrame(frame, img, norm, 0, 0)) == nil {
				s.transition(&state, StateFound)
				return true, nil
			}
		}
		time.Sleep(opts.Interval)
		if time.Since(start) >= opts.Timeout {
			s.transition(&state, StateTimedOut)
			return false, nil
		}
	}
}

// frameChanged perceptual-hashes the frame and reports whether it differs
// from the previous attempt's. Hash failures count as changed so a broken
// hash can never mask a real screen update.
func frameChanged(frame *image.RGBA, prev *goimagehash.ImageHash) (bool, *goimagehash.ImageHash) {
	h, err := goimagehash.PerceptionHash(frame)
	if err != nil {
		return true, prev
	}
	if prev != nil {
		if d, err := prev.Distance(h); err == nil && d == 0 {
			return false, h
		}
	}
	return true, h
}

func (s *Searcher) transition(state *PollState, next PollState) {
	prev := *state
	*state = next
	s.logger.Debug("poll state transition", "from", prev.String(), "to", next.String())
}
