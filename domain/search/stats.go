package search

import (
	"sync/atomic"
	"time"
)

// Stats summarises searcher activity for instrumentation.
type Stats struct {
	Searches  uint64
	Hits      uint64
	AvgSearch time.Duration
}

// counters backs Stats with lock-free accumulation.
type counters struct {
	searches    atomic.Uint64
	hits        atomic.Uint64
	searchNanos atomic.Uint64
}

func (c *counters) record(results int, elapsed time.Duration) {
	c.searches.Add(1)
	if results > 0 {
		c.hits.Add(1)
	}
	c.searchNanos.Add(uint64(elapsed.Nanoseconds()))
}

// Stats returns a snapshot of the searcher's counters.
func (s *Searcher) Stats() Stats {
	searches := s.stats.searches.Load()
	total := s.stats.searchNanos.Load()
	var avg time.Duration
	if searches > 0 {
		avg = time.Duration(total / searches)
	}
	return Stats{
		Searches:  searches,
		Hits:      s.stats.hits.Load(),
		AvgSearch: avg,
	}
}
