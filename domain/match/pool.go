package match

import "sync"

// Reusable plane buffers to reduce heap churn from per-search precomputation.
// Every search allocates channel planes for the full frame plus an energy
// integral; at screen resolutions those are multi-megabyte slices, so they are
// recycled through pools instead of being reallocated each call. Buffers are
// handed back after the scan completes; if a caller never releases, behavior
// degrades gracefully to plain allocation.

var (
	f32Pool sync.Pool // stores []float32
	f64Pool sync.Pool // stores []float64
)

// acquireF32 returns a float32 slice of length n, reusing a pooled backing
// array when its capacity suffices. Contents are undefined; callers must
// overwrite every element.
func acquireF32(n int) []float32 {
	if v := f32Pool.Get(); v != nil {
		s := v.([]float32)
		if cap(s) >= n {
			return s[:n]
		}
	}
	return make([]float32, n)
}

func releaseF32(s []float32) {
	if s != nil {
		f32Pool.Put(s)
	}
}

// acquireF64 is the float64 counterpart of acquireF32.
func acquireF64(n int) []float64 {
	if v := f64Pool.Get(); v != nil {
		s := v.([]float64)
		if cap(s) >= n {
			return s[:n]
		}
	}
	return make([]float64, n)
}

func releaseF64(s []float64) {
	if s != nil {
		f64Pool.Put(s)
	}
}
