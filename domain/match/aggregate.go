package match

import (
	"math"
	"sort"
)

// overlapThreshold is the IoU beyond which two detections are considered the
// same hit and the lower-confidence one is discarded.
const overlapThreshold = 0.5

// sortByConfidence orders results by confidence descending; ties prefer the
// scale closer to 1.0.
func sortByConfidence(rs []Result) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Confidence != rs[j].Confidence {
			return rs[i].Confidence > rs[j].Confidence
		}
		return math.Abs(rs[i].Scale-1) < math.Abs(rs[j].Scale-1)
	})
}

// suppress performs greedy non-maximum suppression: candidates are visited in
// confidence order and dropped when they overlap an already-kept detection
// beyond iouThreshold. The returned slice is sorted by confidence.
func suppress(cands []Result, iouThreshold float64) []Result {
	if len(cands) <= 1 {
		return cands
	}
	sortByConfidence(cands)
	keep := make([]Result, 0, len(cands))
	for _, c := range cands {
		dup := false
		for _, k := range keep {
			if k.IoU(c) >= iouThreshold {
				dup = true
				break
			}
		}
		if !dup {
			keep = append(keep, c)
		}
	}
	return keep
}

// Aggregate merges the candidates of all evaluated scales for one search:
// cross-scale non-maximum suppression, confidence ordering, truncation.
func Aggregate(cands []Result, limit int) []Result {
	if len(cands) == 0 {
		return nil
	}
	merged := suppress(cands, overlapThreshold)
	if limit > 0 && len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}
