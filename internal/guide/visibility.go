package guide

// VisibilityTracker turns a stream of visibility ratios into a single
// edge-triggered event. Observe returns true exactly once: the first time
// the ratio reaches the threshold.
type VisibilityTracker struct {
	Threshold float64 `json:"threshold"`
	Fired     bool    `json:"fired"`
}

// NewVisibilityTracker returns a tracker for the given threshold. A
// threshold outside (0, 1] falls back to DefaultVisibilityThreshold.
func NewVisibilityTracker(threshold float64) VisibilityTracker {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultVisibilityThreshold
	}
	return VisibilityTracker{Threshold: threshold}
}

// Observe records a visibility ratio and reports whether this observation
// is the one that crossed the threshold.
func (v *VisibilityTracker) Observe(ratio float64) bool {
	if v.Fired || ratio < v.Threshold {
		return false
	}
	v.Fired = true
	return true
}

// VisibleRatio returns how much of a block spanning [start, end) lines is
// inside the viewport [offset, offset+height). Blocks taller than the
// viewport are measured against the viewport height so they can still
// reach full visibility.
func VisibleRatio(start, end, offset, height int) float64 {
	size := end - start
	if size <= 0 || height <= 0 {
		return 0
	}
	lo := max(start, offset)
	hi := min(end, offset+height)
	if hi <= lo {
		return 0
	}
	denom := min(size, height)
	return float64(hi-lo) / float64(denom)
}
