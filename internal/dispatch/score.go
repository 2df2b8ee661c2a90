package dispatch

import "math"

// #region score

// Coherence floor every distribution starts from, and the span a fully
// successful fan-out recovers on top of it.
const (
	CoherenceFloor = 0.954
	coherenceSpan  = 0.046
)

// Weighting of engagement signals relative to a single view.
const (
	likeWeight  = 10
	shareWeight = 20
)

// Score reduces a fan-out result to a post-distribution coherence figure:
// the floor plus the span scaled by the success rate, capped at 1.0. An
// empty result scores the bare floor.
func Score(r Result) float64 {
	if len(r) == 0 {
		return CoherenceFloor
	}
	rate := float64(r.Successes()) / float64(len(r))
	return math.Min(1.0, CoherenceFloor+rate*coherenceSpan)
}

// TotalEngagement sums weighted engagement over the successful outcomes.
// Likes count ten views, shares twenty.
func TotalEngagement(r Result) int {
	total := 0
	for _, out := range r {
		if !out.Success {
			continue
		}
		total += out.Engagement.Views + out.Engagement.Likes*likeWeight + out.Engagement.Shares*shareWeight
	}
	return total
}

// #endregion score
