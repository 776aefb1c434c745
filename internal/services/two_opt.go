package services

import "github.com/IntegratedRai444/zipzydeliver-sub002/internal/domain"

// Reversals must shorten the tour by more than this to be adopted, so
// floating-point noise never flips the improvement flag.
const improvementEpsilon = 1e-6

// improveRoute runs a single full 2-opt sweep over the route: every segment
// reversal (i, k) with i >= 1 is evaluated against the best ordering found so
// far, and strictly shorter candidates are adopted immediately. The depot at
// position 0 is never moved. One sweep only; the result is not iterated to a
// local fixed point.
//
// The returned flag reports whether any reversal improved the route. Routes
// of length <= 3 (depot plus at most two stops) are returned unchanged.
func improveRoute(route domain.Route) (domain.Route, bool) {
	if len(route) <= 3 {
		return route, false
	}

	best := route.Clone()
	bestDistance := best.TotalDistanceKm()
	improved := false

	for i := 1; i < len(best)-1; i++ {
		for k := i + 1; k < len(best); k++ {
			candidate := reverseSegment(best, i, k)
			if d := candidate.TotalDistanceKm(); d < bestDistance-improvementEpsilon {
				best = candidate
				bestDistance = d
				improved = true
			}
		}
	}
	return best, improved
}

// reverseSegment returns a copy of the route with positions [i, k] reversed.
func reverseSegment(route domain.Route, i, k int) domain.Route {
	out := route.Clone()
	for lo, hi := i, k; lo < hi; lo, hi = lo+1, hi-1 {
		out[lo], out[hi] = out[hi], out[lo]
	}
	return out
}
