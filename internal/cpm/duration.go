package cpm

import (
	"github.com/okabe/slipway/internal/bizcal"
	"github.com/okabe/slipway/internal/domain"
)

// ResolveDuration derives an activity's working-day duration.
// Priority: the planned duration field when positive, then the remaining
// duration field (what-if reruns update only remaining work), then the
// inclusive business-day span of the planned dates. Missing or unusable
// dates yield 0, treating the activity as a milestone so it still takes
// its place in the network.
func ResolveDuration(a domain.Activity) int {
	if a.PlannedDuration > 0 {
		return a.PlannedDuration
	}
	if a.RemainingDuration > 0 {
		return a.RemainingDuration
	}
	if a.PlannedStart.IsZero() || a.PlannedFinish.IsZero() {
		return 0
	}
	span := bizcal.Span(a.PlannedStart, a.PlannedFinish)
	if span < 0 {
		return 0
	}
	return span
}

// Durations resolves the duration of every activity, keyed by ID.
func Durations(byID map[int]domain.Activity) map[int]int {
	durations := make(map[int]int, len(byID))
	for id, a := range byID {
		durations[id] = ResolveDuration(a)
	}
	return durations
}
