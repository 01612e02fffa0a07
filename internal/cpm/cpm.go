// Package cpm implements the Critical Path Method over a schedule network:
// topological forward and backward passes honoring the four precedence
// types with signed lag, float derivation, and calendar rendering of the
// resulting offsets.
package cpm

import (
	"time"

	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/network"
)

// Result holds the CPM timing of one activity. Offsets are integers in an
// abstract day-index space where day 0 is the project's relative start;
// EF and LF are exclusive end markers (ES=0 with duration 5 gives EF=5,
// occupying offsets 0..4). Calendar dates are filled in by ApplyCalendar.
type Result struct {
	ES         int
	EF         int
	LS         int
	LF         int
	TotalFloat int
	// OnCriticalPath is true when float is zero or negative; negative
	// float signals an over-constrained network and is still critical.
	OnCriticalPath bool
	Duration       int

	ESDate time.Time
	EFDate time.Time
	LSDate time.Time
	LFDate time.Time
}

// Solve runs the forward and backward passes over an acyclic network and
// returns per-activity timing keyed by ID. Activities absent from the
// durations map count as zero-duration milestones. A cyclic network is a
// hard precondition failure (domain.ErrCyclicGraph): callers must gate on
// the builder's validation first. An empty network yields an empty map.
func Solve(net *network.Network, durations map[int]int) (map[int]Result, error) {
	order, err := net.TopoOrder()
	if err != nil {
		return nil, err
	}

	results := make(map[int]Result, len(order))

	// Forward pass: ES is the tightest constraint over incoming edges,
	// or 0 for activities with no predecessors. Negative lags can push
	// ES below 0; offsets are kept raw.
	for _, id := range order {
		duration := durations[id]

		es := 0
		for i, e := range net.Predecessors(id) {
			pred := results[e.Pred]
			var bound int
			switch e.Type {
			case domain.FinishToStart:
				bound = pred.EF + e.Lag
			case domain.StartToStart:
				bound = pred.ES + e.Lag
			case domain.FinishToFinish:
				bound = pred.EF + e.Lag - duration
			case domain.StartToFinish:
				bound = pred.ES + e.Lag - duration
			}
			if i == 0 || bound > es {
				es = bound
			}
		}

		results[id] = Result{
			ES:       es,
			EF:       es + duration,
			Duration: duration,
		}
	}

	if len(results) == 0 {
		return results, nil
	}

	projectFinish := 0
	first := true
	for _, r := range results {
		if first || r.EF > projectFinish {
			projectFinish = r.EF
			first = false
		}
	}

	// Backward pass in reverse topological order: LF is the tightest
	// constraint over outgoing edges, or the project finish for sinks.
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		r := results[id]

		succs := net.Successors(id)
		lf := projectFinish
		for j, e := range succs {
			succ := results[e.Succ]
			var bound int
			switch e.Type {
			case domain.FinishToStart:
				bound = succ.LS - e.Lag
			case domain.StartToStart:
				bound = succ.LS - e.Lag + r.Duration
			case domain.FinishToFinish:
				bound = succ.LF - e.Lag
			case domain.StartToFinish:
				bound = succ.LF - e.Lag + r.Duration
			}
			if j == 0 || bound < lf {
				lf = bound
			}
		}

		r.LF = lf
		r.LS = lf - r.Duration
		r.TotalFloat = r.LS - r.ES
		r.OnCriticalPath = r.TotalFloat <= 0
		results[id] = r
	}

	return results, nil
}

// ProjectFinish returns the largest early finish offset, i.e. the relative
// project duration in working days. An empty result map yields 0.
func ProjectFinish(results map[int]Result) int {
	finish := 0
	first := true
	for _, r := range results {
		if first || r.EF > finish {
			finish = r.EF
			first = false
		}
	}
	return finish
}
