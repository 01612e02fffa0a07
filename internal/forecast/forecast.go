// Package forecast propagates real-world delay through a schedule network,
// producing per-activity forecast dates and a decomposition of delay into
// carried-in, self-created, and absorbed portions.
package forecast

import (
	"time"

	"github.com/okabe/slipway/internal/bizcal"
	"github.com/okabe/slipway/internal/cpm"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/network"
)

// Result holds the forecast of one activity. All delay quantities are
// signed working days; DelayCarriedIn and TaskCreatedDelay are clamped to
// >= 0 by definition.
type Result struct {
	ForecastStart  time.Time
	ForecastFinish time.Time

	PercentComplete   int // 100 iff an actual finish exists, else 0
	ActualDuration    int
	BaselineDuration  int
	RemainingDuration int

	DelayCarriedIn     int
	TotalScheduleDelay int
	TaskCreatedDelay   int
	// DelayAbsorbed is DelayCarriedIn - TaskCreatedDelay: positive when
	// the activity compressed away inherited delay, negative when it made
	// things worse than what it inherited.
	DelayAbsorbed int
}

// Project walks the network in topological order and forecasts every
// activity. Predecessors are always resolved before successors; carried-in
// delay reads the predecessor's computed forecast finish (not its raw
// actuals), which is what lets delay compound through multi-hop chains even
// when an intermediate activity has not started yet.
//
// A cyclic network degrades to an arbitrary node order instead of failing:
// upstream validation is expected to have blocked this path already, and a
// best-effort forecast beats none. Propagation across the cycle's members
// is not meaningful in that mode.
func Project(net *network.Network, byID map[int]domain.Activity, timing map[int]cpm.Result) map[int]Result {
	order, err := net.TopoOrder()
	if err != nil {
		order = net.IDs()
	}

	results := make(map[int]Result, len(order))
	for _, id := range order {
		a, ok := byID[id]
		if !ok {
			results[id] = Result{}
			continue
		}
		results[id] = forecastOne(a, timing[id], net.Predecessors(id), byID, results)
	}
	return results
}

func forecastOne(a domain.Activity, timing cpm.Result, preds []network.Edge, byID map[int]domain.Activity, results map[int]Result) Result {
	duration := cpm.ResolveDuration(a)

	res := Result{
		BaselineDuration: bizcal.Span(a.BaselineStart, a.BaselineFinish),
	}

	switch {
	case a.Finished():
		res.PercentComplete = 100
		res.ActualDuration = bizcal.Span(a.ActualStart, a.ActualFinish)
		res.ForecastStart = a.ActualStart
		res.ForecastFinish = a.ActualFinish

	case a.Started():
		// In progress. Partial credit is not modeled: an activity counts
		// as 0% until its actual finish lands. The finish projection is
		// actual start + (duration-1) working days, not a CPM re-run with
		// the new start, so downstream in-progress forecasts do not
		// reflect true re-sequencing. Known modeling limitation.
		res.RemainingDuration = duration
		res.ForecastStart = a.ActualStart
		if duration > 0 {
			res.ForecastFinish = bizcal.AddDays(a.ActualStart, duration-1)
		} else {
			res.ForecastFinish = a.ActualStart
		}

	default:
		// Not started: the activity has not deviated from the
		// network-computed placement.
		res.RemainingDuration = duration
		res.ForecastStart = timing.ESDate
		res.ForecastFinish = timing.EFDate
	}

	carried := 0
	for _, e := range preds {
		predResult, ok := results[e.Pred]
		if !ok {
			continue
		}
		slip := bizcal.Delta(predResult.ForecastFinish, byID[e.Pred].BaselineFinish)
		if slip > carried {
			carried = slip
		}
	}
	res.DelayCarriedIn = carried

	startVar := bizcal.Delta(res.ForecastStart, a.BaselineStart)
	finishVar := bizcal.Delta(res.ForecastFinish, a.BaselineFinish)
	res.TotalScheduleDelay = max(startVar, finishVar)

	res.TaskCreatedDelay = max(0, res.TotalScheduleDelay-res.DelayCarriedIn)
	res.DelayAbsorbed = res.DelayCarriedIn - res.TaskCreatedDelay

	return res
}
