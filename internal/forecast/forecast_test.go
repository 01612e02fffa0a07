package forecast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabe/slipway/internal/cpm"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/network"
	"github.com/okabe/slipway/internal/testutil"
)

// analyzed runs the full pipeline against a Monday 2026-03-02 anchor.
func analyzed(t *testing.T, activities []domain.Activity) (*network.Network, map[int]domain.Activity, map[int]cpm.Result) {
	t.Helper()
	net, val := network.Build(activities)
	require.True(t, val.Clean())

	byID := domain.ActivitiesByID(activities)
	timing, err := cpm.Solve(net, cpm.Durations(byID))
	require.NoError(t, err)
	timing = cpm.ApplyCalendar(timing, testutil.MustDate("2026-03-02"))
	return net, byID, timing
}

func TestProjectFinishedActivityUsesActuals(t *testing.T) {
	activities := []domain.Activity{{
		ID:              1,
		PlannedDuration: 5,
		BaselineStart:   testutil.MustDate("2026-03-02"),
		BaselineFinish:  testutil.MustDate("2026-03-06"),
		ActualStart:     testutil.MustDate("2026-03-02"),
		ActualFinish:    testutil.MustDate("2026-03-10"),
	}}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	r := results[1]

	assert.Equal(t, 100, r.PercentComplete)
	assert.Equal(t, testutil.MustDate("2026-03-02"), r.ForecastStart)
	assert.Equal(t, testutil.MustDate("2026-03-10"), r.ForecastFinish)
	assert.Equal(t, 7, r.ActualDuration) // Mon..next Tue inclusive
	assert.Equal(t, 5, r.BaselineDuration)
	assert.Zero(t, r.RemainingDuration)

	// Finished two working days past baseline.
	assert.Equal(t, 2, r.TotalScheduleDelay)
	assert.Equal(t, 2, r.TaskCreatedDelay)
	assert.Zero(t, r.DelayCarriedIn)
}

func TestProjectInProgressProjectsFromActualStart(t *testing.T) {
	activities := []domain.Activity{
		{
			ID:              1,
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-02"),
			BaselineFinish:  testutil.MustDate("2026-03-06"),
			ActualStart:     testutil.MustDate("2026-03-02"),
			ActualFinish:    testutil.MustDate("2026-03-06"),
		},
		{
			ID:              2,
			Predecessors:    "1FS",
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-09"),
			BaselineFinish:  testutil.MustDate("2026-03-13"),
			ActualStart:     testutil.MustDate("2026-03-11"), // two working days late
		},
	}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	r := results[2]

	assert.Zero(t, r.PercentComplete)
	assert.Equal(t, testutil.MustDate("2026-03-11"), r.ForecastStart)
	// Five working days from Wednesday: Wed..Fri + Mon..Tue.
	assert.Equal(t, testutil.MustDate("2026-03-17"), r.ForecastFinish)
	assert.Equal(t, 5, r.RemainingDuration)

	assert.Equal(t, 2, r.TotalScheduleDelay)
	assert.Zero(t, r.DelayCarriedIn) // predecessor finished on baseline
	assert.Equal(t, 2, r.TaskCreatedDelay)
	assert.Equal(t, -2, r.DelayAbsorbed)
}

func TestProjectNotStartedFollowsNetworkDates(t *testing.T) {
	activities := []domain.Activity{
		{
			ID:              1,
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-02"),
			BaselineFinish:  testutil.MustDate("2026-03-06"),
		},
		{
			ID:              2,
			Predecessors:    "1FS",
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-09"),
			BaselineFinish:  testutil.MustDate("2026-03-13"),
		},
	}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	r := results[2]

	assert.Equal(t, timing[2].ESDate, r.ForecastStart)
	assert.Equal(t, timing[2].EFDate, r.ForecastFinish)
	assert.Zero(t, r.TotalScheduleDelay)
	assert.Zero(t, r.DelayCarriedIn)
}

func TestProjectDelayPropagatesThroughChain(t *testing.T) {
	// 1 finished on time; 2 started late and is in progress; 3 has not
	// started. 3 inherits 2's forecast slip as carried-in delay.
	activities := []domain.Activity{
		{
			ID:              1,
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-02"),
			BaselineFinish:  testutil.MustDate("2026-03-06"),
			ActualStart:     testutil.MustDate("2026-03-02"),
			ActualFinish:    testutil.MustDate("2026-03-06"),
		},
		{
			ID:              2,
			Predecessors:    "1FS",
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-09"),
			BaselineFinish:  testutil.MustDate("2026-03-13"),
			ActualStart:     testutil.MustDate("2026-03-11"),
		},
		{
			ID:              3,
			Predecessors:    "2FS",
			PlannedDuration: 2,
			BaselineStart:   testutil.MustDate("2026-03-16"),
			BaselineFinish:  testutil.MustDate("2026-03-17"),
		},
	}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	r := results[3]

	// Forecast finish of 2 is 2026-03-17, two working days past its
	// baseline finish; 3 carries that in.
	assert.Equal(t, 2, r.DelayCarriedIn)

	// 3's own forecast still sits on the network dates, so it created
	// nothing and absorbed what it inherited.
	assert.Zero(t, r.TotalScheduleDelay)
	assert.Zero(t, r.TaskCreatedDelay)
	assert.Equal(t, 2, r.DelayAbsorbed)
}

func TestProjectCarriedInNeverNegative(t *testing.T) {
	// Predecessor finished early; the successor must not inherit a
	// negative delay.
	activities := []domain.Activity{
		{
			ID:              1,
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-02"),
			BaselineFinish:  testutil.MustDate("2026-03-06"),
			ActualStart:     testutil.MustDate("2026-03-02"),
			ActualFinish:    testutil.MustDate("2026-03-04"),
		},
		{
			ID:              2,
			Predecessors:    "1FS",
			PlannedDuration: 3,
			BaselineStart:   testutil.MustDate("2026-03-09"),
			BaselineFinish:  testutil.MustDate("2026-03-11"),
		},
	}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	assert.Zero(t, results[2].DelayCarriedIn)
}

func TestProjectMissingBaselineMeansNoDelay(t *testing.T) {
	activities := []domain.Activity{{
		ID:              1,
		PlannedDuration: 5,
		ActualStart:     testutil.MustDate("2026-03-02"),
		ActualFinish:    testutil.MustDate("2026-03-20"),
	}}
	net, byID, timing := analyzed(t, activities)

	results := Project(net, byID, timing)
	r := results[1]
	assert.Zero(t, r.TotalScheduleDelay)
	assert.Zero(t, r.BaselineDuration)
}

func TestProjectIsIdempotent(t *testing.T) {
	activities := []domain.Activity{
		{
			ID:              1,
			PlannedDuration: 5,
			BaselineStart:   testutil.MustDate("2026-03-02"),
			BaselineFinish:  testutil.MustDate("2026-03-06"),
			ActualStart:     testutil.MustDate("2026-03-03"),
		},
		{
			ID:              2,
			Predecessors:    "1FS",
			PlannedDuration: 2,
			BaselineStart:   testutil.MustDate("2026-03-09"),
			BaselineFinish:  testutil.MustDate("2026-03-10"),
		},
	}
	net, byID, timing := analyzed(t, activities)

	first := Project(net, byID, timing)
	second := Project(net, byID, timing)
	assert.Equal(t, first, second)
}

func TestProjectCyclicNetworkStillProduces(t *testing.T) {
	activities := []domain.Activity{
		{ID: 1, Predecessors: "2FS", PlannedDuration: 1},
		{ID: 2, Predecessors: "1FS", PlannedDuration: 1},
	}
	net, _ := network.Build(activities)
	byID := domain.ActivitiesByID(activities)

	results := Project(net, byID, map[int]cpm.Result{})
	assert.Len(t, results, 2)
	for _, r := range results {
		assert.Equal(t, time.Time{}, r.ForecastStart)
	}
}
