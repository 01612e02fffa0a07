// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/okabe/slipway/internal/cpm"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/forecast"
	"github.com/okabe/slipway/internal/network"
)

// AnalyzeScheduleInput contains the parameters for a full schedule analysis.
type AnalyzeScheduleInput struct {
	Activities   []domain.Activity
	ProjectStart time.Time // Anchor date (day 0); zero = derive from planned starts
}

// AnalyzeScheduleOutput contains the result of a full schedule analysis.
// Timing and Forecast are nil when CPMRun is false (cycles block the
// solver; validation findings explain why).
type AnalyzeScheduleOutput struct {
	Network      *network.Network
	Validation   network.Validation
	Timing       map[int]cpm.Result
	Forecast     map[int]forecast.Result
	ProjectStart time.Time // The anchor actually used, before weekend rolling
	CPMRun       bool
}

// AnalyzeSchedule is the use case for running the full analysis chain:
// build/validate, resolve durations, CPM, calendar conversion, forecast.
type AnalyzeSchedule struct {
	logger domain.Logger
}

// NewAnalyzeSchedule creates a new AnalyzeSchedule use case.
func NewAnalyzeSchedule(logger domain.Logger) *AnalyzeSchedule {
	return &AnalyzeSchedule{logger: logger}
}

// Execute runs the analysis. Validation always runs; CPM and the forecast
// are skipped (not failed) when the network has a cycle, so callers can
// still surface every validation finding.
func (uc *AnalyzeSchedule) Execute(_ context.Context, in AnalyzeScheduleInput) (*AnalyzeScheduleOutput, error) {
	if len(in.Activities) == 0 {
		return nil, domain.ErrNoActivities
	}

	net, val := network.Build(in.Activities)
	out := &AnalyzeScheduleOutput{Network: net, Validation: val}

	if val.HasCycle() {
		if uc.logger != nil {
			uc.logger.Warn("analyze", "dependency cycle found; skipping CPM and forecast")
		}
		return out, nil
	}

	start, err := resolveProjectStart(in.ProjectStart, in.Activities)
	if err != nil {
		return nil, err
	}
	out.ProjectStart = start

	byID := domain.ActivitiesByID(in.Activities)
	durations := cpm.Durations(byID)

	timing, err := cpm.Solve(net, durations)
	if err != nil {
		// Unreachable after the cycle gate above; surface it anyway.
		return nil, fmt.Errorf("cpm solve: %w", err)
	}
	timing = cpm.ApplyCalendar(timing, start)

	out.Timing = timing
	out.Forecast = forecast.Project(net, byID, timing)
	out.CPMRun = true

	if uc.logger != nil {
		uc.logger.Info("analyze", fmt.Sprintf("analyzed %d activities, project finish offset %d", net.Len(), cpm.ProjectFinish(timing)))
	}
	return out, nil
}

// resolveProjectStart picks the analysis anchor: the explicit start when
// given, otherwise the earliest planned start across the schedule.
func resolveProjectStart(explicit time.Time, activities []domain.Activity) (time.Time, error) {
	if !explicit.IsZero() {
		return explicit, nil
	}
	var earliest time.Time
	for _, a := range activities {
		if a.PlannedStart.IsZero() {
			continue
		}
		if earliest.IsZero() || a.PlannedStart.Before(earliest) {
			earliest = a.PlannedStart
		}
	}
	if earliest.IsZero() {
		return time.Time{}, domain.ErrNoProjectStart
	}
	return earliest, nil
}
