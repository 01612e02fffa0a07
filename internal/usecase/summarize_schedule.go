package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/okabe/slipway/internal/bizcal"
	"github.com/okabe/slipway/internal/domain"
)

// SummarizeScheduleInput contains the parameters for a schedule summary.
type SummarizeScheduleInput struct {
	Activities   []domain.Activity
	ProjectStart time.Time
}

// DelayDriver identifies an activity by how much delay it created itself,
// as opposed to delay inherited from its predecessors.
type DelayDriver struct {
	ID           int
	Name         string
	CreatedDelay int
}

// SummarizeScheduleOutput is a roll-up of a full analysis.
type SummarizeScheduleOutput struct {
	TotalActivities    int
	FinishedCount      int
	CriticalCount      int
	DelayedCount       int
	MaxDelay           int
	TopDelayCreators   []DelayDriver // descending by created delay, at most three
	PlannedFinish      time.Time     // latest planned finish across activities
	ForecastFinish     time.Time     // latest forecast finish across activities
	FinishVarianceDays int           // working days; positive means late
	ValidationClean    bool
	HasCycle           bool
	CPMRun             bool
}

// SummarizeSchedule is the use case for condensing a full analysis into
// portfolio-level numbers.
type SummarizeSchedule struct {
	analyze *AnalyzeSchedule
}

// NewSummarizeSchedule creates a new SummarizeSchedule use case.
func NewSummarizeSchedule(analyze *AnalyzeSchedule) *SummarizeSchedule {
	return &SummarizeSchedule{analyze: analyze}
}

// Execute runs the analysis and rolls the results up. A schedule that
// cannot be solved (cycles) still summarizes its validation state.
func (uc *SummarizeSchedule) Execute(ctx context.Context, in SummarizeScheduleInput) (*SummarizeScheduleOutput, error) {
	res, err := uc.analyze.Execute(ctx, AnalyzeScheduleInput{
		Activities:   in.Activities,
		ProjectStart: in.ProjectStart,
	})
	if err != nil {
		return nil, err
	}

	out := &SummarizeScheduleOutput{
		TotalActivities: len(in.Activities),
		ValidationClean: res.Validation.Clean(),
		HasCycle:        res.Validation.HasCycle(),
		CPMRun:          res.CPMRun,
	}

	byID := domain.ActivitiesByID(in.Activities)
	for _, a := range in.Activities {
		if a.Finished() {
			out.FinishedCount++
		}
		if !a.PlannedFinish.IsZero() && a.PlannedFinish.After(out.PlannedFinish) {
			out.PlannedFinish = a.PlannedFinish
		}
	}

	if !res.CPMRun {
		return out, nil
	}

	for _, r := range res.Timing {
		if r.OnCriticalPath {
			out.CriticalCount++
		}
	}

	var drivers []DelayDriver
	for id, f := range res.Forecast {
		if f.TotalScheduleDelay > 0 {
			out.DelayedCount++
			if f.TotalScheduleDelay > out.MaxDelay {
				out.MaxDelay = f.TotalScheduleDelay
			}
		}
		if f.TaskCreatedDelay > 0 {
			drivers = append(drivers, DelayDriver{ID: id, Name: byID[id].Name, CreatedDelay: f.TaskCreatedDelay})
		}
		if !f.ForecastFinish.IsZero() && f.ForecastFinish.After(out.ForecastFinish) {
			out.ForecastFinish = f.ForecastFinish
		}
	}
	sort.Slice(drivers, func(i, j int) bool {
		if drivers[i].CreatedDelay != drivers[j].CreatedDelay {
			return drivers[i].CreatedDelay > drivers[j].CreatedDelay
		}
		return drivers[i].ID < drivers[j].ID
	})
	if len(drivers) > 3 {
		drivers = drivers[:3]
	}
	out.TopDelayCreators = drivers

	out.FinishVarianceDays = bizcal.Delta(out.ForecastFinish, out.PlannedFinish)
	return out, nil
}
