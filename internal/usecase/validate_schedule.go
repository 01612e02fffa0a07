package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/network"
)

// ValidateScheduleInput contains the parameters for dependency validation.
type ValidateScheduleInput struct {
	Activities []domain.Activity
}

// ActivityFinding pairs an activity with its validation status for ordered
// reporting.
type ActivityFinding struct {
	ID     int
	Name   string
	Status domain.ValidationStatus
}

// ValidateScheduleOutput contains the result of dependency validation.
type ValidateScheduleOutput struct {
	Findings   []ActivityFinding // ascending by ID
	InvalidIDs []domain.Issue    // activities whose ID could not be parsed
	Clean      bool
	HasCycle   bool
}

// ValidateSchedule is the use case for validating a schedule's dependency
// structure without running the solver.
type ValidateSchedule struct {
	logger domain.Logger
}

// NewValidateSchedule creates a new ValidateSchedule use case.
func NewValidateSchedule(logger domain.Logger) *ValidateSchedule {
	return &ValidateSchedule{logger: logger}
}

// Execute builds the network and reports every finding. Data-level
// anomalies never produce an error; the error return is reserved for an
// empty schedule.
func (uc *ValidateSchedule) Execute(_ context.Context, in ValidateScheduleInput) (*ValidateScheduleOutput, error) {
	if len(in.Activities) == 0 {
		return nil, domain.ErrNoActivities
	}

	_, val := network.Build(in.Activities)

	names := make(map[int]string, len(in.Activities))
	for _, a := range in.Activities {
		if id, ok := a.ParsedID(); ok {
			names[id] = a.Name
		}
	}

	findings := make([]ActivityFinding, 0, len(val.Statuses))
	for id, status := range val.Statuses {
		findings = append(findings, ActivityFinding{ID: id, Name: names[id], Status: status})
	}
	sort.Slice(findings, func(i, j int) bool { return findings[i].ID < findings[j].ID })

	out := &ValidateScheduleOutput{
		Findings:   findings,
		InvalidIDs: val.InvalidIDs,
		Clean:      val.Clean(),
		HasCycle:   val.HasCycle(),
	}

	if uc.logger != nil {
		bad := 0
		for _, f := range findings {
			if !f.Status.OK() {
				bad++
			}
		}
		uc.logger.Info("validate", fmt.Sprintf("validated %d activities, %d with findings", len(findings), bad+len(val.InvalidIDs)))
	}
	return out, nil
}
