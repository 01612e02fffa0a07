// Package domain contains core business entities and interfaces.
package domain

import (
	"strconv"
	"strings"
	"time"
)

// Activity represents one row of a loaded schedule table.
// Date fields use the zero time.Time to mean "not provided"; durations use 0.
// Activities are immutable during an analysis run; the engine never writes
// back into them.
type Activity struct {
	PlannedStart   time.Time // Planned start date
	PlannedFinish  time.Time // Planned finish date
	BaselineStart  time.Time // Baseline start date
	BaselineFinish time.Time // Baseline finish date
	ActualStart    time.Time // Actual start date (empty if not started)
	ActualFinish   time.Time // Actual finish date (empty if not finished)

	Name         string // Display name (optional)
	RawID        string // Identifier exactly as loaded; authoritative when non-empty
	Predecessors string // Raw dependency notation, e.g. "2FS;5SS+2d"

	PercentComplete   float64 // Reported completion 0-100 (advisory only)
	PlannedDuration   int     // Planned duration in working days (0 = not provided)
	RemainingDuration int     // Remaining duration in working days (0 = not provided)
	ID                int     // Integer identity; used when RawID is empty
}

// ParsedID returns the integer identity of the activity.
// RawID takes precedence when present so that loaders can hand over
// syntactically invalid identifiers for validation to report; programmatic
// callers may set ID directly and leave RawID empty.
func (a Activity) ParsedID() (int, bool) {
	raw := strings.TrimSpace(a.RawID)
	if raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			return 0, false
		}
		return id, true
	}
	if a.ID != 0 {
		return a.ID, true
	}
	return 0, false
}

// Finished returns true if the activity has an actual finish date.
// The engine treats an activity as 100% complete iff this holds, regardless
// of the reported PercentComplete.
func (a Activity) Finished() bool {
	return !a.ActualFinish.IsZero()
}

// Started returns true if the activity has an actual start date.
func (a Activity) Started() bool {
	return !a.ActualStart.IsZero()
}

// ActivitiesByID indexes activities by their parsed integer identity.
// Rows with unparsable identifiers are skipped; the network builder reports
// those separately.
func ActivitiesByID(activities []Activity) map[int]Activity {
	byID := make(map[int]Activity, len(activities))
	for _, a := range activities {
		id, ok := a.ParsedID()
		if !ok {
			continue
		}
		byID[id] = a
	}
	return byID
}
