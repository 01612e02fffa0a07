package schedfile

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/okabe/slipway/internal/domain"
)

// requiredColumns must be present in the CSV header. The remaining known
// columns are optional; extra columns are ignored.
var requiredColumns = []string{
	"activity_id",
	"activity_name",
	"predecessor_id",
	"planned_start",
	"planned_finish",
}

// maxRowErrors caps per-row error reporting so a systematically broken
// file does not flood the output.
const maxRowErrors = 10

// loadCSV reads a comma-separated schedule. The first record is the
// header; column order is free. Row-level problems are collected and
// reported together, capped at maxRowErrors.
func (s *Source) loadCSV(path string) ([]domain.Activity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read header of %s: %w", path, err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w in %s: %s", domain.ErrMissingColumns, path, strings.Join(missing, ", "))
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	field := func(record []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var activities []domain.Activity
	var rowErrs []string
	addErr := func(row int, format string, args ...any) {
		// Row numbers are 1-based including the header, matching what a
		// spreadsheet shows.
		rowErrs = append(rowErrs, fmt.Sprintf("row %d: %s", row+2, fmt.Sprintf(format, args...)))
	}

	for rowIdx, record := range records {
		a := domain.Activity{
			RawID:        field(record, "activity_id"),
			Name:         field(record, "activity_name"),
			Predecessors: field(record, "predecessor_id"),
		}
		if id, err := strconv.Atoi(a.RawID); err == nil {
			a.ID = id
		}

		var derr error
		if a.PlannedStart, derr = parseDate(field(record, "planned_start")); derr != nil {
			addErr(rowIdx, "planned_start: %v", derr)
		}
		if a.PlannedFinish, derr = parseDate(field(record, "planned_finish")); derr != nil {
			addErr(rowIdx, "planned_finish: %v", derr)
		}
		if a.BaselineStart, derr = parseDate(field(record, "baseline_start")); derr != nil {
			addErr(rowIdx, "baseline_start: %v", derr)
		}
		if a.BaselineFinish, derr = parseDate(field(record, "baseline_finish")); derr != nil {
			addErr(rowIdx, "baseline_finish: %v", derr)
		}
		if a.ActualStart, derr = parseDate(field(record, "actual_start")); derr != nil {
			addErr(rowIdx, "actual_start: %v", derr)
		}
		if a.ActualFinish, derr = parseDate(field(record, "actual_finish")); derr != nil {
			addErr(rowIdx, "actual_finish: %v", derr)
		}

		if v := field(record, "planned_duration"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				addErr(rowIdx, "planned_duration: non-numeric value %q", v)
			} else {
				a.PlannedDuration = n
			}
		}
		if v := field(record, "remaining_duration"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				addErr(rowIdx, "remaining_duration: non-numeric value %q", v)
			} else {
				a.RemainingDuration = n
			}
		}
		if v := field(record, "percent_complete"); v != "" {
			pct, err := strconv.ParseFloat(v, 64)
			if err != nil {
				addErr(rowIdx, "percent_complete: non-numeric value %q", v)
			} else {
				a.PercentComplete = pct
			}
		}

		activities = append(activities, a)
	}

	if len(rowErrs) > 0 {
		shown := rowErrs
		extra := 0
		if len(shown) > maxRowErrors {
			extra = len(shown) - maxRowErrors
			shown = shown[:maxRowErrors]
		}
		msg := strings.Join(shown, "; ")
		if extra > 0 {
			msg = fmt.Sprintf("%s; and %d more", msg, extra)
		}
		return nil, fmt.Errorf("invalid rows in %s: %s", path, msg)
	}

	if s.logger != nil {
		s.logger.Debug("loader", fmt.Sprintf("loaded %d activities from %s", len(activities), path))
	}
	return activities, nil
}
