// Package schedfile loads activity tables from schedule files.
// CSV and YAML formats are supported; the format is chosen by file
// extension.
package schedfile

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/okabe/slipway/internal/domain"
)

// Ensure Source implements domain.ScheduleSource.
var _ domain.ScheduleSource = (*Source)(nil)

// Source loads schedules from the local filesystem.
type Source struct {
	logger domain.Logger
}

// NewSource creates a new Source.
func NewSource(logger domain.Logger) *Source {
	return &Source{logger: logger}
}

// Load reads the schedule at path. The extension selects the format:
// .csv for tabular files, .yaml/.yml for structured files.
func (s *Source) Load(path string) ([]domain.Activity, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return s.loadCSV(path)
	case ".yaml", ".yml":
		return s.loadYAML(path)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnsupportedFormat, path)
	}
}

// dateLayouts are the accepted date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// parseDate parses a date cell. Empty cells yield the zero time with no
// error; anything else must match one of the accepted layouts. Times are
// truncated to midnight UTC so calendar math sees pure dates.
func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", s)
}
