package schedfile

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/okabe/slipway/internal/domain"
)

// yamlSchedule is the on-disk YAML shape.
type yamlSchedule struct {
	Activities []yamlActivity `yaml:"activities"`
}

type yamlActivity struct {
	ID                string  `yaml:"id"`
	Name              string  `yaml:"name"`
	Predecessors      string  `yaml:"predecessors"`
	PlannedStart      string  `yaml:"planned_start"`
	PlannedFinish     string  `yaml:"planned_finish"`
	PlannedDuration   int     `yaml:"planned_duration"`
	RemainingDuration int     `yaml:"remaining_duration"`
	BaselineStart     string  `yaml:"baseline_start"`
	BaselineFinish    string  `yaml:"baseline_finish"`
	ActualStart       string  `yaml:"actual_start"`
	ActualFinish      string  `yaml:"actual_finish"`
	PercentComplete   float64 `yaml:"percent_complete"`
}

// loadYAML reads a YAML schedule document. Unlike CSV there is no
// required-column check; absent keys simply take their zero values.
func (s *Source) loadYAML(path string) ([]domain.Activity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc yamlSchedule
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	activities := make([]domain.Activity, 0, len(doc.Activities))
	for i, ya := range doc.Activities {
		a := domain.Activity{
			RawID:             ya.ID,
			Name:              ya.Name,
			Predecessors:      ya.Predecessors,
			PlannedDuration:   ya.PlannedDuration,
			RemainingDuration: ya.RemainingDuration,
			PercentComplete:   ya.PercentComplete,
		}
		if id, err := strconv.Atoi(ya.ID); err == nil {
			a.ID = id
		}

		fields := []struct {
			name string
			raw  string
			dest *time.Time
		}{
			{"planned_start", ya.PlannedStart, &a.PlannedStart},
			{"planned_finish", ya.PlannedFinish, &a.PlannedFinish},
			{"baseline_start", ya.BaselineStart, &a.BaselineStart},
			{"baseline_finish", ya.BaselineFinish, &a.BaselineFinish},
			{"actual_start", ya.ActualStart, &a.ActualStart},
			{"actual_finish", ya.ActualFinish, &a.ActualFinish},
		}
		for _, f := range fields {
			t, err := parseDate(f.raw)
			if err != nil {
				return nil, fmt.Errorf("activity %d in %s: %s: %w", i+1, path, f.name, err)
			}
			*f.dest = t
		}

		activities = append(activities, a)
	}

	if s.logger != nil {
		s.logger.Debug("loader", fmt.Sprintf("loaded %d activities from %s", len(activities), path))
	}
	return activities, nil
}
