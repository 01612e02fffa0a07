// Package cli provides the command-line interface for slipway.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/domain"
)

// Command group IDs.
const (
	groupAnalysis = "analysis"
	groupView     = "view"
)

// NewRootCommand creates the root command for slipway.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "slipway",
		Short: "Schedule network analysis CLI",
		Long: `slipway analyzes project schedules with the Critical Path Method.
It parses dependency notation (e.g. "1FS;3SS+2d"), validates the
resulting network, computes early/late dates and float against a
Mon-Fri business calendar, and forecasts delay propagation from
actual progress.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip if container is nil (e.g. in tests)
			if c == nil || c.Config == nil {
				return nil
			}
			for _, w := range c.Config.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupAnalysis, Title: "Analysis Commands:"},
		&cobra.Group{ID: groupView, Title: "Viewing Commands:"},
	)

	validateCmd := newValidateCommand(c)
	validateCmd.GroupID = groupAnalysis

	analyzeCmd := newAnalyzeCommand(c)
	analyzeCmd.GroupID = groupAnalysis

	forecastCmd := newForecastCommand(c)
	forecastCmd.GroupID = groupAnalysis

	summaryCmd := newSummaryCommand(c)
	summaryCmd.GroupID = groupView

	tuiCmd := newTUICommand(c)
	tuiCmd.GroupID = groupView

	root.AddCommand(
		validateCmd,
		analyzeCmd,
		forecastCmd,
		summaryCmd,
		tuiCmd,
	)

	return root
}

// resolveStart turns the --start flag or configured anchor into a time.
// The zero time means no explicit anchor; the analysis derives one from
// the schedule itself.
func resolveStart(c *app.Container, flagValue string) (time.Time, error) {
	if flagValue != "" {
		t, err := time.Parse("2006-01-02", flagValue)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid --start date %q (want YYYY-MM-DD)", flagValue)
		}
		return t, nil
	}
	if c != nil && c.Config != nil {
		t, err := c.Config.ProjectStart()
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid project.start in config: %w", err)
		}
		return t, nil
	}
	return time.Time{}, nil
}

// loadActivities loads the schedule file through the container's source.
func loadActivities(c *app.Container, path string) ([]domain.Activity, error) {
	activities, err := c.Schedules.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load schedule: %w", err)
	}
	return activities, nil
}

// activityNames maps parseable IDs to display names.
func activityNames(activities []domain.Activity) map[int]string {
	names := make(map[int]string, len(activities))
	for _, a := range activities {
		if id, ok := a.ParsedID(); ok {
			names[id] = a.Name
		}
	}
	return names
}

// fmtDate renders a date cell; missing dates show as a dash.
func fmtDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}

// yesNo renders a boolean cell.
func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
