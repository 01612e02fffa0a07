package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/usecase"
)

// newSummaryCommand creates the summary command.
func newSummaryCommand(c *app.Container) *cobra.Command {
	var startFlag string

	cmd := &cobra.Command{
		Use:   "summary <schedule-file>",
		Short: "Print a roll-up of schedule health",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := loadActivities(c, args[0])
			if err != nil {
				return err
			}
			start, err := resolveStart(c, startFlag)
			if err != nil {
				return err
			}

			out, err := c.SummarizeScheduleUseCase().Execute(cmd.Context(), usecase.SummarizeScheduleInput{
				Activities:   activities,
				ProjectStart: start,
			})
			if err != nil {
				return err
			}

			printSummary(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Project start date (YYYY-MM-DD); overrides config")
	return cmd
}

func printSummary(w io.Writer, s *usecase.SummarizeScheduleOutput) {
	_, _ = fmt.Fprintf(w, "Activities: %d total, %d finished\n", s.TotalActivities, s.FinishedCount)

	if s.HasCycle {
		_, _ = fmt.Fprintln(w, "Validation: dependency cycles present; timing analysis skipped")
		return
	}
	if !s.ValidationClean {
		_, _ = fmt.Fprintln(w, "Validation: problems found (run validate for details)")
	} else {
		_, _ = fmt.Fprintln(w, "Validation: clean")
	}
	if !s.CPMRun {
		return
	}

	_, _ = fmt.Fprintf(w, "Critical path: %d activities\n", s.CriticalCount)

	switch {
	case s.DelayedCount == 0:
		_, _ = fmt.Fprintln(w, "Delays: none")
	default:
		_, _ = fmt.Fprintf(w, "Delays: %d activities late, worst %d working days\n", s.DelayedCount, s.MaxDelay)
		for _, d := range s.TopDelayCreators {
			name := d.Name
			if name == "" {
				name = fmt.Sprintf("Activity %d", d.ID)
			}
			_, _ = fmt.Fprintf(w, "  - %s: %d working days of self-created delay\n", name, d.CreatedDelay)
		}
	}

	if !s.PlannedFinish.IsZero() && !s.ForecastFinish.IsZero() {
		switch {
		case s.FinishVarianceDays > 0:
			_, _ = fmt.Fprintf(w, "Finish: forecast %s vs planned %s (%d working days late)\n",
				fmtDate(s.ForecastFinish), fmtDate(s.PlannedFinish), s.FinishVarianceDays)
		case s.FinishVarianceDays < 0:
			_, _ = fmt.Fprintf(w, "Finish: forecast %s vs planned %s (%d working days early)\n",
				fmtDate(s.ForecastFinish), fmtDate(s.PlannedFinish), -s.FinishVarianceDays)
		default:
			_, _ = fmt.Fprintf(w, "Finish: on plan (%s)\n", fmtDate(s.PlannedFinish))
		}
	}
}
