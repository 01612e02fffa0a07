package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/usecase"
)

// newForecastCommand creates the forecast command.
func newForecastCommand(c *app.Container) *cobra.Command {
	var startFlag string
	var delayedOnly bool

	cmd := &cobra.Command{
		Use:   "forecast <schedule-file>",
		Short: "Project delay propagation from actual progress",
		Long: `forecast compares actual progress against the baseline and walks the
network in dependency order, splitting each activity's delay into the
part inherited from predecessors and the part it created itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := loadActivities(c, args[0])
			if err != nil {
				return err
			}
			start, err := resolveStart(c, startFlag)
			if err != nil {
				return err
			}

			out, err := c.AnalyzeScheduleUseCase().Execute(cmd.Context(), usecase.AnalyzeScheduleInput{
				Activities:   activities,
				ProjectStart: start,
			})
			if err != nil {
				return err
			}
			if !out.CPMRun {
				printValidationProblems(cmd.OutOrStdout(), out, activities)
				return fmt.Errorf("schedule has dependency cycles; fix them and re-run")
			}

			names := activityNames(activities)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
			defer func() { _ = tw.Flush() }()

			_, _ = fmt.Fprintln(tw, "ID\tNAME\tPCT\tF.START\tF.FINISH\tCARRIED\tTOTAL\tCREATED\tABSORBED")
			for _, id := range sortedIDs(out.Forecast) {
				f := out.Forecast[id]
				if delayedOnly && f.TotalScheduleDelay <= 0 {
					continue
				}
				_, _ = fmt.Fprintf(tw, "%d\t%s\t%d%%\t%s\t%s\t%d\t%d\t%d\t%d\n",
					id, names[id], f.PercentComplete,
					fmtDate(f.ForecastStart), fmtDate(f.ForecastFinish),
					f.DelayCarriedIn, f.TotalScheduleDelay, f.TaskCreatedDelay, f.DelayAbsorbed,
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Project start date (YYYY-MM-DD); overrides config")
	cmd.Flags().BoolVar(&delayedOnly, "delayed-only", false, "Only show activities with positive total delay")
	return cmd
}
