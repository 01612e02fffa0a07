package cli

import (
	"fmt"
	"io"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/usecase"
)

// newAnalyzeCommand creates the analyze command.
func newAnalyzeCommand(c *app.Container) *cobra.Command {
	var startFlag string
	var criticalOnly bool

	cmd := &cobra.Command{
		Use:   "analyze <schedule-file>",
		Short: "Run the critical path analysis and print the timing table",
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

			if !criticalOnly && c.Config != nil {
				criticalOnly = c.Config.Output.CriticalOnly
			}
			printTimingTable(cmd.OutOrStdout(), out, activities, criticalOnly)
			return nil
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Project start date (YYYY-MM-DD); overrides config")
	cmd.Flags().BoolVar(&criticalOnly, "critical-only", false, "Only show critical-path activities")
	return cmd
}

// printTimingTable prints per-activity CPM results in TSV format.
func printTimingTable(w io.Writer, out *usecase.AnalyzeScheduleOutput, activities []domain.Activity, criticalOnly bool) {
	names := activityNames(activities)

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	defer func() { _ = tw.Flush() }()

	_, _ = fmt.Fprintln(tw, "ID\tNAME\tDUR\tES\tEF\tLS\tLF\tFLOAT\tCRIT\tSTART\tFINISH")

	for _, id := range sortedIDs(out.Timing) {
		r := out.Timing[id]
		if criticalOnly && !r.OnCriticalPath {
			continue
		}
		_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\t%d\t%d\t%s\t%s\t%s\n",
			id, names[id], r.Duration,
			r.ES, r.EF, r.LS, r.LF, r.TotalFloat,
			yesNo(r.OnCriticalPath),
			fmtDate(r.ESDate), fmtDate(r.EFDate),
		)
	}
}

func sortedIDs[V any](m map[int]V) []int {
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// printValidationProblems prints the findings that blocked the analysis.
func printValidationProblems(w io.Writer, out *usecase.AnalyzeScheduleOutput, activities []domain.Activity) {
	names := activityNames(activities)
	for _, id := range sortedIDs(out.Validation.Statuses) {
		status := out.Validation.Statuses[id]
		if status.OK() {
			continue
		}
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\n", id, names[id], status.String())
	}
	for _, issue := range out.Validation.InvalidIDs {
		_, _ = fmt.Fprintf(w, "-\t-\t%s\n", issue.String())
	}
}
