package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/usecase"
)

// newValidateCommand creates the validate command.
func newValidateCommand(c *app.Container) *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate <schedule-file>",
		Short: "Check dependency notation and network structure",
		Long: `validate parses every activity's dependency string and checks the
resulting network for self-dependencies, references to missing
activities, malformed tokens, and cycles. Findings are reported per
activity; the command exits non-zero when any finding exists.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			activities, err := loadActivities(c, args[0])
			if err != nil {
				return err
			}

			out, err := c.ValidateScheduleUseCase().Execute(cmd.Context(), usecase.ValidateScheduleInput{
				Activities: activities,
			})
			if err != nil {
				return err
			}

			if !quiet {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
				_, _ = fmt.Fprintln(tw, "ID\tNAME\tSTATUS")
				for _, f := range out.Findings {
					_, _ = fmt.Fprintf(tw, "%d\t%s\t%s\n", f.ID, f.Name, f.Status.String())
				}
				for _, issue := range out.InvalidIDs {
					_, _ = fmt.Fprintf(tw, "-\t-\tERROR: %s\n", issue.String())
				}
				_ = tw.Flush()
			}

			if !out.Clean {
				return fmt.Errorf("validation found problems")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Suppress the table; only set the exit code")
	return cmd
}
