package cli

import (
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/tui"
	"github.com/okabe/slipway/internal/usecase"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it
// to be mocked in tests.
var launchTUIFunc = launchTUI

// newTUICommand creates the tui command.
func newTUICommand(c *app.Container) *cobra.Command {
	var startFlag string

	cmd := &cobra.Command{
		Use:   "tui <schedule-file>",
		Short: "Browse the analysis in an interactive table",
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

			model := tui.New(filepath.Base(args[0]), activities, out)
			return launchTUIFunc(model)
		},
	}

	cmd.Flags().StringVar(&startFlag, "start", "", "Project start date (YYYY-MM-DD); overrides config")
	return cmd
}

// launchTUI runs the bubbletea program in the alternate screen.
func launchTUI(model tui.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
