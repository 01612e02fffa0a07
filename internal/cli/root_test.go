package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabe/slipway/internal/app"
	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/infra/schedfile"
)

func testContainer() *app.Container {
	return app.NewWithDeps(schedfile.NewSource(nil), nil, nil, domain.NewDefaultConfig())
}

func writeSchedule(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "schedule.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func execute(t *testing.T, c *app.Container, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand(c, "test")
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

const cleanSchedule = `activity_id,activity_name,predecessor_id,planned_start,planned_finish,planned_duration
1,Design,,2026-03-02,2026-03-06,5
2,Build,1FS,2026-03-09,2026-03-13,5
`

func TestValidateCommand(t *testing.T) {
	t.Run("clean schedule exits zero", func(t *testing.T) {
		path := writeSchedule(t, cleanSchedule)
		stdout, _, err := execute(t, testContainer(), "validate", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "OK")
	})

	t.Run("problems exit non-zero and print findings", func(t *testing.T) {
		path := writeSchedule(t, `activity_id,activity_name,predecessor_id,planned_start,planned_finish
1,Design,99FS,2026-03-02,2026-03-06
`)
		stdout, _, err := execute(t, testContainer(), "validate", path)
		require.Error(t, err)
		assert.Contains(t, stdout, "Missing predecessor ID 99")
	})

	t.Run("quiet suppresses the table", func(t *testing.T) {
		path := writeSchedule(t, cleanSchedule)
		stdout, _, err := execute(t, testContainer(), "validate", "--quiet", path)
		require.NoError(t, err)
		assert.Empty(t, stdout)
	})
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("prints the timing table", func(t *testing.T) {
		path := writeSchedule(t, cleanSchedule)
		stdout, _, err := execute(t, testContainer(), "analyze", "--start", "2026-03-02", path)
		require.NoError(t, err)

		assert.Contains(t, stdout, "FLOAT")
		assert.Contains(t, stdout, "Design")
		assert.Contains(t, stdout, "2026-03-06") // inclusive finish of activity 1
		assert.Contains(t, stdout, "2026-03-13")
	})

	t.Run("bad start flag fails", func(t *testing.T) {
		path := writeSchedule(t, cleanSchedule)
		_, _, err := execute(t, testContainer(), "analyze", "--start", "bogus", path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--start")
	})

	t.Run("cyclic schedule fails with findings", func(t *testing.T) {
		path := writeSchedule(t, `activity_id,activity_name,predecessor_id,planned_start,planned_finish
1,Chicken,2FS,2026-03-02,2026-03-06
2,Egg,1FS,2026-03-02,2026-03-06
`)
		stdout, _, err := execute(t, testContainer(), "analyze", "--start", "2026-03-02", path)
		require.Error(t, err)
		assert.Contains(t, stdout, "Cycle detected")
	})

	t.Run("derives start from planned dates", func(t *testing.T) {
		path := writeSchedule(t, cleanSchedule)
		stdout, _, err := execute(t, testContainer(), "analyze", path)
		require.NoError(t, err)
		assert.Contains(t, stdout, "2026-03-02")
	})
}

func TestForecastCommand(t *testing.T) {
	path := writeSchedule(t, `activity_id,activity_name,predecessor_id,planned_start,planned_finish,baseline_start,baseline_finish,actual_start,actual_finish
1,Design,,2026-03-02,2026-03-06,2026-03-02,2026-03-06,2026-03-02,2026-03-10
2,Build,1FS,2026-03-09,2026-03-13,2026-03-09,2026-03-13,,
`)
	stdout, _, err := execute(t, testContainer(), "forecast", "--start", "2026-03-02", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "CARRIED")
	assert.Contains(t, stdout, "100%")
	assert.Contains(t, stdout, "2026-03-10")
}

func TestSummaryCommand(t *testing.T) {
	path := writeSchedule(t, cleanSchedule)
	stdout, _, err := execute(t, testContainer(), "summary", "--start", "2026-03-02", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Activities: 2 total")
	assert.Contains(t, stdout, "Validation: clean")
	assert.Contains(t, stdout, "Critical path: 2 activities")
	assert.Contains(t, stdout, "Delays: none")
}

func TestConfigWarningsPrintedOnce(t *testing.T) {
	c := testContainer()
	c.Config.Warnings = []string{"unknown section: nonsense"}

	path := writeSchedule(t, cleanSchedule)
	_, stderr, err := execute(t, c, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Warning: unknown section: nonsense")
}
