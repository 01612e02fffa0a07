package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabe/slipway/internal/domain"
)

func TestValidateScheduleExecute(t *testing.T) {
	uc := NewValidateSchedule(nil)

	t.Run("empty schedule fails", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), ValidateScheduleInput{})
		assert.ErrorIs(t, err, domain.ErrNoActivities)
	})

	t.Run("clean schedule", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ValidateScheduleInput{
			Activities: []domain.Activity{
				{ID: 1, Name: "Design"},
				{ID: 2, Name: "Build", Predecessors: "1FS"},
			},
		})
		require.NoError(t, err)

		assert.True(t, out.Clean)
		assert.False(t, out.HasCycle)
		require.Len(t, out.Findings, 2)
		assert.Equal(t, "Design", out.Findings[0].Name)
		assert.Equal(t, "OK", out.Findings[0].Status.String())
	})

	t.Run("findings are ordered by ID", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ValidateScheduleInput{
			Activities: []domain.Activity{
				{ID: 30, Predecessors: "99FS"},
				{ID: 10},
				{ID: 20, Predecessors: "20SS"},
			},
		})
		require.NoError(t, err)

		assert.False(t, out.Clean)
		require.Len(t, out.Findings, 3)
		assert.Equal(t, []int{10, 20, 30}, []int{out.Findings[0].ID, out.Findings[1].ID, out.Findings[2].ID})
		assert.Equal(t, "ERROR: Self-dependency on 20", out.Findings[1].Status.String())
		assert.Equal(t, "ERROR: Missing predecessor ID 99", out.Findings[2].Status.String())
	})

	t.Run("invalid identifiers are reported separately", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ValidateScheduleInput{
			Activities: []domain.Activity{
				{RawID: "A1"},
				{ID: 2},
			},
		})
		require.NoError(t, err)

		assert.False(t, out.Clean)
		require.Len(t, out.InvalidIDs, 1)
		assert.Equal(t, `Invalid Activity ID "A1"`, out.InvalidIDs[0].String())
	})

	t.Run("cycle flag is set", func(t *testing.T) {
		out, err := uc.Execute(context.Background(), ValidateScheduleInput{
			Activities: []domain.Activity{
				{ID: 1, Predecessors: "2FS"},
				{ID: 2, Predecessors: "1FS"},
			},
		})
		require.NoError(t, err)
		assert.True(t, out.HasCycle)
	})
}
