package cpm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabe/slipway/internal/domain"
	"github.com/okabe/slipway/internal/network"
)

func buildNet(t *testing.T, activities ...domain.Activity) *network.Network {
	t.Helper()
	net, val := network.Build(activities)
	require.True(t, val.Clean(), "fixture must validate cleanly")
	return net
}

func act(id int, preds string) domain.Activity {
	return domain.Activity{ID: id, Predecessors: preds}
}

func TestSolveFinishToStartChain(t *testing.T) {
	net := buildNet(t,
		act(1, ""),
		act(2, "1FS"),
	)
	results, err := Solve(net, map[int]int{1: 5, 2: 5})
	require.NoError(t, err)

	assert.Equal(t, 0, results[1].ES)
	assert.Equal(t, 5, results[1].EF)
	assert.Equal(t, 5, results[2].ES)
	assert.Equal(t, 10, results[2].EF)

	// A two-node chain is entirely critical.
	for id, r := range results {
		assert.Zerof(t, r.TotalFloat, "activity %d", id)
		assert.True(t, r.OnCriticalPath)
	}
}

func TestSolveStartToStartWithLag(t *testing.T) {
	net := buildNet(t,
		act(1, ""),
		act(2, "1SS+2d"),
	)
	results, err := Solve(net, map[int]int{1: 5, 2: 5})
	require.NoError(t, err)

	assert.Equal(t, 2, results[2].ES)
	assert.Equal(t, 7, results[2].EF)
}

func TestSolveFinishToFinish(t *testing.T) {
	net := buildNet(t,
		act(1, ""),
		act(2, "1FF"),
	)
	results, err := Solve(net, map[int]int{1: 5, 2: 2})
	require.NoError(t, err)

	// Successor must finish no earlier than the predecessor's finish.
	assert.Equal(t, 5, results[2].EF)
	assert.Equal(t, 3, results[2].ES)
}

func TestSolveNegativeLagLead(t *testing.T) {
	net := buildNet(t,
		act(1, ""),
		act(2, "1FS-2d"),
	)
	results, err := Solve(net, map[int]int{1: 5, 2: 3})
	require.NoError(t, err)

	assert.Equal(t, 3, results[2].ES)
	assert.Equal(t, 6, results[2].EF)
}

func TestSolveParallelFloat(t *testing.T) {
	// 1 -> 2 (dur 5) -> 4 and 1 -> 3 (dur 2) -> 4: the short branch floats.
	net := buildNet(t,
		act(1, ""),
		act(2, "1FS"),
		act(3, "1FS"),
		act(4, "2FS;3FS"),
	)
	results, err := Solve(net, map[int]int{1: 1, 2: 5, 3: 2, 4: 1})
	require.NoError(t, err)

	assert.Equal(t, 0, results[2].TotalFloat)
	assert.True(t, results[2].OnCriticalPath)

	assert.Equal(t, 3, results[3].TotalFloat)
	assert.False(t, results[3].OnCriticalPath)

	assert.Equal(t, 7, results[4].EF)
	assert.Equal(t, 7, ProjectFinish(results))
}

func TestSolveMilestone(t *testing.T) {
	net := buildNet(t,
		act(1, ""),
		act(2, "1FS"),
	)
	results, err := Solve(net, map[int]int{1: 5})
	require.NoError(t, err)

	// Absent duration means a zero-length milestone pinned at its ES.
	assert.Equal(t, 5, results[2].ES)
	assert.Equal(t, 5, results[2].EF)
	assert.Zero(t, results[2].Duration)
}

func TestSolveEmptyNetwork(t *testing.T) {
	results, err := Solve(network.New(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSolveCyclicNetworkFails(t *testing.T) {
	net, _ := network.Build([]domain.Activity{
		act(1, "2FS"),
		act(2, "1FS"),
	})
	_, err := Solve(net, map[int]int{1: 1, 2: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCyclicGraph)
}
