package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationStatusString(t *testing.T) {
	t.Run("zero value is OK", func(t *testing.T) {
		var s ValidationStatus
		assert.True(t, s.OK())
		assert.Equal(t, "OK", s.String())
	})

	t.Run("issues render in order", func(t *testing.T) {
		var s ValidationStatus
		s.Add(Issue{Kind: IssueMissingPredecessor, Predecessor: 99})
		s.Add(Issue{Kind: IssueCycle, Path: []int{1, 2, 3}})

		assert.False(t, s.OK())
		assert.Equal(t, "ERROR: Missing predecessor ID 99; Cycle detected (1->2->3)", s.String())
	})

	t.Run("single issue renderings", func(t *testing.T) {
		cases := []struct {
			issue Issue
			want  string
		}{
			{Issue{Kind: IssueInvalidID, Token: "A7"}, `Invalid Activity ID "A7"`},
			{Issue{Kind: IssueSelfDependency, Predecessor: 4}, "Self-dependency on 4"},
			{Issue{Kind: IssueMissingPredecessor, Predecessor: 12}, "Missing predecessor ID 12"},
			{Issue{Kind: IssueMalformedToken, Token: "2XX"}, `Malformed dependency: "2XX"`},
			{Issue{Kind: IssueCycle, Path: []int{5, 6}}, "Cycle detected (5->6)"},
		}
		for _, tc := range cases {
			assert.Equal(t, tc.want, tc.issue.String())
		}
	})
}

func TestValidationStatusHasCycle(t *testing.T) {
	var s ValidationStatus
	assert.False(t, s.HasCycle())

	s.Add(Issue{Kind: IssueSelfDependency, Predecessor: 1})
	assert.False(t, s.HasCycle())

	s.Add(Issue{Kind: IssueCycle, Path: []int{1, 2}})
	assert.True(t, s.HasCycle())
}
