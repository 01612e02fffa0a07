package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// IssueKind identifies a category of validation problem.
type IssueKind string

const (
	IssueInvalidID          IssueKind = "invalid_id"          // Activity ID is not an integer
	IssueSelfDependency     IssueKind = "self_dependency"     // Activity depends on itself
	IssueMissingPredecessor IssueKind = "missing_predecessor" // Referenced predecessor does not exist
	IssueMalformedToken     IssueKind = "malformed_token"     // Dependency notation does not parse
	IssueCycle              IssueKind = "cycle"               // Activity participates in a cycle
)

// Issue is one tagged validation finding attached to an activity.
// Only the fields relevant to the kind are populated.
type Issue struct {
	Kind        IssueKind
	Predecessor int    // Referenced activity ID (self/missing predecessor)
	Token       string // Offending text (malformed token, invalid ID)
	Path        []int  // Cycle membership, in traversal order
}

// String renders the issue in the report format consumed downstream.
func (i Issue) String() string {
	switch i.Kind {
	case IssueInvalidID:
		return fmt.Sprintf("Invalid Activity ID %q", i.Token)
	case IssueSelfDependency:
		return fmt.Sprintf("Self-dependency on %d", i.Predecessor)
	case IssueMissingPredecessor:
		return fmt.Sprintf("Missing predecessor ID %d", i.Predecessor)
	case IssueMalformedToken:
		return fmt.Sprintf("Malformed dependency: %q", i.Token)
	case IssueCycle:
		return fmt.Sprintf("Cycle detected (%s)", renderPath(i.Path))
	default:
		return string(i.Kind)
	}
}

func renderPath(path []int) string {
	parts := make([]string, len(path))
	for i, id := range path {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, "->")
}

// ValidationStatus is the ordered set of validation findings for one
// activity. The zero value means the activity validated cleanly.
type ValidationStatus struct {
	Issues []Issue
}

// OK returns true if no issues were recorded.
func (s ValidationStatus) OK() bool {
	return len(s.Issues) == 0
}

// Add appends an issue, preserving the order findings were made in.
// Cycle findings append to whatever is already recorded rather than
// replacing it.
func (s *ValidationStatus) Add(issue Issue) {
	s.Issues = append(s.Issues, issue)
}

// HasCycle returns true if any recorded issue is a cycle membership.
func (s ValidationStatus) HasCycle() bool {
	for _, i := range s.Issues {
		if i.Kind == IssueCycle {
			return true
		}
	}
	return false
}

// String renders the status the way validation reports display it:
// "OK", or "ERROR: <issue>; <issue>; ...".
func (s ValidationStatus) String() string {
	if s.OK() {
		return "OK"
	}
	parts := make([]string, len(s.Issues))
	for i, issue := range s.Issues {
		parts[i] = issue.String()
	}
	return "ERROR: " + strings.Join(parts, "; ")
}
