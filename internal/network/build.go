package network

import (
	"errors"
	"strings"

	"github.com/okabe/slipway/internal/domain"
)

// Validation is the per-activity outcome of building a network.
type Validation struct {
	// Statuses maps each activity with a parseable ID to its findings.
	// An entry with no issues validated cleanly.
	Statuses map[int]domain.ValidationStatus
	// InvalidIDs records rows whose identifier is not an integer. Such
	// rows have no int key to attach a status to, so they are reported
	// here with the raw text preserved.
	InvalidIDs []domain.Issue
}

// Clean returns true if every activity validated without findings.
func (v Validation) Clean() bool {
	if len(v.InvalidIDs) > 0 {
		return false
	}
	for _, s := range v.Statuses {
		if !s.OK() {
			return false
		}
	}
	return true
}

// HasCycle returns true if any activity participates in a cycle.
func (v Validation) HasCycle() bool {
	for _, s := range v.Statuses {
		if s.HasCycle() {
			return true
		}
	}
	return false
}

// Build constructs the dependency graph from an activity table and
// validates it. It never fails: problems are recorded as per-activity
// statuses and the (possibly partial) network is returned alongside them.
//
// Token processing within a single activity stops at the first failing
// token: a self-dependency or missing predecessor invalidates that
// activity's remaining tokens, but never other activities. The cycle pass
// afterwards appends to already-failing activities rather than overwriting.
func Build(activities []domain.Activity) (*Network, Validation) {
	net := New()
	val := Validation{Statuses: make(map[int]domain.ValidationStatus)}

	// Pass 1: register every activity with a parseable ID so edge
	// validation knows which references exist.
	for _, a := range activities {
		id, ok := a.ParsedID()
		if !ok {
			val.InvalidIDs = append(val.InvalidIDs, domain.Issue{
				Kind:  domain.IssueInvalidID,
				Token: strings.TrimSpace(a.RawID),
			})
			continue
		}
		net.addNode(id)
	}

	// Pass 2: parse dependency notation and add edges.
	for _, a := range activities {
		id, ok := a.ParsedID()
		if !ok {
			continue
		}

		var status domain.ValidationStatus

		tokens, err := domain.ParseDependencies(a.Predecessors)
		if err != nil {
			var malformed *domain.MalformedDependencyError
			token := a.Predecessors
			if errors.As(err, &malformed) {
				token = malformed.Token
			}
			status.Add(domain.Issue{Kind: domain.IssueMalformedToken, Token: token})
			val.Statuses[id] = status
			continue
		}

		for _, tok := range tokens {
			if tok.Predecessor == id {
				status.Add(domain.Issue{Kind: domain.IssueSelfDependency, Predecessor: id})
				break
			}
			if !net.Has(tok.Predecessor) {
				status.Add(domain.Issue{Kind: domain.IssueMissingPredecessor, Predecessor: tok.Predecessor})
				break
			}
			net.addEdge(Edge{Pred: tok.Predecessor, Succ: id, Type: tok.Type, Lag: tok.Lag})
		}

		val.Statuses[id] = status
	}

	// Pass 3: mark every member of every simple cycle.
	for _, cycle := range net.simpleCycles() {
		for _, id := range cycle {
			status := val.Statuses[id]
			status.Add(domain.Issue{Kind: domain.IssueCycle, Path: cycle})
			val.Statuses[id] = status
		}
	}

	return net, val
}
