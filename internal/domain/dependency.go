package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// DependencyType represents the precedence relation between two activities.
type DependencyType string

const (
	FinishToStart  DependencyType = "FS" // Successor starts after predecessor finishes
	StartToStart   DependencyType = "SS" // Successor starts after predecessor starts
	FinishToFinish DependencyType = "FF" // Successor finishes after predecessor finishes
	StartToFinish  DependencyType = "SF" // Successor finishes after predecessor starts
)

// IsValid returns true if the type is a known precedence relation.
func (t DependencyType) IsValid() bool {
	switch t {
	case FinishToStart, StartToStart, FinishToFinish, StartToFinish:
		return true
	default:
		return false
	}
}

// DependencyToken is one parsed entry of an activity's dependency notation.
type DependencyToken struct {
	Predecessor int            // Predecessor activity ID
	Type        DependencyType // Precedence relation
	Lag         int            // Signed lag in working days (negative = lead)
}

// String renders the token back into its notation form.
// A zero lag is omitted; non-zero lag always carries an explicit sign.
func (t DependencyToken) String() string {
	if t.Lag == 0 {
		return fmt.Sprintf("%d%s", t.Predecessor, t.Type)
	}
	return fmt.Sprintf("%d%s%+dd", t.Predecessor, t.Type, t.Lag)
}

// MalformedDependencyError reports a dependency segment that does not match
// the notation grammar.
type MalformedDependencyError struct {
	Token string // The offending segment, as written
}

func (e *MalformedDependencyError) Error() string {
	return fmt.Sprintf("malformed dependency: %q", e.Token)
}

func (e *MalformedDependencyError) Unwrap() error {
	return ErrMalformedDependency
}

// dependencyPattern matches a full dependency segment: <digits><TYPE><lag>?
// where TYPE is FS/SS/FF/SF and lag is a signed day count like "+2d" or "-1d".
// Partial matches are rejected.
var dependencyPattern = regexp.MustCompile(`^(\d+)(FS|SS|FF|SF)(?:([+-]?\d+)d)?$`)

// ParseDependencies parses a semicolon-delimited dependency notation string
// into tokens, preserving input order. An empty or blank string yields no
// tokens and no error. A segment that does not fully match the grammar fails
// the whole parse with a MalformedDependencyError; callers must treat the
// entire notation string as invalid, not just the bad segment.
func ParseDependencies(raw string) ([]DependencyToken, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var tokens []DependencyToken
	for _, part := range strings.Split(raw, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		m := dependencyPattern.FindStringSubmatch(part)
		if m == nil {
			return nil, &MalformedDependencyError{Token: part}
		}

		pred, err := strconv.Atoi(m[1])
		if err != nil {
			// Digits too large for int; treat as malformed rather than panic.
			return nil, &MalformedDependencyError{Token: part}
		}

		lag := 0
		if m[3] != "" {
			lag, err = strconv.Atoi(m[3])
			if err != nil {
				return nil, &MalformedDependencyError{Token: part}
			}
		}

		tokens = append(tokens, DependencyToken{
			Predecessor: pred,
			Type:        DependencyType(m[2]),
			Lag:         lag,
		})
	}
	return tokens, nil
}
