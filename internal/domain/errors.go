package domain

import "errors"

// Domain errors.
var (
	ErrMalformedDependency = errors.New("malformed dependency notation")
	ErrCyclicGraph         = errors.New("graph contains cycles; CPM cannot be calculated")
	ErrUnsupportedFormat   = errors.New("unsupported schedule file format")
	ErrMissingColumns      = errors.New("missing required columns")
	ErrNoActivities        = errors.New("schedule contains no activities")
	ErrNoProjectStart      = errors.New("project start date not provided and no planned start to derive it from")
)
