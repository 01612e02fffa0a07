// Package testutil provides helpers shared across test packages.
package testutil

import (
	"fmt"
	"time"
)

// MustDate parses an ISO date or panics. Test fixtures only.
func MustDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(fmt.Sprintf("bad test date %q: %v", s, err))
	}
	return t
}
