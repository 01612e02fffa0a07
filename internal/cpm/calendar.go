package cpm

import (
	"time"

	"github.com/okabe/slipway/internal/bizcal"
)

// ApplyCalendar renders the integer offsets of every result into calendar
// dates against the Mon-Fri business calendar anchored at the given project
// start, returning an enriched copy. The anchor rolls forward to the next
// business day when it falls on a weekend, never backward.
//
// Start offsets map directly: ES_date = anchor + ES business days. Finish
// offsets are exclusive end markers in the offset domain but render as the
// inclusive last working day, so for a positive duration the date is
// anchor + (offset-1) business days. Zero-duration milestones render their
// finish at the offset itself, making start and finish coincide. This
// asymmetry must hold exactly; it is the easiest thing in the engine to
// get subtly wrong.
func ApplyCalendar(results map[int]Result, projectStart time.Time) map[int]Result {
	anchor := bizcal.RollForward(projectStart)

	enriched := make(map[int]Result, len(results))
	for id, r := range results {
		r.ESDate = bizcal.AddDays(anchor, r.ES)
		r.LSDate = bizcal.AddDays(anchor, r.LS)
		if r.Duration > 0 {
			r.EFDate = bizcal.AddDays(anchor, r.EF-1)
			r.LFDate = bizcal.AddDays(anchor, r.LF-1)
		} else {
			r.EFDate = bizcal.AddDays(anchor, r.EF)
			r.LFDate = bizcal.AddDays(anchor, r.LF)
		}
		enriched[id] = r
	}
	return enriched
}
