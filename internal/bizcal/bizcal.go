// Package bizcal provides Mon-Fri business-day calendar arithmetic.
// All functions normalize their inputs to midnight UTC; weekends are
// Saturday and Sunday under the single global calendar.
package bizcal

import "time"

// Date normalizes a timestamp to midnight UTC, discarding the clock.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// IsBusinessDay returns true if t falls on a weekday.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// RollForward moves t to the next business day if it falls on a weekend.
// Business days pass through unchanged; dates are never rolled backward.
func RollForward(t time.Time) time.Time {
	d := Date(t)
	for !IsBusinessDay(d) {
		d = d.AddDate(0, 0, 1)
	}
	return d
}

// AddDays rolls t forward to a business day and then advances it n business
// days (backward when n is negative).
func AddDays(t time.Time, n int) time.Time {
	d := RollForward(t)
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for ; n > 0; n-- {
		d = d.AddDate(0, 0, step)
		for !IsBusinessDay(d) {
			d = d.AddDate(0, 0, step)
		}
	}
	return d
}

// CountDays counts business days in the half-open interval [from, to).
// The count is signed: when to precedes from the result is the negated
// count of [to, from).
func CountDays(from, to time.Time) int {
	f, t := Date(from), Date(to)
	if t.Before(f) {
		return -weekdaysBetween(t, f)
	}
	return weekdaysBetween(f, t)
}

// weekdaysBetween counts weekdays in [from, to) for from <= to.
func weekdaysBetween(from, to time.Time) int {
	days := int(to.Sub(from) / (24 * time.Hour))
	weeks := days / 7
	count := weeks * 5
	for d := from.AddDate(0, 0, weeks*7); d.Before(to); d = d.AddDate(0, 0, 1) {
		if IsBusinessDay(d) {
			count++
		}
	}
	return count
}

// Span returns the inclusive working-day span between start and finish:
// a Monday-to-Friday activity spans 5 days, same-day spans 1. The finish
// date itself counts only when it falls on a business day. A zero start or
// finish yields 0.
func Span(start, finish time.Time) int {
	if start.IsZero() || finish.IsZero() {
		return 0
	}
	n := CountDays(start, finish)
	if IsBusinessDay(Date(finish)) {
		n++
	}
	return n
}

// Delta returns the signed working-day delta of target relative to
// baseline: positive when target is later. A zero target or baseline
// yields 0 (missing dates imply no measurable delay).
func Delta(target, baseline time.Time) int {
	if target.IsZero() || baseline.IsZero() {
		return 0
	}
	return CountDays(baseline, target)
}
