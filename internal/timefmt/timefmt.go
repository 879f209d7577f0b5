// Package timefmt renders upstream timestamps for display and classifies
// them into morning/afternoon/evening buckets. Upstream date fields arrive
// as strings in several shapes and are frequently absent; parsing here is
// tolerant, with invalid input degrading to the shared placeholder (full
// dates) or an empty string (clock times) rather than an error.
package timefmt

import (
	"time"

	"prisonerhub/internal/domain"
)

// ISODay is the wire format for date-only values exchanged with the
// upstream APIs.
const ISODay = "2006-01-02"

const (
	fullDateLayout = "Monday 2 January 2006"
	dayTitleLayout = "Monday 2 January"
	dayMonthLayout = "2 January"
	weekdayLayout  = "Monday"
	clockLayout    = "3:04PM"
)

// upstreamLayouts are tried in order by Parse. The prison APIs send local
// wall-clock timestamps without a zone designator.
var upstreamLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	ISODay,
}

// Parse converts an upstream date string to a time.Time. The zero time is
// returned for anything unparseable, including the empty string; callers
// test with Valid rather than handling an error.
func Parse(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	for _, layout := range upstreamLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Valid reports whether t carries a real timestamp (i.e. parsing succeeded).
func Valid(t time.Time) bool {
	return !t.IsZero()
}

// PrettyDate renders "Saturday 7 December 2019", or the placeholder when t
// is invalid.
func PrettyDate(t time.Time) string {
	if !Valid(t) {
		return domain.Unavailable
	}
	return t.Format(fullDateLayout)
}

// PrettyDayTitle renders "Thursday 7 March" (no year), used as a timetable
// day heading.
func PrettyDayTitle(t time.Time) string {
	if !Valid(t) {
		return domain.Unavailable
	}
	return t.Format(dayTitleLayout)
}

// PrettyDayAndMonth renders "7 December".
func PrettyDayAndMonth(t time.Time) string {
	if !Valid(t) {
		return domain.Unavailable
	}
	return t.Format(dayMonthLayout)
}

// PrettyDay renders the weekday name alone.
func PrettyDay(t time.Time) string {
	if !Valid(t) {
		return domain.Unavailable
	}
	return t.Format(weekdayLayout)
}

// PrettyTime renders "3:04PM"-style clock times, or "" when t is invalid.
// Unlike the date formatters this degrades to empty rather than the
// placeholder: clock times are interpolated into composite strings.
func PrettyTime(t time.Time) string {
	if !Valid(t) {
		return ""
	}
	return t.Format(clockLayout)
}

// TimeOfDay classifies x as morning, afternoon or evening. The anchors are
// noon and 17:00 on now's calendar day — not x's. Events from another day
// therefore compare against today's anchors; this mirrors the behavior the
// rendering contract depends on and must not be "fixed" to per-event day
// arithmetic. Invalid x returns "" and is excluded from every bucket.
func TimeOfDay(now, x time.Time) string {
	if !Valid(x) {
		return ""
	}
	noon := time.Date(now.Year(), now.Month(), now.Day(), 12, 0, 0, 0, now.Location())
	five := time.Date(now.Year(), now.Month(), now.Day(), 17, 0, 0, 0, now.Location())

	switch {
	case x.Before(noon):
		return domain.Morning
	case x.Before(five):
		return domain.Afternoon
	default:
		return domain.Evening
	}
}

// BucketEnd returns the instant at which a day's bucket window closes:
// noon for morning, 17:00 for afternoon, and midnight at the close of the
// day for evening. day's clock portion is ignored.
func BucketEnd(day time.Time, bucket string) time.Time {
	y, m, d := day.Date()
	switch bucket {
	case domain.Morning:
		return time.Date(y, m, d, 12, 0, 0, 0, day.Location())
	case domain.Afternoon:
		return time.Date(y, m, d, 17, 0, 0, 0, day.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, day.Location()).AddDate(0, 0, 1)
	}
}
