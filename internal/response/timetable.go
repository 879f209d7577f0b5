package response

import (
	"time"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/timefmt"
)

// Timetable aggregates raw events into per-day display buckets for a
// queried window. Build once per query: NewTimetable(...).AddEvents(...).Build().
type Timetable struct {
	days  []*timetableDay
	index map[string]*timetableDay
	now   time.Time
}

type timetableDay struct {
	date    time.Time
	buckets map[string][]domain.EventDetail
}

// NewTimetable creates an empty timetable with one row per day in the
// inclusive [start, end] range. now is the reference instant for
// time-of-day classification and finished computation.
func NewTimetable(start, end, now time.Time) *Timetable {
	t := &Timetable{index: make(map[string]*timetableDay), now: now}
	for d := dayOf(start); !d.After(dayOf(end)); d = d.AddDate(0, 0, 1) {
		day := &timetableDay{date: d, buckets: map[string][]domain.EventDetail{}}
		t.days = append(t.days, day)
		t.index[d.Format(timefmt.ISODay)] = day
	}
	return t
}

// AddEvents formats each raw event and slots it into its day's time-of-day
// bucket. Events without a valid start time classify into no bucket and are
// dropped, as are events outside the window.
func (t *Timetable) AddEvents(events []repo.EventRecord) *Timetable {
	for i := range events {
		rec := events[i]
		start := timefmt.Parse(rec.StartTime)
		bucket := timefmt.TimeOfDay(t.now, start)
		if bucket == "" {
			continue
		}
		day, ok := t.index[start.Format(timefmt.ISODay)]
		if !ok {
			continue
		}
		day.buckets[bucket] = append(day.buckets[bucket], NewTimetableEvent(&rec).Format(t.now))
	}
	return t
}

// Build produces the formatted timetable, days in chronological order.
func (t *Timetable) Build() domain.Timetable {
	out := domain.Timetable{Days: make([]domain.TimetableDay, 0, len(t.days))}
	for _, day := range t.days {
		out.Days = append(out.Days, domain.TimetableDay{
			Date:      day.date.Format(timefmt.ISODay),
			Title:     timefmt.PrettyDayTitle(day.date),
			Morning:   t.bucket(day, domain.Morning),
			Afternoon: t.bucket(day, domain.Afternoon),
			Evening:   t.bucket(day, domain.Evening),
		})
	}
	return out
}

// bucket marks a slot finished when it is empty or its window on that day
// has fully elapsed.
func (t *Timetable) bucket(day *timetableDay, name string) domain.EventsBucket {
	events := day.buckets[name]
	if events == nil {
		events = []domain.EventDetail{}
	}
	elapsed := !t.now.Before(timefmt.BucketEnd(day.date, name))
	return domain.EventsBucket{
		Finished: len(events) == 0 || elapsed,
		Events:   events,
	}
}

func dayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
