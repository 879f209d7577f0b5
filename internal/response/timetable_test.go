package response_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/response"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTimetable_OneRowPerDayInWindow(t *testing.T) {
	start, end := day(2019, 3, 7), day(2019, 3, 9)
	now := day(2019, 3, 7)

	timetable := response.NewTimetable(start, end, now).AddEvents(nil).Build()

	require.Len(t, timetable.Days, 3)
	assert.Equal(t, "2019-03-07", timetable.Days[0].Date)
	assert.Equal(t, "Thursday 7 March", timetable.Days[0].Title)
	assert.Equal(t, "2019-03-09", timetable.Days[2].Date)

	for _, d := range timetable.Days {
		assert.Equal(t, domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}, d.Morning)
		assert.Equal(t, domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}, d.Afternoon)
		assert.Equal(t, domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}, d.Evening)
	}
}

func TestTimetable_PlacesEventInItsDayAndBucket(t *testing.T) {
	ref := day(2019, 3, 7)
	events := []repo.EventRecord{
		{
			EventSubTypeDesc: "Case - Legal Aid",
			EventType:        "APP",
			EventStatus:      "SCH",
			EventLocation:    "BODY REPAIR",
			StartTime:        "2019-03-07T22:10:00",
			EndTime:          "2019-03-07T22:45:00",
		},
	}

	timetable := response.NewTimetable(ref, ref, ref).AddEvents(events).Build()

	require.Len(t, timetable.Days, 1)
	today := timetable.Days[0]

	assert.Equal(t, domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}, today.Morning)
	assert.Equal(t, domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}, today.Afternoon)

	require.Len(t, today.Evening.Events, 1)
	assert.False(t, today.Evening.Finished, "evening window has not elapsed at midnight")
	assert.Equal(t, domain.EventDetail{
		Description: "Case - Legal Aid",
		StartTime:   "10:10PM",
		EndTime:     "10:45PM",
		Location:    "Body repair",
		TimeString:  "10:10PM to 10:45PM",
		EventType:   "APP",
		Finished:    false,
		Status:      "SCH",
	}, today.Evening.Events[0])
}

func TestTimetable_DropsEventsWithoutValidStartTime(t *testing.T) {
	ref := day(2019, 3, 7)
	events := []repo.EventRecord{
		{EventSubTypeDesc: "No start", StartTime: ""},
		{EventSubTypeDesc: "Bad start", StartTime: "FOO"},
	}

	timetable := response.NewTimetable(ref, ref, ref).AddEvents(events).Build()

	today := timetable.Days[0]
	assert.Empty(t, today.Morning.Events)
	assert.Empty(t, today.Afternoon.Events)
	assert.Empty(t, today.Evening.Events)
}

func TestTimetable_DropsEventsOutsideWindow(t *testing.T) {
	ref := day(2019, 3, 7)
	events := []repo.EventRecord{
		{EventSubTypeDesc: "Tomorrow", StartTime: "2019-03-08T09:00:00"},
	}

	timetable := response.NewTimetable(ref, ref, ref).AddEvents(events).Build()

	today := timetable.Days[0]
	assert.Empty(t, today.Morning.Events)
	assert.Empty(t, today.Afternoon.Events)
	assert.Empty(t, today.Evening.Events)
}

// A bucket whose window has elapsed is finished even when it holds events.
func TestTimetable_BucketFinishedAfterWindowElapses(t *testing.T) {
	ref := day(2019, 3, 7)
	now := time.Date(2019, 3, 7, 18, 0, 0, 0, time.UTC)
	events := []repo.EventRecord{
		{EventSubTypeDesc: "Workshop", StartTime: "2019-03-07T13:00:00", EndTime: "2019-03-07T14:00:00"},
	}

	timetable := response.NewTimetable(ref, ref, now).AddEvents(events).Build()

	afternoon := timetable.Days[0].Afternoon
	require.Len(t, afternoon.Events, 1)
	assert.True(t, afternoon.Finished)
	assert.True(t, afternoon.Events[0].Finished, "event end has passed")
}
