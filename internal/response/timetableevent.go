package response

import (
	"time"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/timefmt"
)

// eventSubTypePA marks prisoner-activity events, which display the broader
// source description instead of their sub-type description.
const eventSubTypePA = "PA"

// TimetableEvent adapts a single raw scheduled activity.
type TimetableEvent struct {
	startTime        string
	endTime          string
	eventSourceDesc  string
	eventLocation    string
	eventType        string
	eventSubType     string
	eventSubTypeDesc string
	eventStatus      string
	paid             *bool
}

// NewTimetableEvent constructs the adapter from a possibly-nil record.
func NewTimetableEvent(rec *repo.EventRecord) TimetableEvent {
	if rec == nil {
		return TimetableEvent{}
	}
	return TimetableEvent{
		startTime:        rec.StartTime,
		endTime:          rec.EndTime,
		eventSourceDesc:  rec.EventSourceDesc,
		eventLocation:    rec.EventLocation,
		eventType:        rec.EventType,
		eventSubType:     rec.EventSubType,
		eventSubTypeDesc: rec.EventSubTypeDesc,
		eventStatus:      rec.EventStatus,
		paid:             rec.Paid,
	}
}

// Format returns the display event. now anchors the finished computation:
// an event is finished when it has no valid start time at all, or when its
// end has passed. A missing end leaves a started event unfinished.
func (e TimetableEvent) Format(now time.Time) domain.EventDetail {
	start := timefmt.Parse(e.startTime)
	end := timefmt.Parse(e.endTime)
	startStr := timefmt.PrettyTime(start)
	endStr := timefmt.PrettyTime(end)

	return domain.EventDetail{
		Description: domain.OrUnavailable(e.description()),
		StartTime:   startStr,
		EndTime:     endStr,
		Location:    locationOr(domain.Unavailable, e.eventLocation),
		TimeString:  timeString(startStr, endStr),
		EventType:   domain.OrUnavailable(e.eventType),
		Finished:    finished(now, start, end),
		Status:      domain.OrUnavailable(e.eventStatus),
		Paid:        e.paid,
	}
}

func (e TimetableEvent) description() string {
	if e.eventSubType == eventSubTypePA {
		return e.eventSourceDesc
	}
	return e.eventSubTypeDesc
}

func timeString(start, end string) string {
	switch {
	case start == "":
		return ""
	case end == "":
		return start
	default:
		return start + " to " + end
	}
}

func finished(now, start, end time.Time) bool {
	if !timefmt.Valid(start) {
		return true
	}
	return timefmt.Valid(end) && end.Before(now)
}

func locationOr(fallback, s string) string {
	if s == "" {
		return fallback
	}
	return sentenceCase(s)
}
