package domain

// Time-of-day bucket names, in chronological order.
const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"
)

// EventDetail is a single formatted timetable entry.
// Paid is a pointer because the upstream omits it for unpaid activity types;
// the rendering layer distinguishes "not paid" from "not applicable".
type EventDetail struct {
	Description string `json:"description"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	Location    string `json:"location"`
	TimeString  string `json:"timeString"`
	EventType   string `json:"eventType"`
	Finished    bool   `json:"finished"`
	Status      string `json:"status"`
	Paid        *bool  `json:"paid,omitempty"`
}

// EventsBucket is one morning/afternoon/evening slot of a day.
// Finished is true when the bucket is empty or its window has fully elapsed
// relative to the reference time; Events is always non-nil.
type EventsBucket struct {
	Finished bool          `json:"finished"`
	Events   []EventDetail `json:"events"`
}

// TimetableDay is one calendar day of scheduled events, split into the three
// display buckets. Date is the ISO day ("2006-01-02"); Title is the pretty
// form shown as the heading (e.g. "Thursday 7 March").
type TimetableDay struct {
	Date      string       `json:"date"`
	Title     string       `json:"title"`
	Morning   EventsBucket `json:"morning"`
	Afternoon EventsBucket `json:"afternoon"`
	Evening   EventsBucket `json:"evening"`
}

// Timetable is the formatted multi-day schedule for a queried window, one
// entry per day in chronological order. Days within the window with no
// events still appear, with three empty finished buckets.
type Timetable struct {
	Days []TimetableDay `json:"days"`
}
