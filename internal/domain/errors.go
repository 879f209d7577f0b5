package domain

import "errors"

// ErrValidation is returned synchronously when a service operation is called
// without a required argument (user, account code, date bound). This is a
// caller contract violation, not a runtime condition, so it is raised before
// any upstream call is made.
var ErrValidation = errors.New("validation error")

// ErrInvalidDateRange is returned when a timetable query is given date bounds
// that do not parse, or a from-date after its to-date. The repository is never
// called in this case.
var ErrInvalidDateRange = errors.New("invalid date range")

// ErrMalformedUpstream is returned when an upstream API responds with a shape
// other than the expected list or object. Callers decide whether this degrades
// (today's timetable treats it as "no events") or surfaces as an error
// (explicit date-range queries do).
var ErrMalformedUpstream = errors.New("malformed upstream response")
