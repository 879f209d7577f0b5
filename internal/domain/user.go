package domain

// User identifies the signed-in person a page request is for. The session
// middleware (out of scope here) constructs it; services only read it.
//
// PrisonerID is the person-scoped identifier (e.g. "A1234BC") used by
// person-level lookups. BookingID is the active-sentence-scoped identifier
// most upstream endpoints key on; zero means no booking could be resolved.
type User struct {
	PrisonerID string
	BookingID  int64
	FirstName  string
	Surname    string
}

// HasBookingID reports whether a booking-scoped lookup can be made for this
// user.
func (u User) HasBookingID() bool {
	return u.BookingID != 0
}
