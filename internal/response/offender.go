package response

import (
	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
)

// Offender adapts the raw identity record.
type Offender struct {
	bookingID  int64
	offenderNo string
	firstName  string
	lastName   string
}

// NewOffender constructs the adapter from a possibly-nil record.
func NewOffender(rec *repo.OffenderRecord) Offender {
	if rec == nil {
		return Offender{}
	}
	return Offender{
		bookingID:  rec.BookingID,
		offenderNo: rec.OffenderNo,
		firstName:  rec.FirstName,
		lastName:   rec.LastName,
	}
}

// Format returns the display identity record. Name degrades to the
// placeholder only when both name parts are absent.
func (o Offender) Format() domain.OffenderDetails {
	return domain.OffenderDetails{
		BookingID:  o.bookingID,
		OffenderNo: o.offenderNo,
		Name:       fullNameOr(domain.Unavailable, o.firstName, o.lastName),
	}
}
