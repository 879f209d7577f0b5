package response

import (
	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/timefmt"
)

// ImportantDates adapts the raw sentence milestone dates. The
// re-categorisation date is not exposed by the upstream API and always
// renders as the placeholder.
type ImportantDates struct {
	hdcEligibilityDate     string
	conditionalReleaseDate string
	licenceExpiryDate      string
}

// NewImportantDates constructs the adapter from a possibly-nil record.
func NewImportantDates(rec *repo.SentenceDetailsRecord) ImportantDates {
	if rec == nil {
		return ImportantDates{}
	}
	return ImportantDates{
		hdcEligibilityDate:     rec.HomeDetentionCurfewEligibilityDate,
		conditionalReleaseDate: rec.ConditionalReleaseDate,
		licenceExpiryDate:      rec.LicenceExpiryDate,
	}
}

// Format returns the display milestone dates.
func (d ImportantDates) Format() domain.ImportantDates {
	return domain.ImportantDates{
		ReCategorisationDate:   domain.Unavailable,
		HDCEligibilityDate:     timefmt.PrettyDate(timefmt.Parse(d.hdcEligibilityDate)),
		ConditionalReleaseDate: timefmt.PrettyDate(timefmt.Parse(d.conditionalReleaseDate)),
		LicenceExpiryDate:      timefmt.PrettyDate(timefmt.Parse(d.licenceExpiryDate)),
	}
}
