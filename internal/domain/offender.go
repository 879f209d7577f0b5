package domain

// OffenderDetails is the formatted identity record for display.
// Name is "First Last" title-cased, or Unavailable when both names are
// absent from the upstream record.
type OffenderDetails struct {
	BookingID  int64  `json:"bookingId"`
	OffenderNo string `json:"offenderNo"`
	Name       string `json:"name"`
}

// IncentivesSummary is the formatted incentives (IEP) position.
type IncentivesSummary struct {
	IncentivesLevel string `json:"incentivesLevel"`
	LastReviewDate  string `json:"lastReviewDate"`
	DaysSinceReview string `json:"daysSinceReview"`
}

// Balances holds the display strings for each sub-account. Each field
// defaults to Unavailable independently of the others.
type Balances struct {
	Spends   string `json:"spends"`
	Cash     string `json:"cash"`
	Savings  string `json:"savings"`
	Currency string `json:"currency"`
}

// KeyWorker is the formatted key worker allocation.
type KeyWorker struct {
	Current     string `json:"current"`
	LastMeeting string `json:"lastMeeting"`
}

// NextVisit is the formatted next social visit. HasStartTime is false when
// no visit is booked; every string field then carries the placeholder.
type NextVisit struct {
	HasStartTime  bool   `json:"hasStartTime"`
	NextVisit     string `json:"nextVisit"`
	NextVisitDate string `json:"nextVisitDate"`
	NextVisitDay  string `json:"nextVisitDay"`
	VisitType     string `json:"visitType"`
	VisitorName   string `json:"visitorName"`
}

// ImportantDates holds the formatted sentence milestone dates.
type ImportantDates struct {
	ReCategorisationDate   string `json:"reCategorisationDate"`
	HDCEligibilityDate     string `json:"hdcEligibilityDate"`
	ConditionalReleaseDate string `json:"conditionalReleaseDate"`
	LicenceExpiryDate      string `json:"licenceExpiryDate"`
}
