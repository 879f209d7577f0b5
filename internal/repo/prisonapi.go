// Package repo contains all upstream data access for the prisoner hub
// backend. It defines the repository interfaces the service layer depends
// on, the raw record shapes the prison APIs return, and an HTTP client
// implementation. No formatting or business logic lives here — only
// transport and type mapping.
//
// Raw records are deliberately loose: every field is optional upstream and
// decodes to its zero value when absent. Normalization to display values is
// the response package's job.
package repo

import (
	"context"
	"time"
)

// OffenderRecord is the raw identity record for a prisoner.
type OffenderRecord struct {
	BookingID  int64  `json:"bookingId"`
	OffenderNo string `json:"offenderNo"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
}

// IncentivesRecord is the raw incentives (IEP) summary for a booking.
type IncentivesRecord struct {
	IEPLevel string `json:"iepLevel"`
	IEPDate  string `json:"iepDate"`
}

// BalancesRecord is the raw account balances for a booking. Fields are
// pointers so a missing balance can be told apart from a zero one.
type BalancesRecord struct {
	Spends   *float64 `json:"spends"`
	Cash     *float64 `json:"cash"`
	Savings  *float64 `json:"savings"`
	Currency string   `json:"currency"`
}

// KeyWorkerRecord is the raw key worker allocation for a prisoner.
type KeyWorkerRecord struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// VisitRecord is a raw scheduled visit.
type VisitRecord struct {
	StartTime            string `json:"startTime"`
	EventStatus          string `json:"eventStatus"`
	VisitTypeDescription string `json:"visitTypeDescription"`
	LeadVisitor          string `json:"leadVisitor"`
}

// SentenceDetailsRecord carries the raw sentence milestone dates.
type SentenceDetailsRecord struct {
	HomeDetentionCurfewEligibilityDate string `json:"homeDetentionCurfewEligibilityDate"`
	ConditionalReleaseDate             string `json:"conditionalReleaseDate"`
	LicenceExpiryDate                  string `json:"licenceExpiryDate"`
}

// EventRecord is one raw scheduled activity from the booking timetable.
type EventRecord struct {
	BookingID        int64  `json:"bookingId"`
	EventClass       string `json:"eventClass"`
	EventStatus      string `json:"eventStatus"`
	EventType        string `json:"eventType"`
	EventTypeDesc    string `json:"eventTypeDesc"`
	EventSubType     string `json:"eventSubType"`
	EventSubTypeDesc string `json:"eventSubTypeDesc"`
	EventDate        string `json:"eventDate"`
	StartTime        string `json:"startTime"`
	EndTime          string `json:"endTime"`
	EventLocation    string `json:"eventLocation"`
	EventSource      string `json:"eventSource"`
	EventSourceDesc  string `json:"eventSourceDesc"`
	Paid             *bool  `json:"paid"`
}

// TransactionRecord is one raw account posting.
type TransactionRecord struct {
	PaymentDate      string `json:"paymentDate"`
	PostingType      string `json:"postingType"`
	PenceAmount      int64  `json:"penceAmount"`
	Currency         string `json:"currency"`
	Balance          int64  `json:"balance"`
	EntryDescription string `json:"entryDescription"`
	AgencyID         string `json:"agencyId"`
}

// PrisonRecord is one entry of the prison reference list, used only as a
// lookup table for agency id → display name.
type PrisonRecord struct {
	AgencyID             string `json:"agencyId"`
	Description          string `json:"description"`
	FormattedDescription string `json:"formattedDescription"`
}

// OffenderRepo is the upstream capability set the offender service consumes.
// Implementations return a nil record (not an error) when the upstream
// resolves with no data for the identifier, and wrap unexpected response
// shapes with domain.ErrMalformedUpstream. No caching or retry happens at
// this boundary's consumers; that is the implementation's concern.
type OffenderRepo interface {
	// GetOffenderDetailsFor fetches the identity record for a prisoner id.
	GetOffenderDetailsFor(ctx context.Context, prisonerID string) (*OffenderRecord, error)

	// GetIncentivesSummaryFor fetches the incentives summary for a booking.
	GetIncentivesSummaryFor(ctx context.Context, bookingID int64) (*IncentivesRecord, error)

	// GetBalancesFor fetches the account balances for a booking.
	GetBalancesFor(ctx context.Context, bookingID int64) (*BalancesRecord, error)

	// GetKeyWorkerFor fetches the key worker allocation for a prisoner id.
	// Returns (nil, nil) when no key worker has been allocated.
	GetKeyWorkerFor(ctx context.Context, prisonerID string) (*KeyWorkerRecord, error)

	// GetNextVisitFor fetches the next scheduled visit for a booking.
	GetNextVisitFor(ctx context.Context, bookingID int64) (*VisitRecord, error)

	// SentenceDetailsFor fetches the sentence milestone dates for a booking.
	SentenceDetailsFor(ctx context.Context, bookingID int64) (*SentenceDetailsRecord, error)

	// GetEventsFor fetches scheduled events for a booking over an inclusive
	// day range.
	GetEventsFor(ctx context.Context, bookingID int64, from, to time.Time) ([]EventRecord, error)
}

// PrisonInfoRepo is the upstream capability set the prisoner information
// service consumes. The three operations are independent and safe to issue
// concurrently.
type PrisonInfoRepo interface {
	// GetTransactionsFor fetches the postings for one of a prisoner's
	// sub-accounts over an inclusive day range.
	GetTransactionsFor(ctx context.Context, prisonerID, accountCode string, from, to time.Time) ([]TransactionRecord, error)

	// GetBalancesDetailsFor fetches the account balances for a booking.
	GetBalancesDetailsFor(ctx context.Context, bookingID int64) (*BalancesRecord, error)

	// GetPrisonDetails fetches the full prison reference list.
	GetPrisonDetails(ctx context.Context) ([]PrisonRecord, error)
}
