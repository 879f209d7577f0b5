package response

import (
	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
)

// KeyWorker adapts the raw key worker allocation. The upstream never sends
// a last-meeting date, so that field is always the placeholder.
type KeyWorker struct {
	firstName string
	lastName  string
}

// NewKeyWorker constructs the adapter from a possibly-nil record.
func NewKeyWorker(rec *repo.KeyWorkerRecord) KeyWorker {
	if rec == nil {
		return KeyWorker{}
	}
	return KeyWorker{firstName: rec.FirstName, lastName: rec.LastName}
}

// Format returns the display key worker allocation.
func (k KeyWorker) Format() domain.KeyWorker {
	return domain.KeyWorker{
		Current:     fullNameOr(domain.Unavailable, k.firstName, k.lastName),
		LastMeeting: domain.Unavailable,
	}
}
