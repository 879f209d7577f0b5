package response

import (
	"fmt"
	"time"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/timefmt"
)

// IncentivesSummary adapts the raw incentives (IEP) summary.
type IncentivesSummary struct {
	iepLevel string
	iepDate  string
}

// NewIncentivesSummary constructs the adapter from a possibly-nil record.
func NewIncentivesSummary(rec *repo.IncentivesRecord) IncentivesSummary {
	if rec == nil {
		return IncentivesSummary{}
	}
	return IncentivesSummary{iepLevel: rec.IEPLevel, iepDate: rec.IEPDate}
}

// Format returns the display incentives position. now anchors the
// days-since-review wording.
func (i IncentivesSummary) Format(now time.Time) domain.IncentivesSummary {
	reviewDate := timefmt.Parse(i.iepDate)
	return domain.IncentivesSummary{
		IncentivesLevel: domain.OrUnavailable(i.iepLevel),
		LastReviewDate:  timefmt.PrettyDate(reviewDate),
		DaysSinceReview: daysSince(now, reviewDate),
	}
}

func daysSince(now, t time.Time) string {
	if !timefmt.Valid(t) {
		return domain.Unavailable
	}
	days := int(now.Sub(t).Hours() / 24)
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "1 day ago"
	default:
		return fmt.Sprintf("%d days ago", days)
	}
}
