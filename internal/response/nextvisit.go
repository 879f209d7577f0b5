package response

import (
	"strings"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/timefmt"
)

// NextVisit adapts the raw next scheduled visit.
type NextVisit struct {
	startTime            string
	eventStatus          string
	visitTypeDescription string
	leadVisitor          string
}

// NewNextVisit constructs the adapter from a possibly-nil record.
func NewNextVisit(rec *repo.VisitRecord) NextVisit {
	if rec == nil {
		return NextVisit{}
	}
	return NextVisit{
		startTime:            rec.StartTime,
		eventStatus:          rec.EventStatus,
		visitTypeDescription: rec.VisitTypeDescription,
		leadVisitor:          rec.LeadVisitor,
	}
}

// Format returns the display visit. The visit type shown is the leading
// code of the upstream description ("TVT test visit type" → "TVT").
func (v NextVisit) Format() domain.NextVisit {
	start := timefmt.Parse(v.startTime)
	return domain.NextVisit{
		HasStartTime:  timefmt.Valid(start),
		NextVisit:     timefmt.PrettyDate(start),
		NextVisitDate: timefmt.PrettyDayAndMonth(start),
		NextVisitDay:  timefmt.PrettyDay(start),
		VisitType:     firstTokenOr(domain.Unavailable, v.visitTypeDescription),
		VisitorName:   visitorNameOr(domain.Unavailable, v.leadVisitor),
	}
}

func firstTokenOr(fallback, s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return fallback
	}
	return fields[0]
}

func visitorNameOr(fallback, s string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return titleCase(s)
}
