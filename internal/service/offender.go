// Package service contains the aggregation logic for the prisoner hub
// backend. Services orchestrate upstream repository calls, apply the
// response adapters, and return fully-defaulted view models. No transport
// lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/response"
	"prisonerhub/internal/timefmt"
)

// OffenderService resolves booking- and prisoner-scoped upstream records
// into display view models.
type OffenderService struct {
	repo  repo.OffenderRepo
	log   *slog.Logger
	clock func() time.Time
}

// OffenderOption configures an OffenderService at construction.
type OffenderOption func(*OffenderService)

// WithClock replaces the wall clock, fixing "now" for deterministic tests.
func WithClock(clock func() time.Time) OffenderOption {
	return func(s *OffenderService) { s.clock = clock }
}

// NewOffenderService constructs an OffenderService backed by the provided
// repository.
func NewOffenderService(r repo.OffenderRepo, log *slog.Logger, opts ...OffenderOption) *OffenderService {
	s := &OffenderService{repo: r, log: log, clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetOffenderDetailsFor returns the formatted identity record for the user.
func (s *OffenderService) GetOffenderDetailsFor(ctx context.Context, user domain.User) (domain.OffenderDetails, error) {
	rec, err := s.repo.GetOffenderDetailsFor(ctx, user.PrisonerID)
	if err != nil {
		return domain.OffenderDetails{}, fmt.Errorf("service.OffenderService.GetOffenderDetailsFor: %w", err)
	}
	return response.NewOffender(rec).Format(), nil
}

// GetIncentivesSummaryFor returns the formatted incentives position for the
// user's booking.
func (s *OffenderService) GetIncentivesSummaryFor(ctx context.Context, user domain.User) (domain.IncentivesSummary, error) {
	rec, err := s.repo.GetIncentivesSummaryFor(ctx, user.BookingID)
	if err != nil {
		return domain.IncentivesSummary{}, fmt.Errorf("service.OffenderService.GetIncentivesSummaryFor: %w", err)
	}
	return response.NewIncentivesSummary(rec).Format(s.clock()), nil
}

// GetBalancesFor returns the formatted account balances for the user's
// booking.
func (s *OffenderService) GetBalancesFor(ctx context.Context, user domain.User) (domain.Balances, error) {
	rec, err := s.repo.GetBalancesFor(ctx, user.BookingID)
	if err != nil {
		return domain.Balances{}, fmt.Errorf("service.OffenderService.GetBalancesFor: %w", err)
	}
	return response.NewBalances(rec).Format(), nil
}

// GetKeyWorkerFor returns the formatted key worker allocation. An entirely
// absent upstream record short-circuits to placeholders without invoking
// the adapter.
func (s *OffenderService) GetKeyWorkerFor(ctx context.Context, user domain.User) (domain.KeyWorker, error) {
	rec, err := s.repo.GetKeyWorkerFor(ctx, user.PrisonerID)
	if err != nil {
		return domain.KeyWorker{}, fmt.Errorf("service.OffenderService.GetKeyWorkerFor: %w", err)
	}
	if rec == nil {
		return domain.KeyWorker{
			Current:     domain.Unavailable,
			LastMeeting: domain.Unavailable,
		}, nil
	}
	return response.NewKeyWorker(rec).Format(), nil
}

// GetVisitsFor returns the formatted next visit for the user's booking.
func (s *OffenderService) GetVisitsFor(ctx context.Context, user domain.User) (domain.NextVisit, error) {
	rec, err := s.repo.GetNextVisitFor(ctx, user.BookingID)
	if err != nil {
		return domain.NextVisit{}, fmt.Errorf("service.OffenderService.GetVisitsFor: %w", err)
	}
	return response.NewNextVisit(rec).Format(), nil
}

// GetImportantDatesFor returns the formatted sentence milestone dates for
// the user's booking.
func (s *OffenderService) GetImportantDatesFor(ctx context.Context, user domain.User) (domain.ImportantDates, error) {
	rec, err := s.repo.SentenceDetailsFor(ctx, user.BookingID)
	if err != nil {
		return domain.ImportantDates{}, fmt.Errorf("service.OffenderService.GetImportantDatesFor: %w", err)
	}
	return response.NewImportantDates(rec).Format(), nil
}

// GetEventsFor returns the formatted timetable for an inclusive day range.
// Both bounds must parse as ISO days and fromDate must not be after toDate;
// violations return domain.ErrInvalidDateRange without an upstream call.
// An upstream response of the wrong shape surfaces as
// domain.ErrMalformedUpstream.
func (s *OffenderService) GetEventsFor(ctx context.Context, user domain.User, fromDate, toDate string) (domain.Timetable, error) {
	from, errFrom := time.Parse(timefmt.ISODay, fromDate)
	to, errTo := time.Parse(timefmt.ISODay, toDate)
	if errFrom != nil || errTo != nil {
		return domain.Timetable{}, fmt.Errorf("%w: dates must be formatted %s", domain.ErrInvalidDateRange, timefmt.ISODay)
	}
	if to.Before(from) {
		return domain.Timetable{}, fmt.Errorf("%w: start date is after end date", domain.ErrInvalidDateRange)
	}

	events, err := s.repo.GetEventsFor(ctx, user.BookingID, from, to)
	if err != nil {
		return domain.Timetable{}, fmt.Errorf("service.OffenderService.GetEventsFor: %w", err)
	}

	return response.NewTimetable(from, to, s.clock()).AddEvents(events).Build(), nil
}

// GetEventsForToday returns the formatted schedule for the reference day.
// Without a resolvable booking id it returns domain.ErrValidation before
// any upstream call. A malformed upstream response degrades to three empty
// finished buckets rather than an error: no events today is a normal
// outcome, not an exceptional one.
func (s *OffenderService) GetEventsForToday(ctx context.Context, user domain.User, today time.Time) (domain.TimetableDay, error) {
	if !user.HasBookingID() {
		return domain.TimetableDay{}, fmt.Errorf("%w: no booking id for prisoner %q", domain.ErrValidation, user.PrisonerID)
	}

	events, err := s.repo.GetEventsFor(ctx, user.BookingID, today, today)
	if err != nil {
		if !errors.Is(err, domain.ErrMalformedUpstream) {
			return domain.TimetableDay{}, fmt.Errorf("service.OffenderService.GetEventsForToday: %w", err)
		}
		s.log.WarnContext(ctx, "treating malformed events response as an empty day",
			"booking_id", user.BookingID,
			"error", err,
		)
		events = nil
	}

	timetable := response.NewTimetable(today, today, today).AddEvents(events).Build()
	return timetable.Days[0], nil
}
