package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/service"
)

// ---- mock repo -------------------------------------------------------------

// mockOffenderRepo is a hand-written test double for repo.OffenderRepo.
type mockOffenderRepo struct {
	getOffenderDetailsFor   func(ctx context.Context, prisonerID string) (*repo.OffenderRecord, error)
	getIncentivesSummaryFor func(ctx context.Context, bookingID int64) (*repo.IncentivesRecord, error)
	getBalancesFor          func(ctx context.Context, bookingID int64) (*repo.BalancesRecord, error)
	getKeyWorkerFor         func(ctx context.Context, prisonerID string) (*repo.KeyWorkerRecord, error)
	getNextVisitFor         func(ctx context.Context, bookingID int64) (*repo.VisitRecord, error)
	sentenceDetailsFor      func(ctx context.Context, bookingID int64) (*repo.SentenceDetailsRecord, error)
	getEventsFor            func(ctx context.Context, bookingID int64, from, to time.Time) ([]repo.EventRecord, error)
}

func (m *mockOffenderRepo) GetOffenderDetailsFor(ctx context.Context, prisonerID string) (*repo.OffenderRecord, error) {
	return m.getOffenderDetailsFor(ctx, prisonerID)
}
func (m *mockOffenderRepo) GetIncentivesSummaryFor(ctx context.Context, bookingID int64) (*repo.IncentivesRecord, error) {
	return m.getIncentivesSummaryFor(ctx, bookingID)
}
func (m *mockOffenderRepo) GetBalancesFor(ctx context.Context, bookingID int64) (*repo.BalancesRecord, error) {
	return m.getBalancesFor(ctx, bookingID)
}
func (m *mockOffenderRepo) GetKeyWorkerFor(ctx context.Context, prisonerID string) (*repo.KeyWorkerRecord, error) {
	return m.getKeyWorkerFor(ctx, prisonerID)
}
func (m *mockOffenderRepo) GetNextVisitFor(ctx context.Context, bookingID int64) (*repo.VisitRecord, error) {
	return m.getNextVisitFor(ctx, bookingID)
}
func (m *mockOffenderRepo) SentenceDetailsFor(ctx context.Context, bookingID int64) (*repo.SentenceDetailsRecord, error) {
	return m.sentenceDetailsFor(ctx, bookingID)
}
func (m *mockOffenderRepo) GetEventsFor(ctx context.Context, bookingID int64, from, to time.Time) ([]repo.EventRecord, error) {
	return m.getEventsFor(ctx, bookingID, from, to)
}

// compile-time check: mockOffenderRepo must satisfy repo.OffenderRepo.
var _ repo.OffenderRepo = (*mockOffenderRepo)(nil)

// ---- helpers ---------------------------------------------------------------

var testUser = domain.User{PrisonerID: "A1234BC", BookingID: 1234}

func newOffenderService(r repo.OffenderRepo, opts ...service.OffenderOption) *service.OffenderService {
	return service.NewOffenderService(r, slog.New(slog.NewTextHandler(io.Discard, nil)), opts...)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// ---- per-entity operations -------------------------------------------------

func TestOffenderService_GetOffenderDetailsFor(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		getOffenderDetailsFor: func(_ context.Context, prisonerID string) (*repo.OffenderRecord, error) {
			assert.Equal(t, "A1234BC", prisonerID)
			return &repo.OffenderRecord{BookingID: 1234, OffenderNo: "A1234BC", FirstName: "TEST", LastName: "USER"}, nil
		},
	})

	got, err := svc.GetOffenderDetailsFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, domain.OffenderDetails{BookingID: 1234, OffenderNo: "A1234BC", Name: "Test User"}, got)
}

func TestOffenderService_GetOffenderDetailsFor_RepoError(t *testing.T) {
	repoErr := errors.New("upstream exploded")
	svc := newOffenderService(&mockOffenderRepo{
		getOffenderDetailsFor: func(_ context.Context, _ string) (*repo.OffenderRecord, error) {
			return nil, repoErr
		},
	})

	_, err := svc.GetOffenderDetailsFor(context.Background(), testUser)

	assert.ErrorIs(t, err, repoErr)
}

func TestOffenderService_GetIncentivesSummaryFor(t *testing.T) {
	now := time.Date(2021, 1, 10, 0, 0, 0, 0, time.UTC)
	svc := newOffenderService(&mockOffenderRepo{
		getIncentivesSummaryFor: func(_ context.Context, bookingID int64) (*repo.IncentivesRecord, error) {
			assert.Equal(t, int64(1234), bookingID)
			return &repo.IncentivesRecord{IEPLevel: "Enhanced", IEPDate: "2021-01-03"}, nil
		},
	}, service.WithClock(fixedClock(now)))

	got, err := svc.GetIncentivesSummaryFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, "Enhanced", got.IncentivesLevel)
	assert.Equal(t, "7 days ago", got.DaysSinceReview)
}

func TestOffenderService_GetBalancesFor(t *testing.T) {
	spends := 123.0
	svc := newOffenderService(&mockOffenderRepo{
		getBalancesFor: func(_ context.Context, bookingID int64) (*repo.BalancesRecord, error) {
			assert.Equal(t, int64(1234), bookingID)
			return &repo.BalancesRecord{Spends: &spends, Currency: "GBP"}, nil
		},
	})

	got, err := svc.GetBalancesFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, "123.00", got.Spends)
	assert.Equal(t, domain.Unavailable, got.Cash)
}

func TestOffenderService_GetKeyWorkerFor(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		getKeyWorkerFor: func(_ context.Context, prisonerID string) (*repo.KeyWorkerRecord, error) {
			assert.Equal(t, "A1234BC", prisonerID)
			return &repo.KeyWorkerRecord{FirstName: "JULIE", LastName: "DODGER"}, nil
		},
	})

	got, err := svc.GetKeyWorkerFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, "Julie Dodger", got.Current)
}

// An entirely absent key worker record short-circuits to placeholders.
func TestOffenderService_GetKeyWorkerFor_NoRecord(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		getKeyWorkerFor: func(_ context.Context, _ string) (*repo.KeyWorkerRecord, error) {
			return nil, nil
		},
	})

	got, err := svc.GetKeyWorkerFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, domain.KeyWorker{Current: domain.Unavailable, LastMeeting: domain.Unavailable}, got)
}

func TestOffenderService_GetVisitsFor(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		getNextVisitFor: func(_ context.Context, bookingID int64) (*repo.VisitRecord, error) {
			assert.Equal(t, int64(1234), bookingID)
			return &repo.VisitRecord{StartTime: "2019-12-07T11:30:30"}, nil
		},
	})

	got, err := svc.GetVisitsFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.True(t, got.HasStartTime)
	assert.Equal(t, "Saturday 7 December 2019", got.NextVisit)
}

func TestOffenderService_GetImportantDatesFor(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		sentenceDetailsFor: func(_ context.Context, bookingID int64) (*repo.SentenceDetailsRecord, error) {
			assert.Equal(t, int64(1234), bookingID)
			return &repo.SentenceDetailsRecord{ConditionalReleaseDate: "2020-02-01"}, nil
		},
	})

	got, err := svc.GetImportantDatesFor(context.Background(), testUser)

	require.NoError(t, err)
	assert.Equal(t, "Saturday 1 February 2020", got.ConditionalReleaseDate)
	assert.Equal(t, domain.Unavailable, got.LicenceExpiryDate)
}

// ---- GetEventsFor ----------------------------------------------------------

func TestOffenderService_GetEventsFor_CallsRepoWithRange(t *testing.T) {
	var gotBookingID int64
	var gotFrom, gotTo time.Time
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, bookingID int64, from, to time.Time) ([]repo.EventRecord, error) {
			gotBookingID, gotFrom, gotTo = bookingID, from, to
			return []repo.EventRecord{}, nil
		},
	}, service.WithClock(fixedClock(time.Date(2019, 3, 7, 9, 0, 0, 0, time.UTC))))

	timetable, err := svc.GetEventsFor(context.Background(), testUser, "2019-03-07", "2019-04-07")

	require.NoError(t, err)
	assert.Equal(t, int64(1234), gotBookingID)
	assert.Equal(t, time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC), gotFrom)
	assert.Equal(t, time.Date(2019, 4, 7, 0, 0, 0, 0, time.UTC), gotTo)
	assert.Len(t, timetable.Days, 32)
}

func TestOffenderService_GetEventsFor_UnparseableDates(t *testing.T) {
	calls := 0
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			calls++
			return nil, nil
		},
	})

	_, err := svc.GetEventsFor(context.Background(), testUser, "FOO", "BAR")

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Zero(t, calls, "repository must not be called for invalid dates")
}

func TestOffenderService_GetEventsFor_DescendingRange(t *testing.T) {
	calls := 0
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			calls++
			return nil, nil
		},
	})

	_, err := svc.GetEventsFor(context.Background(), testUser, "2019-03-07", "2019-03-06")

	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	assert.Zero(t, calls)
}

func TestOffenderService_GetEventsFor_AscendingRange(t *testing.T) {
	calls := 0
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			calls++
			return []repo.EventRecord{}, nil
		},
	})

	_, err := svc.GetEventsFor(context.Background(), testUser, "2019-03-06", "2019-03-07")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestOffenderService_GetEventsFor_SingleDay(t *testing.T) {
	calls := 0
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			calls++
			return []repo.EventRecord{}, nil
		},
	})

	timetable, err := svc.GetEventsFor(context.Background(), testUser, "2019-03-07", "2019-03-07")

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Len(t, timetable.Days, 1)
}

func TestOffenderService_GetEventsFor_MalformedUpstream(t *testing.T) {
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			return nil, fmt.Errorf("repo.Client.get /api/bookings/1234/events: %w: not a list", domain.ErrMalformedUpstream)
		},
	})

	_, err := svc.GetEventsFor(context.Background(), testUser, "2019-03-07", "2019-04-07")

	assert.ErrorIs(t, err, domain.ErrMalformedUpstream)
}

// ---- GetEventsForToday -----------------------------------------------------

func TestOffenderService_GetEventsForToday_NoBookingID(t *testing.T) {
	calls := 0
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			calls++
			return nil, nil
		},
	})

	_, err := svc.GetEventsForToday(context.Background(), domain.User{}, time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Zero(t, calls, "repository must not be called without a booking id")
}

func TestOffenderService_GetEventsForToday_NoEvents(t *testing.T) {
	today := time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC)
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, bookingID int64, from, to time.Time) ([]repo.EventRecord, error) {
			assert.Equal(t, int64(1234), bookingID)
			assert.Equal(t, today, from)
			assert.Equal(t, today, to)
			return []repo.EventRecord{}, nil
		},
	})

	got, err := svc.GetEventsForToday(context.Background(), testUser, today)

	require.NoError(t, err)
	assert.Equal(t, "Thursday 7 March", got.Title)
	empty := domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}
	assert.Equal(t, empty, got.Morning)
	assert.Equal(t, empty, got.Afternoon)
	assert.Equal(t, empty, got.Evening)
}

func TestOffenderService_GetEventsForToday_ClassifiesEvents(t *testing.T) {
	today := time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC)
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			return []repo.EventRecord{{
				BookingID:        6699,
				EventClass:       "INT_MOV",
				EventStatus:      "SCH",
				EventType:        "APP",
				EventTypeDesc:    "Appointment",
				EventSubType:     "CALA",
				EventSubTypeDesc: "Case - Legal Aid",
				EventDate:        "2019-03-07",
				StartTime:        "2019-03-07T22:10:00",
				EndTime:          "2019-03-07T22:45:00",
				EventLocation:    "BODY REPAIR",
			}}, nil
		},
	})

	got, err := svc.GetEventsForToday(context.Background(), testUser, today)

	require.NoError(t, err)
	assert.Equal(t, "Thursday 7 March", got.Title)
	assert.True(t, got.Morning.Finished)
	assert.True(t, got.Afternoon.Finished)
	require.Len(t, got.Evening.Events, 1)
	assert.Equal(t, domain.EventDetail{
		Description: "Case - Legal Aid",
		StartTime:   "10:10PM",
		EndTime:     "10:45PM",
		Location:    "Body repair",
		TimeString:  "10:10PM to 10:45PM",
		EventType:   "APP",
		Finished:    false,
		Status:      "SCH",
	}, got.Evening.Events[0])
}

// A malformed events response degrades to an empty day, not an error.
func TestOffenderService_GetEventsForToday_MalformedUpstream(t *testing.T) {
	today := time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC)
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			return nil, fmt.Errorf("decode: %w", domain.ErrMalformedUpstream)
		},
	})

	got, err := svc.GetEventsForToday(context.Background(), testUser, today)

	require.NoError(t, err)
	empty := domain.EventsBucket{Finished: true, Events: []domain.EventDetail{}}
	assert.Equal(t, empty, got.Morning)
	assert.Equal(t, empty, got.Afternoon)
	assert.Equal(t, empty, got.Evening)
}

func TestOffenderService_GetEventsForToday_RepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := newOffenderService(&mockOffenderRepo{
		getEventsFor: func(_ context.Context, _ int64, _, _ time.Time) ([]repo.EventRecord, error) {
			return nil, repoErr
		},
	})

	_, err := svc.GetEventsForToday(context.Background(), testUser, time.Date(2019, 3, 7, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, repoErr)
}
