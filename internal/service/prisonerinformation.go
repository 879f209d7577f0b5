package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
	"prisonerhub/internal/report"
)

// User-facing notices for soft failures, where one upstream call resolved
// with no usable data while the rest of the page renders normally.
const (
	transactionsUnavailableMsg = "We are not able to show your transactions at this time"
	balancesUnavailableMsg     = "We are not able to show your balances at this time"
)

// PrisonerInformationService aggregates transaction history, account
// balances, and the prison reference list for a sub-account.
//
// Failure policy, in order of severity: a rejected upstream call is a hard
// failure — it is reported to the error tracker and the whole result is
// discarded, never partially surfaced. A call that resolves with no data is
// a soft failure — only that half of the result degrades to a notice.
type PrisonerInformationService struct {
	repo     repo.PrisonInfoRepo
	reporter report.Reporter
	log      *slog.Logger
}

// NewPrisonerInformationService constructs the service. reporter receives
// hard upstream failures; pass report.Nop{} to discard them.
func NewPrisonerInformationService(r repo.PrisonInfoRepo, reporter report.Reporter, log *slog.Logger) *PrisonerInformationService {
	return &PrisonerInformationService{repo: r, reporter: reporter, log: log}
}

// GetTransactionInformationFor returns the postings and balances for one of
// the user's sub-accounts over an inclusive day range.
//
// All four arguments are required; a missing one returns
// domain.ErrValidation before any upstream call. The three upstream calls
// are issued concurrently so latency is bounded by the slowest single call.
// On hard failure the error is reported and a nil result returned.
func (s *PrisonerInformationService) GetTransactionInformationFor(ctx context.Context, user domain.User, accountCode string, from, to time.Time) (*domain.TransactionInformation, error) {
	switch {
	case user.PrisonerID == "":
		return nil, fmt.Errorf("%w: user is required", domain.ErrValidation)
	case accountCode == "":
		return nil, fmt.Errorf("%w: account code is required", domain.ErrValidation)
	case from.IsZero():
		return nil, fmt.Errorf("%w: from date is required", domain.ErrValidation)
	case to.IsZero():
		return nil, fmt.Errorf("%w: to date is required", domain.ErrValidation)
	}

	var (
		transactions []repo.TransactionRecord
		balances     *repo.BalancesRecord
		prisons      []repo.PrisonRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		transactions, err = s.repo.GetTransactionsFor(gctx, user.PrisonerID, accountCode, from, to)
		return err
	})
	g.Go(func() error {
		var err error
		balances, err = s.repo.GetBalancesDetailsFor(gctx, user.BookingID)
		return err
	})
	g.Go(func() error {
		var err error
		prisons, err = s.repo.GetPrisonDetails(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.reporter.CaptureException(err)
		s.log.ErrorContext(ctx, "discarding transaction information after upstream failure",
			"prisoner_id", user.PrisonerID,
			"account_code", accountCode,
			"error", err,
		)
		return nil, fmt.Errorf("service.PrisonerInformationService.GetTransactionInformationFor: %w", err)
	}

	return &domain.TransactionInformation{
		Transactions: formatTransactions(transactions, prisons),
		Balances:     formatBalances(balances),
	}, nil
}

// formatTransactions enriches each posting with its institution's display
// name. A nil slice means the upstream resolved with nothing usable and
// degrades the whole half; a non-nil empty slice is a normal result.
func formatTransactions(records []repo.TransactionRecord, prisons []repo.PrisonRecord) domain.TransactionsSlice {
	if records == nil {
		return domain.TransactionsSlice{Error: transactionsUnavailableMsg}
	}

	names := make(map[string]string, len(prisons))
	for _, p := range prisons {
		names[p.AgencyID] = p.FormattedDescription
	}

	out := make([]domain.Transaction, 0, len(records))
	for _, rec := range records {
		prison := names[rec.AgencyID]
		if prison == "" {
			prison = rec.AgencyID
		}
		out = append(out, domain.Transaction{
			PaymentDate:      rec.PaymentDate,
			PostingType:      rec.PostingType,
			PenceAmount:      rec.PenceAmount,
			Currency:         rec.Currency,
			Balance:          rec.Balance,
			EntryDescription: rec.EntryDescription,
			AgencyID:         rec.AgencyID,
			Prison:           prison,
		})
	}
	return domain.TransactionsSlice{Transactions: out}
}

func formatBalances(rec *repo.BalancesRecord) domain.AccountBalances {
	if rec == nil {
		return domain.AccountBalances{Error: balancesUnavailableMsg}
	}
	return domain.AccountBalances{
		Spends:   deref(rec.Spends),
		Cash:     deref(rec.Cash),
		Savings:  deref(rec.Savings),
		Currency: rec.Currency,
	}
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
