package response

import (
	"strconv"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/repo"
)

// Balances adapts the raw account balances. Each sub-account degrades to
// the placeholder independently of the others.
type Balances struct {
	spends   *float64
	cash     *float64
	savings  *float64
	currency string
}

// NewBalances constructs the adapter from a possibly-nil record.
func NewBalances(rec *repo.BalancesRecord) Balances {
	if rec == nil {
		return Balances{}
	}
	return Balances{
		spends:   rec.Spends,
		cash:     rec.Cash,
		savings:  rec.Savings,
		currency: rec.Currency,
	}
}

// Format returns the display balances.
func (b Balances) Format() domain.Balances {
	return domain.Balances{
		Spends:   amountOrUnavailable(b.spends),
		Cash:     amountOrUnavailable(b.cash),
		Savings:  amountOrUnavailable(b.savings),
		Currency: domain.OrUnavailable(b.currency),
	}
}

func amountOrUnavailable(v *float64) string {
	if v == nil {
		return domain.Unavailable
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
