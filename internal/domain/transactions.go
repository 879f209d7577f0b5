package domain

// Transaction is a single account posting enriched for display. Prison is
// the human-readable institution name resolved from the agency reference
// list, falling back to the raw agency id when no match exists.
type Transaction struct {
	PaymentDate      string `json:"paymentDate"`
	PostingType      string `json:"postingType"`
	PenceAmount      int64  `json:"penceAmount"`
	Currency         string `json:"currency"`
	Balance          int64  `json:"balance"`
	EntryDescription string `json:"entryDescription"`
	AgencyID         string `json:"agencyId"`
	Prison           string `json:"prison"`
}

// TransactionsSlice is the transactions half of a transaction-information
// result. When the upstream resolved with no usable data, Error carries the
// user-facing notice and Transactions is empty; otherwise Error is "".
type TransactionsSlice struct {
	Transactions []Transaction `json:"transactions,omitempty"`
	Error        string        `json:"error,omitempty"`
}

// AccountBalances is the balances half of a transaction-information result,
// degraded independently of the transactions half.
type AccountBalances struct {
	Spends   float64 `json:"spends"`
	Cash     float64 `json:"cash"`
	Savings  float64 `json:"savings"`
	Currency string  `json:"currency"`
	Error    string  `json:"error,omitempty"`
}

// TransactionInformation is the aggregated result for an account and date
// range. Either half may be in its soft-failure form while the other remains
// fully populated; a hard upstream failure discards the whole value instead.
type TransactionInformation struct {
	Transactions TransactionsSlice `json:"transactions"`
	Balances     AccountBalances   `json:"balances"`
}

// Degraded reports whether the transactions half is in soft-failure form.
func (t TransactionsSlice) Degraded() bool { return t.Error != "" }

// Degraded reports whether the balances half is in soft-failure form.
func (b AccountBalances) Degraded() bool { return b.Error != "" }
