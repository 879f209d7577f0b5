package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"prisonerhub/internal/domain"
	"prisonerhub/internal/timefmt"
)

// TokenSource supplies bearer tokens for the prison APIs. Token acquisition
// and refresh belong to the auth collaborator; the client only attaches
// whatever it is handed.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is the HTTP implementation of OffenderRepo and PrisonInfoRepo.
//
// A 404 from the upstream resolves to a nil record rather than an error, so
// services can treat "no data for this person" as a normal outcome. A body
// that does not decode into the expected shape is wrapped with
// domain.ErrMalformedUpstream.
type Client struct {
	baseURL string
	http    *http.Client
	log     *slog.Logger
	tokens  TokenSource
	metrics *Metrics
}

// ClientOption configures a Client at construction.
type ClientOption func(*Client)

// WithHTTPClient replaces the default http.Client (30s timeout).
func WithHTTPClient(h *http.Client) ClientOption {
	return func(c *Client) { c.http = h }
}

// WithLogger sets the structured logger used for per-request debug lines.
func WithLogger(log *slog.Logger) ClientOption {
	return func(c *Client) { c.log = log }
}

// WithTokenSource attaches bearer tokens from the given source to every
// request.
func WithTokenSource(ts TokenSource) ClientOption {
	return func(c *Client) { c.tokens = ts }
}

// WithMetrics records request counts and durations on the given Metrics.
func WithMetrics(m *Metrics) ClientOption {
	return func(c *Client) { c.metrics = m }
}

// NewClient constructs a prison API client for the given base URL.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compile-time checks: Client must satisfy both repository interfaces.
var (
	_ OffenderRepo   = (*Client)(nil)
	_ PrisonInfoRepo = (*Client)(nil)
)

// get issues one GET and decodes the JSON body into out. It returns
// ok=false with a nil error when the upstream answered 404 (resolved empty).
// endpoint is the metrics label, not the path.
func (c *Client) get(ctx context.Context, endpoint, path string, query url.Values, out any) (bool, error) {
	start := time.Now()

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return false, fmt.Errorf("repo.Client.get %s: %w", path, err)
	}

	correlationID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-Id", correlationID)
	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			c.metrics.Observe(endpoint, "error", start)
			return false, fmt.Errorf("repo.Client.get %s: token: %w", path, err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.Observe(endpoint, "error", start)
		return false, fmt.Errorf("repo.Client.get %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		c.metrics.Observe(endpoint, "empty", start)
		c.log.DebugContext(ctx, "upstream returned no data",
			"endpoint", endpoint,
			"status", resp.StatusCode,
			"correlation_id", correlationID,
		)
		return false, nil
	case resp.StatusCode >= 400:
		c.metrics.Observe(endpoint, "error", start)
		return false, fmt.Errorf("repo.Client.get %s: upstream status %d", path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.Observe(endpoint, "error", start)
		return false, fmt.Errorf("repo.Client.get %s: read body: %w", path, err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.metrics.Observe(endpoint, "error", start)
		return false, fmt.Errorf("repo.Client.get %s: %w: %s", path, domain.ErrMalformedUpstream, err)
	}

	c.metrics.Observe(endpoint, "ok", start)
	c.log.DebugContext(ctx, "upstream request",
		"endpoint", endpoint,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"correlation_id", correlationID,
	)
	return true, nil
}

// GetOffenderDetailsFor fetches the identity record for a prisoner id.
func (c *Client) GetOffenderDetailsFor(ctx context.Context, prisonerID string) (*OffenderRecord, error) {
	var rec OffenderRecord
	ok, err := c.get(ctx, "offender_details", "/api/bookings/offenderNo/"+url.PathEscape(prisonerID), nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// GetIncentivesSummaryFor fetches the incentives summary for a booking.
func (c *Client) GetIncentivesSummaryFor(ctx context.Context, bookingID int64) (*IncentivesRecord, error) {
	var rec IncentivesRecord
	ok, err := c.get(ctx, "incentives_summary", bookingPath(bookingID, "iepSummary"), nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// GetBalancesFor fetches the account balances for a booking.
func (c *Client) GetBalancesFor(ctx context.Context, bookingID int64) (*BalancesRecord, error) {
	var rec BalancesRecord
	ok, err := c.get(ctx, "balances", bookingPath(bookingID, "balances"), nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// GetKeyWorkerFor fetches the key worker allocation for a prisoner id.
func (c *Client) GetKeyWorkerFor(ctx context.Context, prisonerID string) (*KeyWorkerRecord, error) {
	var rec KeyWorkerRecord
	ok, err := c.get(ctx, "key_worker", "/api/bookings/offenderNo/"+url.PathEscape(prisonerID)+"/key-worker", nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// GetNextVisitFor fetches the next scheduled visit for a booking.
func (c *Client) GetNextVisitFor(ctx context.Context, bookingID int64) (*VisitRecord, error) {
	var rec VisitRecord
	ok, err := c.get(ctx, "next_visit", bookingPath(bookingID, "visits/next"), nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// SentenceDetailsFor fetches the sentence milestone dates for a booking.
func (c *Client) SentenceDetailsFor(ctx context.Context, bookingID int64) (*SentenceDetailsRecord, error) {
	var rec SentenceDetailsRecord
	ok, err := c.get(ctx, "sentence_details", bookingPath(bookingID, "sentenceDetail"), nil, &rec)
	if err != nil || !ok {
		return nil, err
	}
	return &rec, nil
}

// GetEventsFor fetches scheduled events for a booking over an inclusive day
// range.
func (c *Client) GetEventsFor(ctx context.Context, bookingID int64, from, to time.Time) ([]EventRecord, error) {
	query := url.Values{}
	query.Set("fromDate", from.Format(timefmt.ISODay))
	query.Set("toDate", to.Format(timefmt.ISODay))

	var events []EventRecord
	ok, err := c.get(ctx, "events", bookingPath(bookingID, "events"), query, &events)
	if err != nil || !ok {
		return nil, err
	}
	return events, nil
}

// GetTransactionsFor fetches the postings for one of a prisoner's
// sub-accounts over an inclusive day range.
func (c *Client) GetTransactionsFor(ctx context.Context, prisonerID, accountCode string, from, to time.Time) ([]TransactionRecord, error) {
	query := url.Values{}
	query.Set("account_code", accountCode)
	query.Set("from_date", from.Format(timefmt.ISODay))
	query.Set("to_date", to.Format(timefmt.ISODay))

	var transactions []TransactionRecord
	ok, err := c.get(ctx, "transactions", "/api/offenders/"+url.PathEscape(prisonerID)+"/transaction-history", query, &transactions)
	if err != nil || !ok {
		return nil, err
	}
	return transactions, nil
}

// GetBalancesDetailsFor fetches the account balances for a booking on behalf
// of the prisoner information service.
func (c *Client) GetBalancesDetailsFor(ctx context.Context, bookingID int64) (*BalancesRecord, error) {
	return c.GetBalancesFor(ctx, bookingID)
}

// GetPrisonDetails fetches the full prison reference list.
func (c *Client) GetPrisonDetails(ctx context.Context) ([]PrisonRecord, error) {
	var prisons []PrisonRecord
	ok, err := c.get(ctx, "prison_details", "/api/agencies/prison", nil, &prisons)
	if err != nil || !ok {
		return nil, err
	}
	return prisons, nil
}

func bookingPath(bookingID int64, suffix string) string {
	return "/api/bookings/" + strconv.FormatInt(bookingID, 10) + "/" + suffix
}
