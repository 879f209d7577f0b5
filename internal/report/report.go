// Package report forwards unexpected upstream failures to the error
// tracker. Services depend on the Reporter interface so tests can record
// captures without network access.
package report

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Reporter receives errors that were swallowed rather than surfaced, so
// they still reach on-call visibility.
type Reporter interface {
	CaptureException(err error)
}

// SentryReporter ships captured errors to Sentry.
type SentryReporter struct{}

// NewSentry initialises the global Sentry client and returns a reporter
// backed by it.
func NewSentry(dsn, environment string) (*SentryReporter, error) {
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
	})
	if err != nil {
		return nil, fmt.Errorf("report.NewSentry: %w", err)
	}
	return &SentryReporter{}, nil
}

// CaptureException records the error with Sentry.
func (r *SentryReporter) CaptureException(err error) {
	sentry.CaptureException(err)
}

// Flush blocks until buffered events are sent or the timeout elapses.
// Call on shutdown.
func (r *SentryReporter) Flush(timeout time.Duration) {
	sentry.Flush(timeout)
}

// Nop discards every capture. Used when no DSN is configured.
type Nop struct{}

// CaptureException implements Reporter by doing nothing.
func (Nop) CaptureException(error) {}
