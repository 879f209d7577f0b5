// Package testutil provides shared scaffolding for tests that exercise the
// upstream prison API client.
package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

// StubPrisonAPI starts an httptest server that serves canned responses
// keyed by URL path. A string value is written verbatim (useful for
// deliberately malformed bodies); anything else is JSON-encoded. Unknown
// paths return 404, matching the upstream's behavior for missing records.
// The server is closed automatically when the test finishes.
func StubPrisonAPI(t *testing.T, responses map[string]any) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := responses[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		switch b := body.(type) {
		case string:
			io.WriteString(w, b)
		default:
			json.NewEncoder(w).Encode(b)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}
