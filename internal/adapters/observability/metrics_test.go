package observability_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"propshare/internal/adapters/observability"
	"propshare/internal/domain"
)

func TestMetricsRegistryAndHandler(t *testing.T) {
	reg := observability.InitRegistry()

	// record samples so the vectors are exported
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveROI("Villa", nil)
	observability.ObserveQuery(0, nil)
	observability.SetCatalogListings(3)

	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	out := string(body)
	for _, name := range []string{
		"propshare_http_requests_total",
		"propshare_roi_estimates_total",
		"propshare_listing_queries_total",
		"propshare_catalog_listings 3",
	} {
		if !strings.Contains(out, name) {
			t.Fatalf("expected %s in output", name)
		}
	}
}

func TestOutcome(t *testing.T) {
	cases := map[string]error{
		"ok":        nil,
		"invalid":   fmt.Errorf("bad page: %w", domain.ErrInvalidInput),
		"not_found": fmt.Errorf("listing 9: %w", domain.ErrNotFound),
		"error":     errors.New("boom"),
	}
	for want, err := range cases {
		if got := observability.Outcome(err); got != want {
			t.Fatalf("Outcome(%v) = %s, want %s", err, got, want)
		}
	}
}
