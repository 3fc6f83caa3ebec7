package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"propshare/internal/domain"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "propshare", Name: "http_requests_total", Help: "HTTP requests."},
		[]string{"route", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "propshare", Name: "http_request_duration_seconds",
			Help:    "HTTP request duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method"},
	)
	ROIEstimates = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "propshare", Name: "roi_estimates_total", Help: "ROI estimates by asset class and outcome."},
		[]string{"property_type", "outcome"},
	)
	ListingQueries = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "propshare", Name: "listing_queries_total", Help: "Listing queries by outcome."},
		[]string{"outcome"}, // ok|empty|invalid
	)
	AdminWrites = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "propshare", Name: "admin_writes_total", Help: "Admin writes by operation and outcome."},
		[]string{"op", "outcome"},
	)
	CatalogListings = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "propshare", Name: "catalog_listings", Help: "Listings in the current snapshot."},
	)
)

// Serve exposes reg on its own listener. Empty addr disables it.
func Serve(addr string, reg *prometheus.Registry) {
	if addr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", MetricsHandler(reg))

	go func() {
		srv := &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(HTTPRequests, HTTPLatency, ROIEstimates, ListingQueries, AdminWrites, CatalogListings)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

func ObserveHTTP(route, method string, status int, dur time.Duration) {
	HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	HTTPLatency.WithLabelValues(route, method).Observe(dur.Seconds())
}

func ObserveROI(propertyType string, err error) {
	ROIEstimates.WithLabelValues(propertyType, Outcome(err)).Inc()
}

func ObserveQuery(total int, err error) {
	outcome := Outcome(err)
	if err == nil && total == 0 {
		outcome = "empty"
	}
	ListingQueries.WithLabelValues(outcome).Inc()
}

func ObserveAdmin(op string, err error) {
	AdminWrites.WithLabelValues(op, Outcome(err)).Inc()
}

func SetCatalogListings(n int) { CatalogListings.Set(float64(n)) }

// Outcome maps an error to a low-cardinality label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrInvalidInput):
		return "invalid"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	}
	return "error"
}
