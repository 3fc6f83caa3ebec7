package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"propshare/internal/adapters/observability"
	"propshare/internal/app"
	"propshare/internal/domain"
	"propshare/internal/shared"
)

type Handlers struct {
	Q           *app.QueryService
	A           *app.AdminService
	MaxPageSize int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

type listingResponse struct {
	domain.Listing
	Gallery []domain.Media `json:"gallery"`
}

type roiDisplay struct {
	InvestmentAmount     string `json:"investmentAmount"`
	EstimatedTotalReturn string `json:"estimatedTotalReturn"`
	EstimatedProfit      string `json:"estimatedProfit"`
	RoiRange             string `json:"roiRange"`
	AvgRoi               string `json:"avgRoi"`
}

type roiResponse struct {
	domain.ROIResult
	Display roiDisplay `json:"display"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Use(RateLimit(s.opts.RateLimitRPS, s.opts.RateLimitBurst))

		r.Get("/property-types", h.propertyTypes)
		r.Get("/listings", h.listListings)
		r.Get("/listings/{id}", h.getListing)
		r.Get("/states", h.stateCounts)
		r.Get("/projects", h.listCaseStudies)
		r.Get("/projects/states", h.caseStudyStateCounts)
		r.Get("/roi", h.estimateROI)
		r.Get("/roi/configs", h.roiConfigs)
		r.Get("/landing", h.landing)

		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireAdmin(s.opts.AdminToken))
			r.Post("/listings", h.createListing)
			r.Put("/listings/{id}", h.updateListing)
			r.Delete("/listings/{id}", h.deleteListing)
			r.Put("/listings/{id}/featured", h.setFeatured)
			r.Put("/sections/{key}", h.updateSection)
			r.Get("/stats", h.stats)
		})
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps domain sentinels onto status codes; anything unrecognised is a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeProblem(w, http.StatusBadRequest, "Invalid Request", err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeCached writes a GET body with a weak ETag and honours If-None-Match.
func writeCached(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
		return
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write body")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func badParam(name, want string) error {
	return fmt.Errorf("%w: %s must be %s", domain.ErrInvalidInput, name, want)
}

// intParam returns 0 when the parameter is absent.
func intParam(r *http.Request, name string) (int, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, badParam(name, "an integer")
	}
	return n, nil
}

func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, badParam("id", "a positive integer")
	}
	return id, nil
}

func filterFrom(r *http.Request) domain.ListingFilter {
	q := r.URL.Query()
	return domain.ListingFilter{
		PropertyType: q.Get("type"),
		State:        q.Get("state"),
		Keyword:      q.Get("keyword"),
		Sort:         domain.SortOrder(strings.ToLower(strings.TrimSpace(q.Get("sort")))),
	}
}

func (h *Handlers) propertyTypes(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, itemsResponse[domain.PropertyType]{Items: h.Q.PropertyTypes()})
}

// pageParams reads page and pageSize, enforcing MaxPageSize.
func (h *Handlers) pageParams(r *http.Request) (page, size int, err error) {
	if page, err = intParam(r, "page"); err != nil {
		return 0, 0, err
	}
	if size, err = intParam(r, "pageSize"); err != nil {
		return 0, 0, err
	}
	if h.MaxPageSize > 0 && size > h.MaxPageSize {
		return 0, 0, fmt.Errorf("%w: pageSize above %d", app.ErrInvalidPageSize, h.MaxPageSize)
	}
	return page, size, nil
}

func (h *Handlers) listListings(w http.ResponseWriter, r *http.Request) {
	page, size, err := h.pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.Q.ListListings(filterFrom(r), page, size)
	observability.ObserveQuery(out.Total, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) getListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	l, err := h.Q.GetListing(id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, listingResponse{Listing: l, Gallery: l.Gallery()})
}

func (h *Handlers) stateCounts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.StateCounts(filterFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, itemsResponse[domain.StateCount]{Items: out})
}

func (h *Handlers) listCaseStudies(w http.ResponseWriter, r *http.Request) {
	page, size, err := h.pageParams(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	out, err := h.Q.ListCaseStudies(filterFrom(r), page, size)
	observability.ObserveQuery(out.Total, err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, out)
}

func (h *Handlers) caseStudyStateCounts(w http.ResponseWriter, r *http.Request) {
	out, err := h.Q.CaseStudyStateCounts(filterFrom(r))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, itemsResponse[domain.StateCount]{Items: out})
}

func (h *Handlers) estimateROI(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	pt := strings.TrimSpace(q.Get("type"))
	if pt == "" {
		writeError(w, r, badParam("type", "set"))
		return
	}
	amount, err := strconv.ParseFloat(strings.TrimSpace(q.Get("amount")), 64)
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: amount must be a number", app.ErrInvalidAmount))
		return
	}
	years, err := strconv.Atoi(strings.TrimSpace(q.Get("years")))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: years must be an integer", app.ErrInvalidDuration))
		return
	}

	res, err := h.Q.EstimateROI(pt, amount, years)
	label := "unknown"
	if p, ok := domain.ParsePropertyType(pt); ok {
		label = string(p)
	}
	observability.ObserveROI(label, err)
	if errors.Is(err, app.ErrNoSuchAssetClass) {
		writeProblem(w, http.StatusNotFound, "No Estimate Available", err.Error())
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeCached(w, r, roiResponse{
		ROIResult: res,
		Display: roiDisplay{
			InvestmentAmount:     shared.FormatUSD(res.InvestmentAmount),
			EstimatedTotalReturn: shared.FormatUSD(res.EstimatedTotalReturn),
			EstimatedProfit:      shared.FormatUSD(res.EstimatedProfit),
			RoiRange:             shared.FormatPercent(res.RoiPercentageMin) + " - " + shared.FormatPercent(res.RoiPercentageMax),
			AvgRoi:               shared.FormatPercent(res.AvgRoiPercentage),
		},
	})
}

func (h *Handlers) roiConfigs(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, itemsResponse[domain.ROIConfig]{Items: h.Q.ROIConfigs()})
}

func (h *Handlers) landing(w http.ResponseWriter, r *http.Request) {
	writeCached(w, r, h.Q.Landing())
}
