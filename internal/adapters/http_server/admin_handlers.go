package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"propshare/internal/adapters/observability"
	"propshare/internal/domain"
)

const maxBodyBytes = 1 << 20

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: body: %v", domain.ErrInvalidInput, err)
	}
	return nil
}

func (h *Handlers) createListing(w http.ResponseWriter, r *http.Request) {
	var in domain.Listing
	if err := decodeBody(w, r, &in); err != nil {
		observability.ObserveAdmin("create", err)
		writeError(w, r, err)
		return
	}
	out, err := h.A.CreateListing(in)
	observability.ObserveAdmin("create", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/v1/listings/%d", out.ID))
	writeJSON(w, http.StatusCreated, out)
}

func (h *Handlers) updateListing(w http.ResponseWriter, r *http.Request) {
	var in domain.Listing
	id, err := idParam(r)
	if err == nil {
		err = decodeBody(w, r, &in)
	}
	var out domain.Listing
	if err == nil {
		out, err = h.A.UpdateListing(id, in)
	}
	observability.ObserveAdmin("update", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) deleteListing(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err == nil {
		err = h.A.DeleteListing(id)
	}
	observability.ObserveAdmin("delete", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) setFeatured(w http.ResponseWriter, r *http.Request) {
	var in struct {
		IsFeatured *bool `json:"isFeatured"`
	}
	id, err := idParam(r)
	if err == nil {
		err = decodeBody(w, r, &in)
	}
	if err == nil && in.IsFeatured == nil {
		err = fmt.Errorf("%w: isFeatured is required", domain.ErrInvalidInput)
	}
	var out domain.Listing
	if err == nil {
		out, err = h.A.SetFeatured(id, *in.IsFeatured)
	}
	observability.ObserveAdmin("featured", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) updateSection(w http.ResponseWriter, r *http.Request) {
	var p domain.SectionPatch
	err := decodeBody(w, r, &p)
	if err == nil && p.IsVisible == nil && p.Order == nil {
		err = fmt.Errorf("%w: isVisible or order is required", domain.ErrInvalidInput)
	}
	var out domain.LandingSection
	if err == nil {
		out, err = h.A.UpdateSection(chi.URLParam(r, "key"), p)
	}
	observability.ObserveAdmin("section", err)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) stats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Q.Stats())
}
