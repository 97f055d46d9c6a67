package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adrecon/internal/core/domain"
)

// handleSetOrder overwrites an order together with its billboard
// inventory.
func (h *Handler) handleSetOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.pop.SetOrder(r.Context(), chi.URLParam(r, "id"), req.toDomain()); err != nil {
		h.writeError(w, r, "set order", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.pop.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get order", err)
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}

func (h *Handler) handleGetBillboard(w http.ResponseWriter, r *http.Request) {
	b, err := h.pop.GetBillboard(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "billboard"))
	if err != nil {
		h.writeError(w, r, "get billboard", err)
		return
	}
	h.writeJSON(w, http.StatusOK, b)
}

func (h *Handler) handleOrderDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.pop.ListOrderDates(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "list order dates", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(dates))
}

func (h *Handler) handleGetVerifiedSpot(w http.ResponseWriter, r *http.Request) {
	key := domain.SpotKey{
		OrderID:     chi.URLParam(r, "id"),
		Date:        chi.URLParam(r, "date"),
		BillboardID: chi.URLParam(r, "billboard"),
	}
	spot, err := h.pop.GetVerifiedSpot(r.Context(), key)
	if err != nil {
		h.writeError(w, r, "get verified spot", err)
		return
	}
	h.writeJSON(w, http.StatusOK, spot)
}

// handleSession verifies one play. Like observations, a rejected session
// is HTTP 200 with the failure in the outcome.
func (h *Handler) handleSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	outcome, err := h.pop.SetSessionData(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, r, "set session data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}
