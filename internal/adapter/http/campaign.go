package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleSetCampaign overwrites the campaign named by the {id} path
// parameter. It answers HTTP 204 on success.
func (h *Handler) handleSetCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignRequest
	if !h.decode(w, r, &req) {
		return
	}
	if err := h.recon.SetCampaign(r.Context(), chi.URLParam(r, "id"), req.toDomain()); err != nil {
		h.writeError(w, r, "set campaign", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	c, err := h.recon.GetCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "get campaign", err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

// handleCampaignDates lists the days a campaign has reconciled data for.
// An unknown campaign has no dates.
func (h *Handler) handleCampaignDates(w http.ResponseWriter, r *http.Request) {
	dates, err := h.recon.ListDatesByCampaign(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, "list campaign dates", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(dates))
}

func (h *Handler) handleDateCampaigns(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.recon.ListCampaignsByDate(r.Context(), chi.URLParam(r, "date"))
	if err != nil {
		h.writeError(w, r, "list date campaigns", err)
		return
	}
	h.writeJSON(w, http.StatusOK, nonNil(campaigns))
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
