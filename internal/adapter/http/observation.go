package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adrecon/internal/adapter/usecase"
	"adrecon/internal/core/domain"
)

// handleObservation processes one observation synchronously. A rejected
// observation is still HTTP 200: the outcome in the body carries the
// error code. Overflow and storage failures produce HTTP 500.
func (h *Handler) handleObservation(w http.ResponseWriter, r *http.Request) {
	var req observationRequest
	if !h.decode(w, r, &req) {
		return
	}
	outcome, err := h.recon.SetAggregatedData(r.Context(), req.toDomain())
	if err != nil {
		h.writeError(w, r, "set aggregated data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, outcome)
}

// handleObservationBatch queues every observation of the body on the
// ingest pool and answers HTTP 202. Outcomes are delivered to the
// notifier. A pool that is shutting down yields HTTP 503 and the number
// of observations accepted before it closed.
func (h *Handler) handleObservationBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if !h.decode(w, r, &req) {
		return
	}
	accepted := 0
	for i := range req.Observations {
		if err := h.ingest.Enqueue(r.Context(), req.Observations[i].toDomain()); err != nil {
			if errors.Is(err, usecase.ErrPoolClosed) {
				h.writeJSON(w, http.StatusServiceUnavailable, batchResponse{Accepted: accepted})
				return
			}
			h.logger.Warn("enqueue observation", slog.Int("accepted", accepted), slog.Any("error", err))
			h.writeJSON(w, http.StatusRequestTimeout, batchResponse{Accepted: accepted})
			return
		}
		accepted++
	}
	h.writeJSON(w, http.StatusAccepted, batchResponse{Accepted: accepted})
}

type batchResponse struct {
	Accepted int `json:"accepted"`
}

func (h *Handler) handleGetReconciled(w http.ResponseWriter, r *http.Request) {
	key := domain.RecordKey{
		Date:       chi.URLParam(r, "date"),
		CampaignID: chi.URLParam(r, "campaign"),
		Platform:   chi.URLParam(r, "platform"),
	}
	rec, err := h.recon.GetReconciledData(r.Context(), key)
	if err != nil {
		h.writeError(w, r, "get reconciled data", err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}
