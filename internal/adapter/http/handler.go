package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// OutcomeLister exposes the most recent outcomes sent to the notifier.
type OutcomeLister interface {
	Outcomes() []domain.Outcome
}

// Handler contains dependencies and routes. It is an inbound adapter for HTTP.
// It holds the reconciliation and proof-of-play usecases, the asynchronous
// ingest queue and a logger for structured logging. Routes are registered
// on a chi.Router for convenient method handling.
type Handler struct {
	recon    port.ReconciliationUseCase
	pop      port.ProofOfPlayUseCase
	ingest   port.Ingester
	outcomes OutcomeLister
	logger   *slog.Logger
	router   chi.Router
}

// NewHandler creates a handler with all routes configured. The returned
// Handler registers handlers for each endpoint on a new chi.Router. The
// Prometheus default registry is exposed on /metrics.
func NewHandler(
	recon port.ReconciliationUseCase,
	pop port.ProofOfPlayUseCase,
	ingest port.Ingester,
	outcomes OutcomeLister,
	logger *slog.Logger,
) *Handler {
	h := &Handler{
		recon:    recon,
		pop:      pop,
		ingest:   ingest,
		outcomes: outcomes,
		logger:   logger,
	}
	r := chi.NewRouter()

	r.Get("/healthz", h.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Put("/", h.handleSetCampaign)
			r.Get("/", h.handleGetCampaign)
			r.Get("/dates", h.handleCampaignDates)
		})
		r.Post("/observations", h.handleObservation)
		r.Post("/observations/batch", h.handleObservationBatch)
		r.Get("/reconciled/{date}/{campaign}/{platform}", h.handleGetReconciled)
		r.Get("/dates/{date}/campaigns", h.handleDateCampaigns)

		r.Route("/orders/{id}", func(r chi.Router) {
			r.Put("/", h.handleSetOrder)
			r.Get("/", h.handleGetOrder)
			r.Get("/dates", h.handleOrderDates)
			r.Get("/billboards/{billboard}", h.handleGetBillboard)
			r.Get("/dates/{date}/billboards/{billboard}", h.handleGetVerifiedSpot)
		})
		r.Post("/sessions", h.handleSession)

		r.Get("/outcomes", h.handleOutcomes)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleOutcomes returns the recent outcomes, oldest first.
func (h *Handler) handleOutcomes(w http.ResponseWriter, _ *http.Request) {
	outcomes := h.outcomes.Outcomes()
	if outcomes == nil {
		outcomes = []domain.Outcome{}
	}
	h.writeJSON(w, http.StatusOK, outcomes)
}

// maxBodyBytes caps every request body.
const maxBodyBytes = 4 << 20

// decode reads a JSON body of at most maxBodyBytes into dst and runs its
// validation. It writes HTTP 400 and returns false when either step fails.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst validatable) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return false
	}
	if err := dst.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; log and move on
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps port.ErrNotFound to HTTP 404. Any other error is logged
// and reported as HTTP 500 without details.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	if errors.Is(err, port.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	h.logger.Error(op+" error", slog.Any("error", err))
	http.Error(w, "internal error", http.StatusInternalServerError)
}
