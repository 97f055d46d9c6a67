package port

import (
	"context"

	"adrecon/internal/core/domain"
)

// ReconciliationUseCase defines the operations of the reconciliation core.
// This interface represents the primary port into the application domain.
type ReconciliationUseCase interface {
	// SetCampaign overwrites the configuration of a campaign. There is no
	// validation beyond decoding.
	SetCampaign(ctx context.Context, id string, campaign domain.Campaign) error
	// GetCampaign returns the last payload set for id, or ErrNotFound.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// SetAggregatedData validates one observation, merges it into its
	// record and reprices the record. Validation failures are reported in
	// the returned outcome, which is also sent to the notifier. An error
	// is returned only for storage failures and fixed-point overflow, in
	// which case nothing is written.
	SetAggregatedData(ctx context.Context, obs domain.AggregatedData) (domain.Outcome, error)

	// GetReconciledData returns the record under key, or ErrNotFound.
	GetReconciledData(ctx context.Context, key domain.RecordKey) (*domain.ReconciledData, error)
	ListCampaignsByDate(ctx context.Context, date string) ([]string, error)
	ListDatesByCampaign(ctx context.Context, campaignID string) ([]string, error)
}

// ProofOfPlayUseCase defines the operations of the proof-of-play
// accumulator.
type ProofOfPlayUseCase interface {
	// SetOrder overwrites an order and replaces its billboard inventory.
	SetOrder(ctx context.Context, id string, order domain.OrderData) error
	// GetOrder returns an order by id, or ErrNotFound.
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	// GetBillboard returns a billboard of an order, or ErrNotFound.
	GetBillboard(ctx context.Context, orderID, billboardID string) (*domain.Billboard, error)

	// SetSessionData verifies one play and adds the billboard's daily
	// impression multiplier to the verified audience of its spot.
	SetSessionData(ctx context.Context, session domain.SessionData) (domain.Outcome, error)

	// GetVerifiedSpot returns the verified audience of a spot, or
	// ErrNotFound.
	GetVerifiedSpot(ctx context.Context, key domain.SpotKey) (*domain.VerifiedSpot, error)
	ListOrderDates(ctx context.Context, orderID string) ([]string, error)
}

// Ingester queues observations for asynchronous processing.
type Ingester interface {
	Enqueue(ctx context.Context, obs domain.AggregatedData) error
}

// Notifier receives the outcome of every processed operation.
type Notifier interface {
	Notify(ctx context.Context, outcome domain.Outcome)
}
