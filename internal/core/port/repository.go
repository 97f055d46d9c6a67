package port

import (
	"context"
	"errors"

	"adrecon/internal/core/domain"
)

// ErrNotFound is returned by lookups whose key has never been written.
var ErrNotFound = errors.New("not found")

// ReconcileFunc receives the stored record for a key, nil when none
// exists, and returns the record to persist. Returning a nil record
// leaves storage untouched. It may be invoked more than once when the
// store retries a conflicting transaction, so it must not keep side
// effects beyond its return values and local captures it resets.
type ReconcileFunc func(current *domain.ReconciledData) (*domain.ReconciledData, error)

// SpotFunc is the proof-of-play counterpart of ReconcileFunc. current is
// the zero spot when nothing was verified yet.
type SpotFunc func(current domain.VerifiedSpot) (*domain.VerifiedSpot, error)

// ReconciliationRepository persists campaigns, reconciled records and the
// date/campaign existence indexes. It is an outbound port. Lookups of
// missing keys return nil, nil. Implementations must be concurrency-safe.
type ReconciliationRepository interface {
	// SaveCampaign overwrites the campaign stored under id.
	SaveCampaign(ctx context.Context, id string, campaign domain.Campaign) error
	// GetCampaign returns a campaign by id.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// UpdateReconciledData runs fn as one atomic read-modify-write of the
	// record under key. When fn returns a record it is stored together
	// with both existence index entries for key.
	UpdateReconciledData(ctx context.Context, key domain.RecordKey, fn ReconcileFunc) error
	// GetReconciledData returns a record by key.
	GetReconciledData(ctx context.Context, key domain.RecordKey) (*domain.ReconciledData, error)

	// ListCampaignsByDate returns the ids of campaigns with data on date.
	ListCampaignsByDate(ctx context.Context, date string) ([]string, error)
	// ListDatesByCampaign returns the dates with data for campaignID.
	ListDatesByCampaign(ctx context.Context, campaignID string) ([]string, error)
}

// ProofOfPlayRepository persists orders, their billboards and verified
// spots. Lookups of missing keys return nil, nil.
type ProofOfPlayRepository interface {
	// SaveOrder overwrites the order under id and replaces its inventory.
	SaveOrder(ctx context.Context, id string, order domain.Order, inventory []domain.Billboard) error
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	GetBillboard(ctx context.Context, orderID, billboardID string) (*domain.Billboard, error)

	// UpdateVerifiedSpot runs fn as one atomic read-modify-write of the spot
	// under key and records key.Date as a date of the order.
	UpdateVerifiedSpot(ctx context.Context, key domain.SpotKey, fn SpotFunc) error
	GetVerifiedSpot(ctx context.Context, key domain.SpotKey) (*domain.VerifiedSpot, error)
	ListOrderDates(ctx context.Context, orderID string) ([]string, error)
}
