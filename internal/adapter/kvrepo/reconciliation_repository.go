// Package kvrepo implements the repository ports on top of any kv.Store.
// Values are stored as JSON under namespaced composite keys.
package kvrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"adrecon/internal/adapter/kv"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

const (
	nsCampaign     = "campaign"
	nsReconciled   = "reconciled"
	nsDateCampaign = "date-campaign"
	nsCampaignDate = "campaign-date"
)

// present is the value of existence index entries.
var present = []byte{1}

// ReconciliationRepository implements port.ReconciliationRepository.
type ReconciliationRepository struct {
	store kv.Store
}

// NewReconciliationRepository returns a repository persisting into store.
func NewReconciliationRepository(store kv.Store) *ReconciliationRepository {
	return &ReconciliationRepository{store: store}
}

func (r *ReconciliationRepository) SaveCampaign(ctx context.Context, id string, campaign domain.Campaign) error {
	return r.store.Update(ctx, func(txn kv.Txn) error {
		return putJSON(txn, kv.Key(nsCampaign, id), campaign)
	})
}

// GetCampaign returns nil, nil when the campaign does not exist.
func (r *ReconciliationRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var c *domain.Campaign
	err := r.store.View(ctx, func(rd kv.Reader) error {
		var err error
		c, err = getJSON[domain.Campaign](rd, kv.Key(nsCampaign, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get campaign %s: %w", id, err)
	}
	return c, nil
}

// UpdateReconciledData stores the record returned by fn together with its
// index entries in one transaction.
func (r *ReconciliationRepository) UpdateReconciledData(ctx context.Context, key domain.RecordKey, fn port.ReconcileFunc) error {
	recordKey := reconciledKey(key)
	return r.store.Update(ctx, func(txn kv.Txn) error {
		current, err := getJSON[domain.ReconciledData](txn, recordKey)
		if err != nil {
			return err
		}
		next, err := fn(current)
		if err != nil || next == nil {
			return err
		}
		if err = putJSON(txn, recordKey, next); err != nil {
			return err
		}
		if err = txn.Set(kv.Key(nsDateCampaign, key.Date, key.CampaignID), present); err != nil {
			return err
		}
		return txn.Set(kv.Key(nsCampaignDate, key.CampaignID, key.Date), present)
	})
}

func (r *ReconciliationRepository) GetReconciledData(ctx context.Context, key domain.RecordKey) (*domain.ReconciledData, error) {
	var rec *domain.ReconciledData
	err := r.store.View(ctx, func(rd kv.Reader) error {
		var err error
		rec, err = getJSON[domain.ReconciledData](rd, reconciledKey(key))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get reconciled data %s: %w", key, err)
	}
	return rec, nil
}

func (r *ReconciliationRepository) ListCampaignsByDate(ctx context.Context, date string) ([]string, error) {
	return listSecond(ctx, r.store, nsDateCampaign, date)
}

func (r *ReconciliationRepository) ListDatesByCampaign(ctx context.Context, campaignID string) ([]string, error) {
	return listSecond(ctx, r.store, nsCampaignDate, campaignID)
}

func reconciledKey(key domain.RecordKey) []byte {
	return kv.Key(nsReconciled, key.Date, key.CampaignID, key.Platform)
}

// listSecond returns the sorted second segments of all keys in namespace
// whose first segment is first.
func listSecond(ctx context.Context, store kv.Store, namespace, first string) ([]string, error) {
	var out []string
	err := store.View(ctx, func(rd kv.Reader) error {
		return rd.ScanPrefix(kv.Key(namespace, first), func(key, _ []byte) error {
			segments, err := kv.Segments(namespace, key)
			if err != nil {
				return err
			}
			if len(segments) == 2 {
				out = append(out, segments[1])
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("list %s %s: %w", namespace, first, err)
	}
	slices.Sort(out)
	return out, nil
}

func getJSON[T any](rd kv.Reader, key []byte) (*T, error) {
	raw, err := rd.Get(key)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var v T
	if err = json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("decode %q: %w", key, err)
	}
	return &v, nil
}

func putJSON(txn kv.Txn, key []byte, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return txn.Set(key, raw)
}
