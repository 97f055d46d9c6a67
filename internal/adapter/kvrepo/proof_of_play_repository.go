package kvrepo

import (
	"context"
	"fmt"

	"adrecon/internal/adapter/kv"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

const (
	nsOrder        = "order"
	nsBillboard    = "billboard"
	nsOrderDate    = "order-date"
	nsVerifiedSpot = "verified-spot"
)

// ProofOfPlayRepository implements port.ProofOfPlayRepository.
type ProofOfPlayRepository struct {
	store kv.Store
}

// NewProofOfPlayRepository returns a repository persisting into store.
func NewProofOfPlayRepository(store kv.Store) *ProofOfPlayRepository {
	return &ProofOfPlayRepository{store: store}
}

// SaveOrder replaces the order and every billboard previously stored for it.
func (r *ProofOfPlayRepository) SaveOrder(ctx context.Context, id string, order domain.Order, inventory []domain.Billboard) error {
	return r.store.Update(ctx, func(txn kv.Txn) error {
		if err := putJSON(txn, kv.Key(nsOrder, id), order); err != nil {
			return err
		}
		if err := txn.DeletePrefix(kv.Key(nsBillboard, id)); err != nil {
			return err
		}
		for _, b := range inventory {
			if err := putJSON(txn, kv.Key(nsBillboard, id, b.ID), b); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *ProofOfPlayRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o *domain.Order
	err := r.store.View(ctx, func(rd kv.Reader) error {
		var err error
		o, err = getJSON[domain.Order](rd, kv.Key(nsOrder, id))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}
	return o, nil
}

func (r *ProofOfPlayRepository) GetBillboard(ctx context.Context, orderID, billboardID string) (*domain.Billboard, error) {
	var b *domain.Billboard
	err := r.store.View(ctx, func(rd kv.Reader) error {
		var err error
		b, err = getJSON[domain.Billboard](rd, kv.Key(nsBillboard, orderID, billboardID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get billboard %s/%s: %w", orderID, billboardID, err)
	}
	return b, nil
}

func (r *ProofOfPlayRepository) UpdateVerifiedSpot(ctx context.Context, key domain.SpotKey, fn port.SpotFunc) error {
	spotKey := kv.Key(nsVerifiedSpot, key.OrderID, key.Date, key.BillboardID)
	return r.store.Update(ctx, func(txn kv.Txn) error {
		current, err := getJSON[domain.VerifiedSpot](txn, spotKey)
		if err != nil {
			return err
		}
		if current == nil {
			current = &domain.VerifiedSpot{}
		}
		next, err := fn(*current)
		if err != nil || next == nil {
			return err
		}
		if err = putJSON(txn, spotKey, next); err != nil {
			return err
		}
		return txn.Set(kv.Key(nsOrderDate, key.OrderID, key.Date), present)
	})
}

func (r *ProofOfPlayRepository) GetVerifiedSpot(ctx context.Context, key domain.SpotKey) (*domain.VerifiedSpot, error) {
	var s *domain.VerifiedSpot
	err := r.store.View(ctx, func(rd kv.Reader) error {
		var err error
		s, err = getJSON[domain.VerifiedSpot](rd, kv.Key(nsVerifiedSpot, key.OrderID, key.Date, key.BillboardID))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("get verified spot %s: %w", key, err)
	}
	return s, nil
}

func (r *ProofOfPlayRepository) ListOrderDates(ctx context.Context, orderID string) ([]string, error) {
	return listSecond(ctx, r.store, nsOrderDate, orderID)
}
