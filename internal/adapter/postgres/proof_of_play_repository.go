package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// ProofOfPlayRepository implements port.ProofOfPlayRepository using
// pgxpool for PostgreSQL.
type ProofOfPlayRepository struct {
	pool *pgxpool.Pool
}

// NewProofOfPlayRepository returns a new repository instance.
func NewProofOfPlayRepository(pool *pgxpool.Pool) *ProofOfPlayRepository {
	return &ProofOfPlayRepository{pool: pool}
}

// SaveOrder upserts the order and replaces its billboards in one
// transaction. Billboards are written as a single batch.
func (r *ProofOfPlayRepository) SaveOrder(ctx context.Context, id string, order domain.Order, inventory []domain.Billboard) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO orders (id, start_date, end_date, total_spots, total_audiences, creative_list, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,now())
        ON CONFLICT (id) DO UPDATE SET
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            total_spots = EXCLUDED.total_spots,
            total_audiences = EXCLUDED.total_audiences,
            creative_list = EXCLUDED.creative_list,
            updated_at = now()`,
		id, order.StartDate, order.EndDate, order.TotalSpots, order.TotalAudiences, nonNilSlice(order.CreativeList))
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `DELETE FROM billboards WHERE order_id = $1`, id); err != nil {
		return err
	}
	if len(inventory) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, b := range inventory {
		batch.Queue(`
            INSERT INTO billboards (order_id, id, spot_duration, spots_per_hour, total_spots, imp_multiplier_per_day)
            VALUES ($1,$2,$3,$4,$5,$6)`,
			id, b.ID, b.SpotDuration, b.SpotsPerHour, b.TotalSpots, b.ImpMultiplierPerDay)
	}
	err = tx.SendBatch(ctx, batch).Close()
	return err
}

// GetOrder returns an order by id.
func (r *ProofOfPlayRepository) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.pool.QueryRow(ctx, `SELECT start_date, end_date, total_spots, total_audiences, creative_list FROM orders WHERE id = $1`, id).
		Scan(&o.StartDate, &o.EndDate, &o.TotalSpots, &o.TotalAudiences, &o.CreativeList)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetBillboard returns a billboard of an order.
func (r *ProofOfPlayRepository) GetBillboard(ctx context.Context, orderID, billboardID string) (*domain.Billboard, error) {
	b := domain.Billboard{ID: billboardID}
	err := r.pool.QueryRow(ctx, `
        SELECT spot_duration, spots_per_hour, total_spots, imp_multiplier_per_day
        FROM billboards WHERE order_id = $1 AND id = $2`, orderID, billboardID).
		Scan(&b.SpotDuration, &b.SpotsPerHour, &b.TotalSpots, &b.ImpMultiplierPerDay)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateVerifiedSpot runs fn with the spot row locked. Like
// UpdateReconciledData, a missing row is claimed with a placeholder.
func (r *ProofOfPlayRepository) UpdateVerifiedSpot(ctx context.Context, key domain.SpotKey, fn port.SpotFunc) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	_, err = tx.Exec(ctx, `
        INSERT INTO verified_spots (order_id, date, billboard_id) VALUES ($1,$2,$3)
        ON CONFLICT DO NOTHING`, key.OrderID, key.Date, key.BillboardID)
	if err != nil {
		return err
	}
	var current domain.VerifiedSpot
	err = tx.QueryRow(ctx, `
        SELECT verified_audience FROM verified_spots
        WHERE order_id = $1 AND date = $2 AND billboard_id = $3 FOR UPDATE`,
		key.OrderID, key.Date, key.BillboardID).Scan(&current.VerifiedAudience)
	if err != nil {
		return err
	}

	next, err := fn(current)
	if err != nil || next == nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE verified_spots SET verified_audience = $4, updated_at = now()
        WHERE order_id = $1 AND date = $2 AND billboard_id = $3`,
		key.OrderID, key.Date, key.BillboardID, next.VerifiedAudience)
	if err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ProofOfPlayRepository) GetVerifiedSpot(ctx context.Context, key domain.SpotKey) (*domain.VerifiedSpot, error) {
	var s domain.VerifiedSpot
	err := r.pool.QueryRow(ctx, `
        SELECT verified_audience FROM verified_spots
        WHERE order_id = $1 AND date = $2 AND billboard_id = $3`,
		key.OrderID, key.Date, key.BillboardID).Scan(&s.VerifiedAudience)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// ListOrderDates returns the days with at least one verified spot.
func (r *ProofOfPlayRepository) ListOrderDates(ctx context.Context, orderID string) ([]string, error) {
	return listStrings(ctx, r.pool,
		`SELECT DISTINCT date FROM verified_spots WHERE order_id = $1 ORDER BY date`, orderID)
}
