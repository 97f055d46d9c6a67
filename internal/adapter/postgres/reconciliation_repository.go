package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// ReconciliationRepository implements port.ReconciliationRepository using
// pgxpool for PostgreSQL. Amounts are NUMERIC(39,0) columns exchanged as
// text so no precision is lost on the way.
type ReconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepository returns a new repository instance.
func NewReconciliationRepository(pool *pgxpool.Pool) *ReconciliationRepository {
	return &ReconciliationRepository{pool: pool}
}

// SaveCampaign upserts the whole campaign row.
func (r *ReconciliationRepository) SaveCampaign(ctx context.Context, id string, c domain.Campaign) error {
	_, err := r.pool.Exec(ctx, `
        INSERT INTO campaigns (
            id, name, total_budget, currency, start_date, end_date, platforms,
            advertiser, brand, reconciliation_threshold, decimals, version,
            cpc_applies, cpc_value, cpm_applies, cpm_value, cpl_applies, cpl_value, updated_at)
        VALUES ($1,$2,$3::numeric,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14::numeric,$15,$16::numeric,$17,$18::numeric,now())
        ON CONFLICT (id) DO UPDATE SET
            name = EXCLUDED.name,
            total_budget = EXCLUDED.total_budget,
            currency = EXCLUDED.currency,
            start_date = EXCLUDED.start_date,
            end_date = EXCLUDED.end_date,
            platforms = EXCLUDED.platforms,
            advertiser = EXCLUDED.advertiser,
            brand = EXCLUDED.brand,
            reconciliation_threshold = EXCLUDED.reconciliation_threshold,
            decimals = EXCLUDED.decimals,
            version = EXCLUDED.version,
            cpc_applies = EXCLUDED.cpc_applies,
            cpc_value = EXCLUDED.cpc_value,
            cpm_applies = EXCLUDED.cpm_applies,
            cpm_value = EXCLUDED.cpm_value,
            cpl_applies = EXCLUDED.cpl_applies,
            cpl_value = EXCLUDED.cpl_value,
            updated_at = now()`,
		id, c.Name, c.TotalBudget.String(), c.Currency, c.StartDate, c.EndDate, nonNilSlice(c.Platforms),
		c.Advertiser, c.Brand, c.ReconciliationThreshold, c.Decimals, c.Version,
		c.CPC.Applies, c.CPC.Value.String(), c.CPM.Applies, c.CPM.Value.String(), c.CPL.Applies, c.CPL.Value.String())
	return err
}

// GetCampaign returns a campaign by id.
func (r *ReconciliationRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	var (
		c                                    domain.Campaign
		budget, cpcValue, cpmValue, cplValue string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT name, total_budget::text, currency, start_date, end_date, platforms,
               advertiser, brand, reconciliation_threshold, decimals, version,
               cpc_applies, cpc_value::text, cpm_applies, cpm_value::text, cpl_applies, cpl_value::text
        FROM campaigns WHERE id = $1`, id).
		Scan(&c.Name, &budget, &c.Currency, &c.StartDate, &c.EndDate, &c.Platforms,
			&c.Advertiser, &c.Brand, &c.ReconciliationThreshold, &c.Decimals, &c.Version,
			&c.CPC.Applies, &cpcValue, &c.CPM.Applies, &cpmValue, &c.CPL.Applies, &cplValue)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = parseAmounts(
		amount{budget, &c.TotalBudget},
		amount{cpcValue, &c.CPC.Value},
		amount{cpmValue, &c.CPM.Value},
		amount{cplValue, &c.CPL.Value},
	); err != nil {
		return nil, fmt.Errorf("campaign %s: %w", id, err)
	}
	return &c, nil
}

// UpdateReconciledData locks the record row for the duration of fn. A
// missing row is claimed with a placeholder insert, which concurrent
// callers wait on; the placeholder is rolled back when fn writes nothing.
func (r *ReconciliationRepository) UpdateReconciledData(ctx context.Context, key domain.RecordKey, fn port.ReconcileFunc) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var created bool
	err = tx.QueryRow(ctx, `
        INSERT INTO reconciled_data (date, campaign_id, platform) VALUES ($1,$2,$3)
        ON CONFLICT DO NOTHING RETURNING true`,
		key.Date, key.CampaignID, key.Platform).Scan(&created)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var current *domain.ReconciledData
	if !created {
		current, err = getReconciled(ctx, tx, key, true)
		if err != nil {
			return err
		}
	}

	next, err := fn(current)
	if err != nil || next == nil {
		return err
	}

	impressions, clicks, conversions, err := marshalKpis(next)
	if err != nil {
		return err
	}
	_, err = tx.Exec(ctx, `
        UPDATE reconciled_data SET
            amount_spent = $4::numeric, budget_utilisation = $5::numeric,
            impressions = $6, clicks = $7, conversions = $8, updated_at = now()
        WHERE date = $1 AND campaign_id = $2 AND platform = $3`,
		key.Date, key.CampaignID, key.Platform,
		next.AmountSpent.String(), next.BudgetUtilisation.String(),
		impressions, clicks, conversions)
	if err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO reconciled_date_campaigns (date, campaign_id) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
		key.Date, key.CampaignID); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, `INSERT INTO reconciled_campaign_dates (campaign_id, date) VALUES ($1,$2) ON CONFLICT DO NOTHING`,
		key.CampaignID, key.Date); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

func (r *ReconciliationRepository) GetReconciledData(ctx context.Context, key domain.RecordKey) (*domain.ReconciledData, error) {
	return getReconciled(ctx, r.pool, key, false)
}

func (r *ReconciliationRepository) ListCampaignsByDate(ctx context.Context, date string) ([]string, error) {
	return listStrings(ctx, r.pool,
		`SELECT campaign_id FROM reconciled_date_campaigns WHERE date = $1 ORDER BY campaign_id`, date)
}

func (r *ReconciliationRepository) ListDatesByCampaign(ctx context.Context, campaignID string) ([]string, error) {
	return listStrings(ctx, r.pool,
		`SELECT date FROM reconciled_campaign_dates WHERE campaign_id = $1 ORDER BY date`, campaignID)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func getReconciled(ctx context.Context, q querier, key domain.RecordKey, lock bool) (*domain.ReconciledData, error) {
	query := `
        SELECT amount_spent::text, budget_utilisation::text, impressions, clicks, conversions
        FROM reconciled_data WHERE date = $1 AND campaign_id = $2 AND platform = $3`
	if lock {
		query += ` FOR UPDATE`
	}
	var (
		rec                              domain.ReconciledData
		spent, util                      string
		impressions, clicks, conversions []byte
	)
	err := q.QueryRow(ctx, query, key.Date, key.CampaignID, key.Platform).
		Scan(&spent, &util, &impressions, &clicks, &conversions)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err = parseAmounts(amount{spent, &rec.AmountSpent}, amount{util, &rec.BudgetUtilisation}); err != nil {
		return nil, fmt.Errorf("reconciled %s: %w", key, err)
	}
	for _, k := range []struct {
		raw []byte
		dst *domain.Kpis
	}{{impressions, &rec.Impressions}, {clicks, &rec.Clicks}, {conversions, &rec.Conversions}} {
		if err = json.Unmarshal(k.raw, k.dst); err != nil {
			return nil, fmt.Errorf("reconciled %s: %w", key, err)
		}
	}
	return &rec, nil
}

func marshalKpis(rec *domain.ReconciledData) (impressions, clicks, conversions []byte, err error) {
	if impressions, err = json.Marshal(rec.Impressions); err != nil {
		return
	}
	if clicks, err = json.Marshal(rec.Clicks); err != nil {
		return
	}
	conversions, err = json.Marshal(rec.Conversions)
	return
}

func listStrings(ctx context.Context, q querier, sql string, arg string) ([]string, error) {
	rows, err := q.Query(ctx, sql, arg)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[string])
}

// amount is a NUMERIC column read as text and its destination.
type amount struct {
	text string
	dst  *decimal.Decimal
}

func parseAmounts(amounts ...amount) error {
	for _, a := range amounts {
		d, err := decimal.NewFromString(a.text)
		if err != nil {
			return err
		}
		*a.dst = d
	}
	return nil
}

func nonNilSlice(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
