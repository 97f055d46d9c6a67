package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RecordKey addresses one reconciled record.
type RecordKey struct {
	Date       string `json:"date"`
	CampaignID string `json:"campaign_id"`
	Platform   string `json:"platform"`
}

// DateCampaign renders the date-campaign label used in reports. It is
// ambiguous when either part contains '-' and is never used as a storage key.
func (k RecordKey) DateCampaign() string {
	return k.Date + "-" + k.CampaignID
}

func (k RecordKey) String() string {
	return fmt.Sprintf("%s/%s", k.DateCampaign(), k.Platform)
}

// Kpis holds the per-source raw values of one metric together with the
// derived final count, cost and budget utilisation. A zero raw value means
// the source has not reported.
type Kpis struct {
	FinalCount        decimal.Decimal `json:"final_count"`
	Cost              decimal.Decimal `json:"cost"`
	BudgetUtilisation decimal.Decimal `json:"budget_utilisation"`
	ZDMP              decimal.Decimal `json:"zdmp"`
	Platform          decimal.Decimal `json:"platform"`
	Client            decimal.Decimal `json:"client"`
}

// Reported returns the last value stored for src.
func (k Kpis) Reported(src Source) decimal.Decimal {
	switch src {
	case SourceZDMP:
		return k.ZDMP
	case SourceClient:
		return k.Client
	default:
		return k.Platform
	}
}

// SetReported stores v as the last value reported by src.
func (k *Kpis) SetReported(src Source, v decimal.Decimal) {
	switch src {
	case SourceZDMP:
		k.ZDMP = v
	case SourceClient:
		k.Client = v
	default:
		k.Platform = v
	}
}

// Equal compares all six figures by value.
func (k Kpis) Equal(o Kpis) bool {
	return k.FinalCount.Equal(o.FinalCount) &&
		k.Cost.Equal(o.Cost) &&
		k.BudgetUtilisation.Equal(o.BudgetUtilisation) &&
		k.ZDMP.Equal(o.ZDMP) &&
		k.Platform.Equal(o.Platform) &&
		k.Client.Equal(o.Client)
}

// ReconciledData is the authoritative record for one (date, campaign,
// platform) triple.
type ReconciledData struct {
	AmountSpent       decimal.Decimal `json:"amount_spent"`
	BudgetUtilisation decimal.Decimal `json:"budget_utilisation"`
	Impressions       Kpis            `json:"impressions"`
	Clicks            Kpis            `json:"clicks"`
	Conversions       Kpis            `json:"conversions"`
}

// Metric returns a pointer to the Kpis of metric m.
func (r *ReconciledData) Metric(m Metric) *Kpis {
	switch m {
	case Impressions:
		return &r.Impressions
	case Clicks:
		return &r.Clicks
	case Conversions:
		return &r.Conversions
	default:
		panic(fmt.Sprintf("domain: unknown metric %d", m))
	}
}

// IsIncrement reports whether every counter of obs is at least the value
// previously stored for the same source.
func (r *ReconciledData) IsIncrement(obs AggregatedData) bool {
	src := obs.SourceKind()
	for _, m := range Metrics {
		if obs.Count(m).LessThan(r.Metric(m).Reported(src)) {
			return false
		}
	}
	return true
}

// Merge stores the counters of obs in its source slot.
func (r *ReconciledData) Merge(obs AggregatedData) {
	src := obs.SourceKind()
	for _, m := range Metrics {
		r.Metric(m).SetReported(src, obs.Count(m))
	}
}

// Equal compares the full record by value.
func (r ReconciledData) Equal(o ReconciledData) bool {
	return r.AmountSpent.Equal(o.AmountSpent) &&
		r.BudgetUtilisation.Equal(o.BudgetUtilisation) &&
		r.Impressions.Equal(o.Impressions) &&
		r.Clicks.Equal(o.Clicks) &&
		r.Conversions.Equal(o.Conversions)
}
