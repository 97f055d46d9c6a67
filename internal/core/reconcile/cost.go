package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/fixedpoint"
)

var (
	hundred  = decimal.NewFromInt(100)
	thousand = decimal.NewFromInt(1000)
)

// Rate returns the per-unit rate campaign c charges for metric m and
// whether it applies. CPM is priced per thousand impressions.
func Rate(c domain.Campaign, m domain.Metric) (decimal.Decimal, bool, error) {
	p := c.PricingFor(m)
	if !p.Applies {
		return decimal.Zero, false, nil
	}
	if m != domain.Impressions {
		return p.Value, true, nil
	}
	rate, err := fixedpoint.Quo(p.Value, thousand)
	if err != nil {
		return decimal.Zero, false, err
	}
	return rate, true, nil
}

// Price computes the cost of final units at rate and its share of
// totalBudget in percent, both in the 10^decimals scale.
//
// cost = Multiply(final*10^d, rate, d) and
// utilisation = Divide(cost, totalBudget, d) * 100, in that order. A zero
// budget has zero utilisation.
func Price(final, rate, totalBudget decimal.Decimal, decimals uint32) (cost, utilisation decimal.Decimal, err error) {
	scaled, err := fixedpoint.Scale(final, decimals)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	cost, err = fixedpoint.Multiply(scaled, rate, decimals)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if totalBudget.IsZero() {
		return cost, decimal.Zero, nil
	}
	share, err := fixedpoint.Divide(cost, totalBudget, decimals)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	utilisation, err = fixedpoint.Mul(share, hundred)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	return cost, utilisation, nil
}

// Recompute rederives every final count, cost and utilisation of r and the
// record totals from the stored per-source values and campaign c.
func Recompute(r *domain.ReconciledData, c domain.Campaign) error {
	threshold := Threshold(c.ReconciliationThreshold)
	spent, utilised := decimal.Zero, decimal.Zero

	for _, m := range domain.Metrics {
		k := r.Metric(m)
		k.FinalCount = FinalCount(*k, threshold)
		k.Cost, k.BudgetUtilisation = decimal.Zero, decimal.Zero

		rate, applies, err := Rate(c, m)
		if err != nil {
			return fmt.Errorf("%s rate: %w", m, err)
		}
		if applies {
			if k.Cost, k.BudgetUtilisation, err = Price(k.FinalCount, rate, c.TotalBudget, c.Decimals); err != nil {
				return fmt.Errorf("price %s: %w", m, err)
			}
		}

		if spent, err = fixedpoint.Add(spent, k.Cost); err != nil {
			return fmt.Errorf("amount spent: %w", err)
		}
		if utilised, err = fixedpoint.Add(utilised, k.BudgetUtilisation); err != nil {
			return fmt.Errorf("budget utilisation: %w", err)
		}
	}

	r.AmountSpent = spent
	r.BudgetUtilisation = utilised
	return nil
}
