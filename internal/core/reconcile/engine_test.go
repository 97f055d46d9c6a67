package reconcile

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/fixedpoint"
)

func n(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestAgrees(t *testing.T) {
	fifteen := Threshold(15)

	assert.True(t, Agrees(n(85), n(100), fifteen), "lower bound is inclusive")
	assert.True(t, Agrees(n(115), n(100), fifteen), "upper bound is inclusive")
	assert.False(t, Agrees(n(84), n(100), fifteen))
	assert.False(t, Agrees(n(116), n(100), fifteen))
	assert.False(t, Agrees(n(0), n(100), fifteen), "absent candidate")
	assert.False(t, Agrees(n(100), n(0), fifteen), "absent reference")
	assert.True(t, Agrees(n(100), n(100), Threshold(0)))
	assert.False(t, Agrees(n(101), n(100), Threshold(0)))
	assert.True(t, Agrees(n(1), n(100), Threshold(250)), "negative lower bound is clamped at zero")
}

// The band must be computed exactly: 1/3 of a percent point cannot hide in
// a float rounding error.
func TestAgreesIsExact(t *testing.T) {
	ref := decimal.RequireFromString("300000000000000000000000000000")
	upper := decimal.RequireFromString("345000000000000000000000000000")
	assert.True(t, Agrees(upper, ref, Threshold(15)))
	assert.False(t, Agrees(upper.Add(n(1)), ref, Threshold(15)))
}

func TestFinalCount(t *testing.T) {
	tests := []struct {
		name                   string
		previous               int64
		zdmp, platform, client int64
		want                   int64
	}{
		{name: "zdmp only", zdmp: 100, want: 100},
		{name: "platform outside band", zdmp: 100, platform: 120, want: 100},
		{name: "platform inside band", zdmp: 100, platform: 108, want: 108},
		{name: "platform on upper bound", zdmp: 100, platform: 115, want: 115},
		{name: "platform only", platform: 50, want: 50},
		{name: "client on lower bound", zdmp: 100, platform: 120, client: 85, want: 85},
		{name: "client outside band", zdmp: 100, platform: 120, client: 84, want: 100},
		{name: "client checked against platform", platform: 85, client: 80, want: 80},
		{name: "client checked against previous", previous: 90, client: 95, want: 95},
		{name: "client alone", client: 80, want: 0},
		{name: "previous kept", previous: 90, client: 200, want: 90},
		{name: "nothing reported", previous: 90, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := domain.Kpis{
				FinalCount: n(tt.previous),
				ZDMP:       n(tt.zdmp),
				Platform:   n(tt.platform),
				Client:     n(tt.client),
			}
			got := FinalCount(k, Threshold(15))
			assert.Equal(t, n(tt.want).String(), got.String())
		})
	}
}

func TestPrice(t *testing.T) {
	cost, util, err := Price(n(100), n(700000), n(5000000000), 6)
	require.NoError(t, err)
	assert.Equal(t, "70000000", cost.String())
	assert.Equal(t, "1400000", util.String())

	cost, util, err = Price(n(100), n(700000), decimal.Zero, 6)
	require.NoError(t, err)
	assert.Equal(t, "70000000", cost.String())
	assert.True(t, util.IsZero(), "zero budget has zero utilisation")

	_, _, err = Price(n(10_000_000_000), n(1), n(1), fixedpoint.MaxDecimals)
	assert.ErrorIs(t, err, fixedpoint.ErrOverflow)
}

func TestRateDividesCPMByThousand(t *testing.T) {
	c := domain.Campaign{
		CPM: domain.Pricing{Applies: true, Value: n(700999)},
		CPC: domain.Pricing{Applies: true, Value: n(700000)},
	}
	rate, applies, err := Rate(c, domain.Impressions)
	require.NoError(t, err)
	assert.True(t, applies)
	assert.Equal(t, "700", rate.String())

	rate, applies, err = Rate(c, domain.Clicks)
	require.NoError(t, err)
	assert.True(t, applies)
	assert.Equal(t, "700000", rate.String())

	_, applies, err = Rate(c, domain.Conversions)
	require.NoError(t, err)
	assert.False(t, applies)
}

func TestRecompute(t *testing.T) {
	c := domain.Campaign{
		TotalBudget:             n(5000000000),
		ReconciliationThreshold: 15,
		Decimals:                6,
		CPC:                     domain.Pricing{Applies: true, Value: n(700000)},
		CPM:                     domain.Pricing{Applies: true, Value: n(2000000)},
		CPL:                     domain.Pricing{Applies: false, Value: n(9000000)},
	}
	r := domain.ReconciledData{
		Impressions: domain.Kpis{ZDMP: n(1000)},
		Clicks:      domain.Kpis{ZDMP: n(100), Platform: n(120)},
		Conversions: domain.Kpis{ZDMP: n(3)},
	}
	require.NoError(t, Recompute(&r, c))

	assert.Equal(t, "1000", r.Impressions.FinalCount.String())
	assert.Equal(t, "2000000", r.Impressions.Cost.String())
	assert.Equal(t, "40000", r.Impressions.BudgetUtilisation.String())

	assert.Equal(t, "100", r.Clicks.FinalCount.String())
	assert.Equal(t, "70000000", r.Clicks.Cost.String())
	assert.Equal(t, "1400000", r.Clicks.BudgetUtilisation.String())

	assert.Equal(t, "3", r.Conversions.FinalCount.String())
	assert.True(t, r.Conversions.Cost.IsZero(), "pricing term does not apply")
	assert.True(t, r.Conversions.BudgetUtilisation.IsZero())

	assert.Equal(t, "72000000", r.AmountSpent.String())
	assert.Equal(t, "1440000", r.BudgetUtilisation.String())
}

func TestRecomputeClearsStaleCost(t *testing.T) {
	c := domain.Campaign{TotalBudget: n(1000), Decimals: 0}
	r := domain.ReconciledData{
		AmountSpent: n(5),
		Clicks:      domain.Kpis{ZDMP: n(1), Cost: n(5), BudgetUtilisation: n(50)},
	}
	require.NoError(t, Recompute(&r, c))
	assert.True(t, r.Clicks.Cost.IsZero())
	assert.True(t, r.AmountSpent.IsZero())
}

func TestRecomputeOverflow(t *testing.T) {
	c := domain.Campaign{
		TotalBudget: n(1),
		Decimals:    30,
		CPC:         domain.Pricing{Applies: true, Value: fixedpoint.Max},
	}
	r := domain.ReconciledData{Clicks: domain.Kpis{ZDMP: n(1000)}}
	err := Recompute(&r, c)
	assert.ErrorIs(t, err, fixedpoint.ErrOverflow)
}
