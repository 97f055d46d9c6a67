package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSource(t *testing.T) {
	assert.Equal(t, SourceZDMP, ParseSource("zdmp"))
	assert.Equal(t, SourceClient, ParseSource("client"))
	assert.Equal(t, SourcePlatform, ParseSource("platform"))
	assert.Equal(t, SourcePlatform, ParseSource("dv360"))
	assert.Equal(t, SourcePlatform, ParseSource(""))
	assert.Equal(t, SourcePlatform, ParseSource("ZDMP"), "tags are case sensitive")
}

func TestRecordKeyDateCampaign(t *testing.T) {
	k := RecordKey{Date: "20240101", CampaignID: "ID_001", Platform: "Facebook"}
	assert.Equal(t, "20240101-ID_001", k.DateCampaign())
	assert.Equal(t, "20240101-ID_001/Facebook", k.String())

	a := RecordKey{Date: "2024-01", CampaignID: "01", Platform: "p"}
	b := RecordKey{Date: "2024", CampaignID: "01-01", Platform: "p"}
	assert.Equal(t, a.DateCampaign(), b.DateCampaign(), "labels collide")
	assert.NotEqual(t, a, b, "keys do not")
}

func TestCampaignAllowsPlatform(t *testing.T) {
	c := Campaign{Platforms: []string{"Facebook", "Google"}}
	assert.True(t, c.AllowsPlatform("Google"))
	assert.False(t, c.AllowsPlatform("google"))
	assert.False(t, Campaign{}.AllowsPlatform("Google"))
}

func TestCampaignPricingFor(t *testing.T) {
	c := Campaign{
		CPC: Pricing{Applies: true, Value: decimal.NewFromInt(1)},
		CPM: Pricing{Applies: true, Value: decimal.NewFromInt(2)},
		CPL: Pricing{Applies: false, Value: decimal.NewFromInt(3)},
	}
	assert.True(t, c.PricingFor(Clicks).Equal(c.CPC))
	assert.True(t, c.PricingFor(Impressions).Equal(c.CPM))
	assert.True(t, c.PricingFor(Conversions).Equal(c.CPL))
}

func TestCampaignJSONRoundTrip(t *testing.T) {
	c := Campaign{
		Name:                    "Coca Cola",
		TotalBudget:             decimal.RequireFromString("340282366920938463463374607431768211455"),
		Currency:                "SGD",
		Platforms:               []string{"Facebook"},
		ReconciliationThreshold: 15,
		Decimals:                6,
		CPC:                     Pricing{Applies: true, Value: decimal.NewFromInt(700000)},
	}
	raw, err := json.Marshal(c)
	require.NoError(t, err)

	var got Campaign
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.True(t, c.Equal(got), "amounts beyond 64 bits survive encoding")
}

func TestReconciledDataIsIncrement(t *testing.T) {
	var r ReconciledData
	obs := AggregatedData{
		Source:      "zdmp",
		Impressions: decimal.NewFromInt(10),
		Clicks:      decimal.NewFromInt(5),
		Conversions: decimal.NewFromInt(1),
	}
	require.True(t, r.IsIncrement(obs))
	r.Merge(obs)

	assert.Equal(t, "10", r.Impressions.ZDMP.String())
	assert.Equal(t, "5", r.Clicks.ZDMP.String())
	assert.True(t, r.Clicks.Platform.IsZero())

	same := obs
	assert.True(t, r.IsIncrement(same), "equal counters are not a decrease")

	lower := obs
	lower.Conversions = decimal.Zero
	assert.False(t, r.IsIncrement(lower))

	other := lower
	other.Source = "client"
	assert.True(t, r.IsIncrement(other), "sources are checked independently")
}

func TestRejectedOutcome(t *testing.T) {
	o := Rejected(KindSessionData, "s1", CodeDurationTooShort)
	assert.True(t, o.Failed)
	assert.Equal(t, "Duration is lower than expected", o.Message)

	ok := Succeeded(KindSessionData, "s1")
	assert.False(t, ok.Failed)
	assert.Empty(t, ok.Message)
}

func TestOrderCovers(t *testing.T) {
	o := Order{StartDate: 100, EndDate: 200, CreativeList: []string{"cr1"}}
	assert.True(t, o.Covers(100))
	assert.True(t, o.Covers(200))
	assert.False(t, o.Covers(99))
	assert.False(t, o.Covers(201))
	assert.True(t, o.HasCreative("cr1"))
	assert.False(t, o.HasCreative("cr2"))
}
