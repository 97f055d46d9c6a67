package domain

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Pricing is one pricing term of a campaign. Value is a scaled amount in
// the campaign's fixed-point scale.
type Pricing struct {
	Applies bool            `json:"applies"`
	Value   decimal.Decimal `json:"value"`
}

// Equal reports whether both terms carry the same flag and amount.
func (p Pricing) Equal(o Pricing) bool {
	return p.Applies == o.Applies && p.Value.Equal(o.Value)
}

// Campaign represents an advertising campaign configuration.
// TotalBudget and pricing values are stored scaled by 10^Decimals.
type Campaign struct {
	Name                    string          `json:"name"`
	TotalBudget             decimal.Decimal `json:"total_budget"`
	Currency                string          `json:"currency"`
	StartDate               string          `json:"start_date"`
	EndDate                 string          `json:"end_date"`
	Platforms               []string        `json:"platforms"`
	Advertiser              string          `json:"advertiser"`
	Brand                   string          `json:"brand"`
	ReconciliationThreshold uint32          `json:"reconciliation_threshold"` // percent
	Decimals                uint32          `json:"decimals"`
	Version                 uint8           `json:"version"`
	CPC                     Pricing         `json:"cpc"` // cost per click
	CPM                     Pricing         `json:"cpm"` // cost per thousand impressions
	CPL                     Pricing         `json:"cpl"` // cost per lead (conversion)
}

// AllowsPlatform reports whether observations for platform are accepted.
func (c Campaign) AllowsPlatform(platform string) bool {
	return slices.Contains(c.Platforms, platform)
}

// PricingFor returns the pricing term that prices metric m.
func (c Campaign) PricingFor(m Metric) Pricing {
	switch m {
	case Impressions:
		return c.CPM
	case Clicks:
		return c.CPC
	case Conversions:
		return c.CPL
	default:
		return Pricing{}
	}
}

// Equal compares every field, amounts by value.
func (c Campaign) Equal(o Campaign) bool {
	return c.Name == o.Name &&
		c.TotalBudget.Equal(o.TotalBudget) &&
		c.Currency == o.Currency &&
		c.StartDate == o.StartDate &&
		c.EndDate == o.EndDate &&
		slices.Equal(c.Platforms, o.Platforms) &&
		c.Advertiser == o.Advertiser &&
		c.Brand == o.Brand &&
		c.ReconciliationThreshold == o.ReconciliationThreshold &&
		c.Decimals == o.Decimals &&
		c.Version == o.Version &&
		c.CPC.Equal(o.CPC) &&
		c.CPM.Equal(o.CPM) &&
		c.CPL.Equal(o.CPL)
}
