package domain

import (
	"github.com/shopspring/decimal"
)

// Source identifies who reported an observation.
type Source string

const (
	SourceZDMP     Source = "zdmp"
	SourcePlatform Source = "platform"
	SourceClient   Source = "client"
)

// ParseSource maps a raw source tag to a Source. Anything other than
// "zdmp" or "client" is the serving platform.
func ParseSource(raw string) Source {
	switch raw {
	case string(SourceZDMP):
		return SourceZDMP
	case string(SourceClient):
		return SourceClient
	default:
		return SourcePlatform
	}
}

// Metric enumerates the reconciled counters.
type Metric int

const (
	Impressions Metric = iota
	Clicks
	Conversions
)

// Metrics lists every metric in record order.
var Metrics = [...]Metric{Impressions, Clicks, Conversions}

func (m Metric) String() string {
	switch m {
	case Impressions:
		return "impressions"
	case Clicks:
		return "clicks"
	case Conversions:
		return "conversions"
	default:
		return "unknown"
	}
}

// AggregatedData is one cumulative-to-date observation from one source for
// one campaign, platform and reporting day.
type AggregatedData struct {
	CampaignID   string          `json:"campaign_id"`
	Platform     string          `json:"platform"`
	Date         string          `json:"date"`
	DateReceived string          `json:"date_received"`
	Source       string          `json:"source"`
	Impressions  decimal.Decimal `json:"impressions"`
	Clicks       decimal.Decimal `json:"clicks"`
	Conversions  decimal.Decimal `json:"conversions"`
}

// Key returns the record the observation merges into.
func (a AggregatedData) Key() RecordKey {
	return RecordKey{Date: a.Date, CampaignID: a.CampaignID, Platform: a.Platform}
}

// SourceKind returns the parsed source tag.
func (a AggregatedData) SourceKind() Source {
	return ParseSource(a.Source)
}

// Count returns the raw counter reported for metric m.
func (a AggregatedData) Count(m Metric) decimal.Decimal {
	switch m {
	case Impressions:
		return a.Impressions
	case Clicks:
		return a.Clicks
	case Conversions:
		return a.Conversions
	default:
		return decimal.Zero
	}
}
