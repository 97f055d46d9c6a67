package db

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

var seedPlatforms = []string{"Facebook", "Google", "TikTok"}

// Seed loads demo campaigns, observations and a proof-of-play order
// through the usecases, so it works against every storage backend.
// Observations go through validation like any other; rejected ones are
// counted in the returned total but do not fail the seed.
func Seed(ctx context.Context, recon port.ReconciliationUseCase, pop port.ProofOfPlayUseCase) (rejected int, err error) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	day := time.Now().UTC().Truncate(24 * time.Hour)

	// create campaigns
	for i := 1; i <= 5; i++ {
		id := fmt.Sprintf("CMP_%03d", i)
		campaign := domain.Campaign{
			Name:                    fmt.Sprintf("Campaign %d", i),
			TotalBudget:             decimal.NewFromInt(5_000_000_000), // 5000.000000
			Currency:                "SGD",
			StartDate:               day.AddDate(0, 0, -3).Format("20060102"),
			EndDate:                 day.AddDate(0, 1, 0).Format("20060102"),
			Platforms:               seedPlatforms[:1+i%len(seedPlatforms)],
			Advertiser:              fmt.Sprintf("Advertiser %d", i),
			Brand:                   fmt.Sprintf("Brand %d", i),
			ReconciliationThreshold: 15,
			Decimals:                6,
			Version:                 1,
			CPC:                     domain.Pricing{Applies: i%2 == 1, Value: decimal.NewFromInt(700_000)},
			CPM:                     domain.Pricing{Applies: i%2 == 0, Value: decimal.NewFromInt(2_000_000)},
			CPL:                     domain.Pricing{Applies: i%3 == 0, Value: decimal.NewFromInt(9_000_000)},
		}
		if err = recon.SetCampaign(ctx, id, campaign); err != nil {
			return rejected, err
		}

		// cumulative reports from each source, drifting around the zdmp count
		for d := 3; d >= 1; d-- {
			date := day.AddDate(0, 0, -d).Format("20060102")
			for _, platform := range seedPlatforms {
				impressions := int64(10_000 + r.Intn(50_000))
				for _, report := range []struct {
					source string
					drift  float64
				}{{"zdmp", 1}, {platform, 0.9 + r.Float64()*0.2}, {"client", 0.8 + r.Float64()*0.4}} {
					imp := int64(float64(impressions) * report.drift)
					obs := domain.AggregatedData{
						CampaignID:   id,
						Platform:     platform,
						Date:         date,
						DateReceived: day.Format("20060102"),
						Source:       report.source,
						Impressions:  decimal.NewFromInt(imp),
						Clicks:       decimal.NewFromInt(imp / 50),
						Conversions:  decimal.NewFromInt(imp / 1000),
					}
					outcome, err := recon.SetAggregatedData(ctx, obs)
					if err != nil {
						return rejected, err
					}
					if outcome.Failed {
						rejected++
					}
				}
			}
		}
	}

	// create an order with two billboards and a day of plays
	order := domain.OrderData{
		Order: domain.Order{
			StartDate:      day.AddDate(0, 0, -7).Unix(),
			EndDate:        day.AddDate(0, 0, 7).Unix(),
			TotalSpots:     1000,
			TotalAudiences: 100_000,
			CreativeList:   []string{"CR_001", "CR_002"},
		},
		TargetInventory: []domain.Billboard{
			{ID: "BB_001", SpotDuration: 15, SpotsPerHour: 4, TotalSpots: 500, ImpMultiplierPerDay: 120},
			{ID: "BB_002", SpotDuration: 30, SpotsPerHour: 2, TotalSpots: 500, ImpMultiplierPerDay: 80},
		},
	}
	if err = pop.SetOrder(ctx, "ORD_001", order); err != nil {
		return rejected, err
	}
	for i := 0; i < 20; i++ {
		billboard := order.TargetInventory[r.Intn(len(order.TargetInventory))]
		ts := day.Add(time.Duration(r.Intn(24*60)) * time.Minute)
		session := domain.SessionData{
			OrderID:     "ORD_001",
			BillboardID: billboard.ID,
			CreativeID:  order.CreativeList[r.Intn(len(order.CreativeList))],
			Timestamp:   ts.Unix(),
			Date:        ts.Format("20060102"),
			Duration:    billboard.SpotDuration + uint32(r.Intn(5)),
		}
		outcome, err := pop.SetSessionData(ctx, session)
		if err != nil {
			return rejected, err
		}
		if outcome.Failed {
			rejected++
		}
	}
	return rejected, nil
}
