package postgres

import (
	"context"
	"net/url"
	"os"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"adrecon/internal/config/configs"
	"adrecon/internal/core/domain"
	"adrecon/internal/db"
)

// PostgresSuite runs against the database in ADRECON_TEST_POSTGRES and is
// skipped when it is unset. Tables are truncated before every test.
type PostgresSuite struct {
	suite.Suite
	ctx   context.Context
	pool  *pgxpool.Pool
	recon *ReconciliationRepository
	pop   *ProofOfPlayRepository
}

func TestPostgresSuite(t *testing.T) {
	if os.Getenv("ADRECON_TEST_POSTGRES") == "" {
		t.Skip("ADRECON_TEST_POSTGRES not set")
	}
	suite.Run(t, new(PostgresSuite))
}

func (s *PostgresSuite) SetupSuite() {
	raw := os.Getenv("ADRECON_TEST_POSTGRES")
	addr, err := url.Parse(raw)
	s.Require().NoError(err)
	s.Require().NoError(db.Migrate(raw))

	s.ctx = context.Background()
	s.pool, err = db.NewPostgresPool(s.ctx, configs.Postgres{Addr: *addr})
	s.Require().NoError(err)
	s.recon = NewReconciliationRepository(s.pool)
	s.pop = NewProofOfPlayRepository(s.pool)
}

func (s *PostgresSuite) TearDownSuite() {
	s.pool.Close()
}

func (s *PostgresSuite) SetupTest() {
	_, err := s.pool.Exec(s.ctx, `TRUNCATE campaigns, reconciled_data, reconciled_date_campaigns,
        reconciled_campaign_dates, orders, billboards, verified_spots`)
	s.Require().NoError(err)
}

func (s *PostgresSuite) TestCampaignRoundTrip() {
	missing, err := s.recon.GetCampaign(s.ctx, "c1")
	s.Require().NoError(err)
	s.Nil(missing)

	largest, err := decimal.NewFromString("340282366920938463463374607431768211455")
	s.Require().NoError(err)
	c := domain.Campaign{
		Name:                    "Coca Cola",
		TotalBudget:             largest,
		Platforms:               []string{"Facebook", "Google"},
		ReconciliationThreshold: 15,
		Decimals:                6,
		Version:                 2,
		CPC:                     domain.Pricing{Applies: true, Value: decimal.NewFromInt(700_000)},
	}
	s.Require().NoError(s.recon.SaveCampaign(s.ctx, "c1", c))
	c.Name = "Sprite"
	s.Require().NoError(s.recon.SaveCampaign(s.ctx, "c1", c))

	got, err := s.recon.GetCampaign(s.ctx, "c1")
	s.Require().NoError(err)
	s.True(c.Equal(*got), "got %+v", got)
}

func (s *PostgresSuite) TestUpdateReconciledData() {
	key := domain.RecordKey{Date: "20240101", CampaignID: "c1", Platform: "Facebook"}

	err := s.recon.UpdateReconciledData(s.ctx, key, func(current *domain.ReconciledData) (*domain.ReconciledData, error) {
		s.Nil(current)
		return nil, nil
	})
	s.Require().NoError(err)
	rec, err := s.recon.GetReconciledData(s.ctx, key)
	s.Require().NoError(err)
	s.Nil(rec, "nothing written when fn declines")

	err = s.recon.UpdateReconciledData(s.ctx, key, func(current *domain.ReconciledData) (*domain.ReconciledData, error) {
		s.Nil(current)
		return &domain.ReconciledData{
			AmountSpent: decimal.NewFromInt(70_000_000),
			Clicks:      domain.Kpis{ZDMP: decimal.NewFromInt(100), FinalCount: decimal.NewFromInt(100)},
		}, nil
	})
	s.Require().NoError(err)

	rec, err = s.recon.GetReconciledData(s.ctx, key)
	s.Require().NoError(err)
	s.Require().NotNil(rec)
	s.Equal("70000000", rec.AmountSpent.String())
	s.Equal("100", rec.Clicks.FinalCount.String())

	campaigns, err := s.recon.ListCampaignsByDate(s.ctx, "20240101")
	s.Require().NoError(err)
	s.Equal([]string{"c1"}, campaigns)
	dates, err := s.recon.ListDatesByCampaign(s.ctx, "c1")
	s.Require().NoError(err)
	s.Equal([]string{"20240101"}, dates)
}

func (s *PostgresSuite) TestConcurrentSpotUpdates() {
	key := domain.SpotKey{OrderID: "o1", Date: "20240101", BillboardID: "b1"}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := s.pop.UpdateVerifiedSpot(s.ctx, key, func(current domain.VerifiedSpot) (*domain.VerifiedSpot, error) {
				current.VerifiedAudience += 10
				return &current, nil
			})
			s.NoError(err)
		}()
	}
	wg.Wait()

	spot, err := s.pop.GetVerifiedSpot(s.ctx, key)
	s.Require().NoError(err)
	s.Require().NotNil(spot)
	s.Equal(uint32(200), spot.VerifiedAudience)
}

func (s *PostgresSuite) TestSaveOrderReplacesInventory() {
	order := domain.Order{StartDate: 1, EndDate: 10, CreativeList: []string{"cr1"}}
	s.Require().NoError(s.pop.SaveOrder(s.ctx, "o1", order, []domain.Billboard{{ID: "b1", SpotsPerHour: 4}, {ID: "b2"}}))
	s.Require().NoError(s.pop.SaveOrder(s.ctx, "o1", order, []domain.Billboard{{ID: "b2", SpotDuration: 30}}))

	gone, err := s.pop.GetBillboard(s.ctx, "o1", "b1")
	s.Require().NoError(err)
	s.Nil(gone)
	b, err := s.pop.GetBillboard(s.ctx, "o1", "b2")
	s.Require().NoError(err)
	s.Require().NotNil(b)
	s.Equal(uint32(30), b.SpotDuration)

	got, err := s.pop.GetOrder(s.ctx, "o1")
	s.Require().NoError(err)
	s.Equal(order, *got)
}
