package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"adrecon/internal/adapter/kv/memory"
	"adrecon/internal/adapter/kvrepo"
	"adrecon/internal/adapter/notify"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/fixedpoint"
	"adrecon/internal/core/port"
	"adrecon/internal/core/port/mocks"
)

const campaignID = "ID_001"

func testCampaign() domain.Campaign {
	return domain.Campaign{
		Name:                    "Coca Cola",
		TotalBudget:             n(5_000_000_000),
		Currency:                "SGD",
		StartDate:               "20240101",
		EndDate:                 "20241231",
		Platforms:               []string{"Facebook", "Google"},
		Advertiser:              "Coca Cola Inc.",
		Brand:                   "Coke",
		ReconciliationThreshold: 15,
		Decimals:                6,
		Version:                 1,
		CPC:                     domain.Pricing{Applies: true, Value: n(700_000)},
		CPM:                     domain.Pricing{Applies: false, Value: n(2_000_000)},
		CPL:                     domain.Pricing{Applies: false, Value: n(9_000_000)},
	}
}

func clicks(source string, v int64) domain.AggregatedData {
	return domain.AggregatedData{
		CampaignID:   campaignID,
		Platform:     "Facebook",
		Date:         "20240101",
		DateReceived: "20240102",
		Source:       source,
		Clicks:       n(v),
	}
}

var recordKey = domain.RecordKey{Date: "20240101", CampaignID: campaignID, Platform: "Facebook"}

// ReconciliationSuite runs the usecase against the in-memory store.
type ReconciliationSuite struct {
	suite.Suite
	ctx      context.Context
	svc      *ReconciliationUseCase
	recorder *notify.Recorder
}

func TestReconciliationSuite(t *testing.T) {
	suite.Run(t, new(ReconciliationSuite))
}

func (s *ReconciliationSuite) SetupTest() {
	s.ctx = context.Background()
	s.recorder = notify.NewRecorder(0)
	repo := kvrepo.NewReconciliationRepository(memory.New())
	s.svc = NewReconciliationUseCase(repo, s.recorder, discardLogger())
	s.Require().NoError(s.svc.SetCampaign(s.ctx, campaignID, testCampaign()))
}

func (s *ReconciliationSuite) submit(obs domain.AggregatedData) domain.Outcome {
	outcome, err := s.svc.SetAggregatedData(s.ctx, obs)
	s.Require().NoError(err)
	return outcome
}

func (s *ReconciliationSuite) record() *domain.ReconciledData {
	rec, err := s.svc.GetReconciledData(s.ctx, recordKey)
	s.Require().NoError(err)
	return rec
}

func (s *ReconciliationSuite) TestSingleSource() {
	outcome := s.submit(clicks("zdmp", 100))
	s.False(outcome.Failed)
	s.NotEmpty(outcome.ID)

	rec := s.record()
	s.Equal("100", rec.Clicks.FinalCount.String())
	s.Equal("70000000", rec.Clicks.Cost.String())
	s.Equal("1400000", rec.Clicks.BudgetUtilisation.String())
	s.Equal("70000000", rec.AmountSpent.String())
	s.Equal("1400000", rec.BudgetUtilisation.String())
}

func (s *ReconciliationSuite) TestPlatformOutsideBandThenClientOnBoundary() {
	s.submit(clicks("zdmp", 100))
	s.submit(clicks("platform", 120))
	s.Equal("100", s.record().Clicks.FinalCount.String(), "zdmp wins")

	s.submit(clicks("client", 85))
	rec := s.record()
	s.Equal("85", rec.Clicks.FinalCount.String(), "client on the inclusive lower bound wins")
	s.Equal("59500000", rec.AmountSpent.String())
	s.Equal("1190000", rec.BudgetUtilisation.String())
}

func (s *ReconciliationSuite) TestPlatformInsideBand() {
	s.submit(clicks("zdmp", 100))
	s.submit(clicks("dv360", 108))

	rec := s.record()
	s.Equal("108", rec.Clicks.Platform.String(), "unknown tags report as platform")
	s.Equal("108", rec.Clicks.FinalCount.String())
}

func (s *ReconciliationSuite) TestMonotonicityRejection() {
	first := clicks("zdmp", 100)
	first.Impressions = n(1000)
	s.submit(first)
	before := s.record()

	lower := clicks("zdmp", 99)
	lower.Impressions = n(5000)
	outcome := s.submit(lower)
	s.True(outcome.Failed)
	s.Equal(domain.CodeNonIncrementalData, outcome.Code)
	s.True(before.Equal(*s.record()), "no partial merge")

	equal := s.submit(first)
	s.False(equal.Failed, "resending the same totals is accepted")

	other := s.submit(clicks("client", 50))
	s.False(other.Failed, "monotonicity is per source")
}

func (s *ReconciliationSuite) TestCampaignNotFound() {
	obs := clicks("zdmp", 1)
	obs.CampaignID = "missing"
	outcome := s.submit(obs)
	s.True(outcome.Failed)
	s.Equal(domain.CodeCampaignNotFound, outcome.Code)
	s.Equal("Campaign ID does not exist", outcome.Message)

	dates, err := s.svc.ListDatesByCampaign(s.ctx, "missing")
	s.Require().NoError(err)
	s.Empty(dates)
}

func (s *ReconciliationSuite) TestPlatformNotAllowed() {
	obs := clicks("zdmp", 1)
	obs.Platform = "TikTok"
	outcome := s.submit(obs)
	s.True(outcome.Failed)
	s.Equal(domain.CodePlatformNotAllowed, outcome.Code)

	_, err := s.svc.GetReconciledData(s.ctx, obs.Key())
	s.ErrorIs(err, port.ErrNotFound)
}

func (s *ReconciliationSuite) TestIndexes() {
	s.submit(clicks("zdmp", 1))

	campaigns, err := s.svc.ListCampaignsByDate(s.ctx, "20240101")
	s.Require().NoError(err)
	s.Equal([]string{campaignID}, campaigns)

	dates, err := s.svc.ListDatesByCampaign(s.ctx, campaignID)
	s.Require().NoError(err)
	s.Equal([]string{"20240101"}, dates)
}

func (s *ReconciliationSuite) TestIdempotentCampaignOverwrite() {
	latest := testCampaign()
	latest.Name = "Sprite"
	latest.Platforms = []string{"Google"}
	latest.CPC = domain.Pricing{Applies: false, Value: n(1)}
	s.Require().NoError(s.svc.SetCampaign(s.ctx, campaignID, latest))

	got, err := s.svc.GetCampaign(s.ctx, campaignID)
	s.Require().NoError(err)
	s.True(latest.Equal(*got))

	_, err = s.svc.GetCampaign(s.ctx, "missing")
	s.ErrorIs(err, port.ErrNotFound)
}

func (s *ReconciliationSuite) TestZeroSourceForcing() {
	outcome := s.submit(clicks("zdmp", 0))
	s.False(outcome.Failed)

	rec := s.record()
	s.True(rec.Clicks.FinalCount.IsZero())
	s.True(rec.Clicks.Cost.IsZero())
	s.True(rec.AmountSpent.IsZero())
}

func (s *ReconciliationSuite) TestOverflowIsHardError() {
	c := testCampaign()
	c.CPC = domain.Pricing{Applies: true, Value: fixedpoint.Max}
	s.Require().NoError(s.svc.SetCampaign(s.ctx, campaignID, c))
	notified := len(s.recorder.Outcomes())

	_, err := s.svc.SetAggregatedData(s.ctx, clicks("zdmp", 100))
	s.ErrorIs(err, fixedpoint.ErrOverflow)

	_, err = s.svc.GetReconciledData(s.ctx, recordKey)
	s.ErrorIs(err, port.ErrNotFound, "nothing written")
	s.Len(s.recorder.Outcomes(), notified, "hard errors are not outcomes")
}

func (s *ReconciliationSuite) TestOutcomesAreNotified() {
	s.submit(clicks("zdmp", 10))
	s.submit(clicks("zdmp", 5))

	got := s.recorder.Outcomes()
	s.Require().Len(got, 3)
	s.Equal(domain.KindCampaignSet, got[0].Kind)
	s.False(got[1].Failed)
	s.Equal(domain.CodeNonIncrementalData, got[2].Code)
	s.NotEqual(got[1].ID, got[2].ID)
}

// Concurrent observations for one record never lose the highest total.
func (s *ReconciliationSuite) TestConcurrentSameKey() {
	var wg sync.WaitGroup
	for i := 1; i <= 50; i++ {
		wg.Add(1)
		go func(v int64) {
			defer wg.Done()
			_, err := s.svc.SetAggregatedData(s.ctx, clicks("zdmp", v))
			s.NoError(err)
		}(int64(i))
	}
	wg.Wait()

	rec := s.record()
	s.Equal("50", rec.Clicks.ZDMP.String())
	s.Equal("50", rec.Clicks.FinalCount.String())
	s.Equal("35000000", rec.AmountSpent.String())
}

func TestSetAggregatedDataUnknownCampaignSkipsUpdate(t *testing.T) {
	repo := mocks.NewMockReconciliationRepository(t)
	notifier := mocks.NewMockNotifier(t)

	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(nil, nil)
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
			return o.Failed && o.Code == domain.CodeCampaignNotFound && o.Subject == recordKey.String()
		})).
		Once()

	svc := NewReconciliationUseCase(repo, notifier, discardLogger())
	outcome, err := svc.SetAggregatedData(context.Background(), clicks("zdmp", 1))
	require.NoError(t, err)
	assert.Equal(t, domain.CodeCampaignNotFound, outcome.Code)
}

func TestSetAggregatedDataRepositoryError(t *testing.T) {
	repo := mocks.NewMockReconciliationRepository(t)
	notifier := mocks.NewMockNotifier(t)
	boom := errors.New("connection refused")

	c := testCampaign()
	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&c, nil)
	repo.EXPECT().UpdateReconciledData(mock.Anything, recordKey, mock.Anything).Return(boom)

	svc := NewReconciliationUseCase(repo, notifier, discardLogger())
	_, err := svc.SetAggregatedData(context.Background(), clicks("zdmp", 1))
	assert.ErrorIs(t, err, boom)
}

func TestSetAggregatedDataRejectsDecreaseOnStoredRecord(t *testing.T) {
	repo := mocks.NewMockReconciliationRepository(t)
	notifier := mocks.NewMockNotifier(t)

	c := testCampaign()
	stored := domain.ReconciledData{Clicks: domain.Kpis{Platform: n(40), FinalCount: n(40)}}
	repo.EXPECT().GetCampaign(mock.Anything, campaignID).Return(&c, nil)
	repo.EXPECT().
		UpdateReconciledData(mock.Anything, recordKey, mock.Anything).
		RunAndReturn(func(_ context.Context, _ domain.RecordKey, fn port.ReconcileFunc) error {
			next, err := fn(&stored)
			assert.Nil(t, next, "nothing to persist")
			return err
		})
	notifier.EXPECT().
		Notify(mock.Anything, mock.MatchedBy(func(o domain.Outcome) bool {
			return o.Code == domain.CodeNonIncrementalData
		})).
		Once()

	svc := NewReconciliationUseCase(repo, notifier, discardLogger())
	outcome, err := svc.SetAggregatedData(context.Background(), clicks("platform", 39))
	require.NoError(t, err)
	assert.True(t, outcome.Failed)
	assert.Equal(t, "40", stored.Clicks.Platform.String(), "stored record is not mutated")
}
