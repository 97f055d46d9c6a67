package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrecon/internal/adapter/kv/memory"
	"adrecon/internal/adapter/kvrepo"
	"adrecon/internal/adapter/notify"
	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

func TestIngestPoolKeepsPerKeyOrder(t *testing.T) {
	ctx := context.Background()
	recorder := notify.NewRecorder(0)
	svc := NewReconciliationUseCase(kvrepo.NewReconciliationRepository(memory.New()), recorder, discardLogger())

	platforms := []string{"Facebook", "Google"}
	c := testCampaign()
	for i := 0; i < 4; i++ {
		require.NoError(t, svc.SetCampaign(ctx, fmt.Sprintf("c%d", i), c))
	}

	pool := NewIngestPool(svc, 3, 4, discardLogger())
	const totals = 40
	for v := int64(1); v <= totals; v++ {
		for i := 0; i < 4; i++ {
			for _, p := range platforms {
				obs := clicks("zdmp", v)
				obs.CampaignID = fmt.Sprintf("c%d", i)
				obs.Platform = p
				require.NoError(t, pool.Enqueue(ctx, obs))
			}
		}
	}
	pool.Shutdown()

	for _, o := range recorder.Outcomes() {
		assert.False(t, o.Failed, "observation %s processed out of order", o.Subject)
	}
	for i := 0; i < 4; i++ {
		for _, p := range platforms {
			key := domain.RecordKey{Date: "20240101", CampaignID: fmt.Sprintf("c%d", i), Platform: p}
			rec, err := svc.GetReconciledData(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, fmt.Sprint(totals), rec.Clicks.FinalCount.String())
		}
	}
}

func TestIngestPoolRejectsAfterShutdown(t *testing.T) {
	svc := NewReconciliationUseCase(kvrepo.NewReconciliationRepository(memory.New()), notify.NewRecorder(0), discardLogger())
	pool := NewIngestPool(svc, 1, 1, discardLogger())
	pool.Shutdown()
	pool.Shutdown()

	err := pool.Enqueue(context.Background(), clicks("zdmp", 1))
	assert.ErrorIs(t, err, ErrPoolClosed)
}

// blockingUseCase reports the queue gauge as seen by the worker and then
// waits for release.
type blockingUseCase struct {
	port.ReconciliationUseCase
	seen    chan float64
	release chan struct{}
}

func (b *blockingUseCase) SetAggregatedData(context.Context, domain.AggregatedData) (domain.Outcome, error) {
	b.seen <- testutil.ToFloat64(ingestQueued)
	<-b.release
	return domain.Outcome{}, nil
}

func TestIngestPoolQueueGauge(t *testing.T) {
	baseline := testutil.ToFloat64(ingestQueued)
	svc := &blockingUseCase{seen: make(chan float64, 1), release: make(chan struct{})}
	pool := NewIngestPool(svc, 1, 0, discardLogger())

	require.NoError(t, pool.Enqueue(context.Background(), clicks("zdmp", 1)))
	assert.Equal(t, baseline, <-svc.seen, "a dequeued observation is no longer counted")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := pool.Enqueue(ctx, clicks("zdmp", 2))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, baseline, testutil.ToFloat64(ingestQueued), "an abandoned send is not counted")

	close(svc.release)
	pool.Shutdown()
	assert.Equal(t, baseline, testutil.ToFloat64(ingestQueued))
}
