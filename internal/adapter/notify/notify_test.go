package notify

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port/mocks"
)

func TestRecorderCapacity(t *testing.T) {
	r := NewRecorder(2)
	_, ok := r.Last()
	assert.False(t, ok)

	for _, s := range []string{"a", "b", "c"} {
		r.Notify(context.Background(), domain.Succeeded(domain.KindCampaignSet, s))
	}
	got := r.Outcomes()
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Subject)

	last, ok := r.Last()
	assert.True(t, ok)
	assert.Equal(t, "c", last.Subject)
}

func TestMultiFansOut(t *testing.T) {
	outcome := domain.Rejected(domain.KindAggregatedData, "k", domain.CodeCampaignNotFound)

	first := mocks.NewMockNotifier(t)
	first.EXPECT().Notify(mock.Anything, outcome).Once()
	second := NewRecorder(0)

	Multi{first, second}.Notify(context.Background(), outcome)

	assert.Equal(t, []domain.Outcome{outcome}, second.Outcomes())
}

func TestMetricsCountsByCode(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	ctx := context.Background()
	m.Notify(ctx, domain.Succeeded(domain.KindAggregatedData, "k"))
	m.Notify(ctx, domain.Succeeded(domain.KindAggregatedData, "k"))
	m.Notify(ctx, domain.Rejected(domain.KindAggregatedData, "k", domain.CodeNonIncrementalData))

	assert.Equal(t, 2.0, testutil.ToFloat64(m.outcomes.WithLabelValues("aggregated_data", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.outcomes.WithLabelValues("aggregated_data", "NonIncrementalData")))
}

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	l.Notify(context.Background(), domain.Succeeded(domain.KindOrderSet, "o1"))
	assert.Empty(t, buf.String(), "successes are info")

	l.Notify(context.Background(), domain.Rejected(domain.KindSessionData, "s1", domain.CodeOrderNotFound))
	assert.Contains(t, buf.String(), "code=OrderNotFound")
}
