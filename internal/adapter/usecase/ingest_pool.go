package usecase

import (
	"context"
	"errors"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"adrecon/internal/core/domain"
	"adrecon/internal/core/port"
)

// ErrPoolClosed is returned by Enqueue after Shutdown.
var ErrPoolClosed = errors.New("ingest pool is shut down")

var (
	ingestQueued = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "adrecon_ingest_queued_observations",
		Help: "Observations waiting in the ingest pool.",
	})
	ingestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "adrecon_ingest_duration_seconds",
		Help:    "Time spent processing one queued observation.",
		Buckets: prometheus.DefBuckets,
	})
)

// IngestPool processes observations asynchronously on a fixed set of
// workers. Observations are sharded by record key, so all observations of
// one record are processed by one worker in arrival order while different
// records proceed in parallel.
type IngestPool struct {
	svc     port.ReconciliationUseCase
	logger  *slog.Logger
	queues  []chan domain.AggregatedData
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	wg     sync.WaitGroup
}

// NewIngestPool starts workers goroutines, each with a queue of queueSize.
func NewIngestPool(svc port.ReconciliationUseCase, workers, queueSize int, logger *slog.Logger) *IngestPool {
	if workers < 1 {
		workers = 1
	}
	if queueSize < 0 {
		queueSize = 0
	}
	p := &IngestPool{
		svc:     svc,
		logger:  logger,
		queues:  make([]chan domain.AggregatedData, workers),
		timeout: 5 * time.Second,
	}
	for i := range p.queues {
		p.queues[i] = make(chan domain.AggregatedData, queueSize)
		p.wg.Add(1)
		go p.loop(p.queues[i])
	}
	return p
}

// Enqueue queues obs on the worker owning its record. It blocks while that
// queue is full, until ctx is done.
func (p *IngestPool) Enqueue(ctx context.Context, obs domain.AggregatedData) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolClosed
	}
	// counted before the send so a fast worker never drives the gauge negative
	ingestQueued.Inc()
	select {
	case p.queues[p.shard(obs.Key())] <- obs:
		return nil
	case <-ctx.Done():
		ingestQueued.Dec()
		return ctx.Err()
	}
}

// Shutdown stops accepting observations and waits until every queued one
// has been processed.
func (p *IngestPool) Shutdown() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	for _, q := range p.queues {
		close(q)
	}
	p.mu.Unlock()

	p.logger.Info("ingest pool draining")
	p.wg.Wait()
	p.logger.Info("ingest pool stopped")
}

func (p *IngestPool) shard(key domain.RecordKey) int {
	h := fnv.New32a()
	for _, part := range []string{key.Date, key.CampaignID, key.Platform} {
		_, _ = h.Write([]byte(part))
		_, _ = h.Write([]byte{0})
	}
	return int(h.Sum32() % uint32(len(p.queues)))
}

func (p *IngestPool) loop(queue <-chan domain.AggregatedData) {
	defer p.wg.Done()
	for obs := range queue {
		ingestQueued.Dec()
		p.process(obs)
	}
}

func (p *IngestPool) process(obs domain.AggregatedData) {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	start := time.Now()
	outcome, err := p.svc.SetAggregatedData(ctx, obs)
	ingestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		p.logger.Error("queued observation failed",
			slog.String("key", obs.Key().String()),
			slog.Any("error", err))
		return
	}
	if outcome.Failed {
		p.logger.Debug("queued observation rejected",
			slog.String("key", obs.Key().String()),
			slog.String("code", string(outcome.Code)))
	}
}
