package notify

import (
	"context"
	"sync"

	"adrecon/internal/core/domain"
)

// Recorder keeps the most recent outcomes in memory, oldest first.
type Recorder struct {
	mu       sync.Mutex
	capacity int
	outcomes []domain.Outcome
}

// NewRecorder keeps at most capacity outcomes; capacity <= 0 keeps all.
func NewRecorder(capacity int) *Recorder {
	return &Recorder{capacity: capacity}
}

func (r *Recorder) Notify(_ context.Context, outcome domain.Outcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes = append(r.outcomes, outcome)
	if r.capacity > 0 && len(r.outcomes) > r.capacity {
		r.outcomes = append(r.outcomes[:0], r.outcomes[len(r.outcomes)-r.capacity:]...)
	}
}

// Outcomes returns a copy of the recorded outcomes.
func (r *Recorder) Outcomes() []domain.Outcome {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Outcome(nil), r.outcomes...)
}

// Last returns the most recent outcome.
func (r *Recorder) Last() (domain.Outcome, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.outcomes) == 0 {
		return domain.Outcome{}, false
	}
	return r.outcomes[len(r.outcomes)-1], true
}
