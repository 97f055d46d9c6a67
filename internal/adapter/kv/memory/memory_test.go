package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"adrecon/internal/adapter/kv"
	"adrecon/internal/adapter/kv/kvtest"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		return New()
	})
}

func TestClosedStore(t *testing.T) {
	s := New()
	assert.NoError(t, s.Close())

	err := s.View(context.Background(), func(r kv.Reader) error { return nil })
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := New().Update(ctx, func(txn kv.Txn) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
