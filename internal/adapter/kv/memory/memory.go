// Package memory implements kv.Store on a map guarded by a RWMutex.
// Update transactions are serialised; views run concurrently.
package memory

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"adrecon/internal/adapter/kv"
)

// ErrClosed is returned by every operation after Close.
var ErrClosed = errors.New("memory store is closed")

// Store is an in-process kv.Store. The zero value is not usable; call New.
type Store struct {
	mu     sync.RWMutex
	data   map[string][]byte
	closed bool
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) View(ctx context.Context, fn func(r kv.Reader) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return ErrClosed
	}
	return fn(&txn{base: s.data})
}

// Update buffers the writes of fn and applies them only when fn succeeds.
func (s *Store) Update(ctx context.Context, fn func(t kv.Txn) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	t := &txn{base: s.data, pending: make(map[string][]byte)}
	if err := fn(t); err != nil {
		return err
	}
	for k, v := range t.pending {
		if v == nil {
			delete(s.data, k)
		} else {
			s.data[k] = v
		}
	}
	return nil
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// txn overlays pending writes on the committed map. A nil pending value
// marks a deletion.
type txn struct {
	base    map[string][]byte
	pending map[string][]byte
}

func (t *txn) lookup(k string) ([]byte, bool) {
	if v, ok := t.pending[k]; ok {
		return v, v != nil
	}
	v, ok := t.base[k]
	return v, ok
}

func (t *txn) Get(key []byte) ([]byte, error) {
	v, ok := t.lookup(string(key))
	if !ok {
		return nil, kv.ErrKeyNotFound
	}
	return bytes.Clone(v), nil
}

func (t *txn) Has(key []byte) (bool, error) {
	_, ok := t.lookup(string(key))
	return ok, nil
}

func (t *txn) ScanPrefix(prefix []byte, fn func(key, value []byte) error) error {
	for _, k := range t.keys(string(prefix)) {
		v, ok := t.lookup(k)
		if !ok {
			continue
		}
		if err := fn([]byte(k), bytes.Clone(v)); err != nil {
			return err
		}
	}
	return nil
}

func (t *txn) Set(key, value []byte) error {
	t.pending[string(key)] = append([]byte{}, value...)
	return nil
}

func (t *txn) Delete(key []byte) error {
	t.pending[string(key)] = nil
	return nil
}

func (t *txn) DeletePrefix(prefix []byte) error {
	for _, k := range t.keys(string(prefix)) {
		t.pending[k] = nil
	}
	return nil
}

// keys returns the sorted union of committed and pending keys with prefix.
func (t *txn) keys(prefix string) []string {
	var keys []string
	for k := range t.base {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	for k := range t.pending {
		if _, ok := t.base[k]; !ok && strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}
