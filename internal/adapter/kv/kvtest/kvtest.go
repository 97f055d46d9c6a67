// Package kvtest holds the behaviour every kv.Store implementation must
// show, run by the tests of each backend.
package kvtest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrecon/internal/adapter/kv"
)

// Run exercises the store returned by open. open is called once per
// subtest and must return an empty store.
func Run(t *testing.T, open func(t *testing.T) kv.Store) {
	t.Run("SetGetHas", func(t *testing.T) { testSetGetHas(t, open(t)) })
	t.Run("FailedUpdateWritesNothing", func(t *testing.T) { testFailedUpdate(t, open(t)) })
	t.Run("ReadYourWrites", func(t *testing.T) { testReadYourWrites(t, open(t)) })
	t.Run("ScanAndDeletePrefix", func(t *testing.T) { testPrefix(t, open(t)) })
	t.Run("ConcurrentIncrements", func(t *testing.T) { testConcurrentIncrements(t, open(t)) })
}

func set(t *testing.T, s kv.Store, key []byte, value string) {
	t.Helper()
	require.NoError(t, s.Update(context.Background(), func(txn kv.Txn) error {
		return txn.Set(key, []byte(value))
	}))
}

func get(t *testing.T, s kv.Store, key []byte) ([]byte, error) {
	t.Helper()
	var value []byte
	err := s.View(context.Background(), func(r kv.Reader) error {
		var err error
		value, err = r.Get(key)
		return err
	})
	return value, err
}

func testSetGetHas(t *testing.T, s kv.Store) {
	key := kv.Key("campaign", "c1")
	_, err := get(t, s, key)
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)

	set(t, s, key, "v1")
	set(t, s, key, "v2")

	value, err := get(t, s, key)
	require.NoError(t, err)
	assert.Equal(t, "v2", string(value))

	require.NoError(t, s.View(context.Background(), func(r kv.Reader) error {
		ok, err := r.Has(key)
		assert.True(t, ok)
		ok, _ = r.Has(kv.Key("campaign", "c2"))
		assert.False(t, ok)
		return err
	}))
}

func testFailedUpdate(t *testing.T, s kv.Store) {
	key := kv.Key("campaign", "c1")
	set(t, s, key, "kept")

	boom := errors.New("boom")
	err := s.Update(context.Background(), func(txn kv.Txn) error {
		if err := txn.Set(key, []byte("lost")); err != nil {
			return err
		}
		if err := txn.Set(kv.Key("campaign", "c2"), []byte("lost")); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	value, err := get(t, s, key)
	require.NoError(t, err)
	assert.Equal(t, "kept", string(value))
	_, err = get(t, s, kv.Key("campaign", "c2"))
	assert.ErrorIs(t, err, kv.ErrKeyNotFound)
}

func testReadYourWrites(t *testing.T, s kv.Store) {
	key := kv.Key("campaign", "c1")
	require.NoError(t, s.Update(context.Background(), func(txn kv.Txn) error {
		require.NoError(t, txn.Set(key, []byte("v")))
		value, err := txn.Get(key)
		require.NoError(t, err)
		assert.Equal(t, "v", string(value))

		require.NoError(t, txn.Delete(key))
		_, err = txn.Get(key)
		assert.ErrorIs(t, err, kv.ErrKeyNotFound)
		return nil
	}))
}

func testPrefix(t *testing.T, s kv.Store) {
	set(t, s, kv.Key("billboard", "o1", "b1"), "1")
	set(t, s, kv.Key("billboard", "o1", "b2"), "2")
	set(t, s, kv.Key("billboard", "o10", "b1"), "3")

	scan := func() []string {
		var seen []string
		require.NoError(t, s.View(context.Background(), func(r kv.Reader) error {
			return r.ScanPrefix(kv.Key("billboard", "o1"), func(key, value []byte) error {
				seen = append(seen, string(value))
				return nil
			})
		}))
		return seen
	}
	assert.ElementsMatch(t, []string{"1", "2"}, scan())

	require.NoError(t, s.Update(context.Background(), func(txn kv.Txn) error {
		if err := txn.DeletePrefix(kv.Key("billboard", "o1")); err != nil {
			return err
		}
		return txn.Set(kv.Key("billboard", "o1", "b3"), []byte("4"))
	}))
	assert.Equal(t, []string{"4"}, scan())

	value, err := get(t, s, kv.Key("billboard", "o10", "b1"))
	require.NoError(t, err)
	assert.Equal(t, "3", string(value))
}

func testConcurrentIncrements(t *testing.T, s kv.Store) {
	key := kv.Key("counter")
	const workers, perWorker = 4, 25

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				err := s.Update(context.Background(), func(txn kv.Txn) error {
					n := 0
					raw, err := txn.Get(key)
					if err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
						return err
					}
					if err == nil {
						if _, err = fmt.Sscan(string(raw), &n); err != nil {
							return err
						}
					}
					return txn.Set(key, []byte(fmt.Sprint(n+1)))
				})
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	value, err := get(t, s, key)
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprint(workers*perWorker), string(value))
}
