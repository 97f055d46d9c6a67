// Package kv defines the generic durable map the key-value repositories are
// built on, and the composite key encoding they share.
package kv

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Get for a missing key.
var ErrKeyNotFound = errors.New("kv: key not found")

// Reader is a consistent read view of the store.
type Reader interface {
	// Get returns a copy of the value stored under key.
	Get(key []byte) ([]byte, error)
	// Has reports whether key is present.
	Has(key []byte) (bool, error)
	// ScanPrefix calls fn for every key starting with prefix, in key
	// order. Returning an error from fn stops the scan.
	ScanPrefix(prefix []byte, fn func(key, value []byte) error) error
}

// Txn is a read-write transaction.
type Txn interface {
	Reader
	Set(key, value []byte) error
	Delete(key []byte) error
	// DeletePrefix removes every key starting with prefix.
	DeletePrefix(prefix []byte) error
}

// Store is a transactional ordered key-value store. Update runs fn
// atomically: either every write of fn becomes visible or none does. An
// implementation may call fn more than once to resolve a conflict.
type Store interface {
	View(ctx context.Context, fn func(r Reader) error) error
	Update(ctx context.Context, fn func(txn Txn) error) error
	Close() error
}

// Key builds a key from a namespace and length-prefixed segments, so no
// segment content can make two keys collide. A key built from a prefix of
// the segments of another is a byte prefix of it.
func Key(namespace string, segments ...string) []byte {
	size := len(namespace) + 1
	for _, s := range segments {
		size += binary.MaxVarintLen64 + len(s)
	}
	buf := make([]byte, 0, size)
	buf = append(buf, namespace...)
	buf = append(buf, '/')
	for _, s := range segments {
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}
	return buf
}

// Segments decodes the segments of a key built by Key for namespace.
func Segments(namespace string, key []byte) ([]string, error) {
	head := len(namespace) + 1
	if len(key) < head || string(key[:len(namespace)]) != namespace || key[len(namespace)] != '/' {
		return nil, fmt.Errorf("kv: key %q is not in namespace %q", key, namespace)
	}
	rest := key[head:]
	var segments []string
	for len(rest) > 0 {
		n, read := binary.Uvarint(rest)
		if read <= 0 || uint64(len(rest)-read) < n {
			return nil, fmt.Errorf("kv: malformed key %q", key)
		}
		rest = rest[read:]
		segments = append(segments, string(rest[:n]))
		rest = rest[n:]
	}
	return segments, nil
}
