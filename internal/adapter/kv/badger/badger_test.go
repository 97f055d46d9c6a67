package badger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adrecon/internal/adapter/kv"
	"adrecon/internal/adapter/kv/kvtest"
	"adrecon/internal/config/configs"
)

func TestStore(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		s, err := OpenInMemory()
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		return s
	})
}

func TestOpenOnDisk(t *testing.T) {
	cfg := configs.Badger{Path: t.TempDir(), GCInterval: 0}
	s, err := Open(cfg, nil)
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(configs.Badger{}, nil)
	assert.Error(t, err)
}
