package configs

import "time"

// Badger configures the embedded BadgerDB backend. Path is required
// unless InMemory is set. GCInterval of zero disables value log garbage
// collection.
type Badger struct {
	Path           string        `env:"PATH" envDefault:"./data/badger"`
	InMemory       bool          `env:"IN_MEMORY" envDefault:"false"`
	SyncWrites     bool          `env:"SYNC_WRITES" envDefault:"true"`
	GCInterval     time.Duration `env:"GC_INTERVAL" envDefault:"5m"`
	GCDiscardRatio float64       `env:"GC_DISCARD_RATIO" envDefault:"0.5"`
}
