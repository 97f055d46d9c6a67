package configs

import "fmt"

// Supported storage backends.
const (
	BackendMemory   = "memory"
	BackendBadger   = "badger"
	BackendPostgres = "postgres"
)

// Store selects the repository backend.
type Store struct {
	Backend string `env:"BACKEND" envDefault:"badger"`
}

// Validate rejects unknown backends.
func (c Store) Validate() error {
	switch c.Backend {
	case BackendMemory, BackendBadger, BackendPostgres:
		return nil
	default:
		return fmt.Errorf("unknown store backend %q", c.Backend)
	}
}
