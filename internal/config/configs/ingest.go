package configs

// Ingest sizes the asynchronous observation pool. Observations for one
// record are always handled by the same worker.
type Ingest struct {
	Workers   int `env:"WORKERS" envDefault:"8"`
	QueueSize int `env:"QUEUE_SIZE" envDefault:"1024"`
}
