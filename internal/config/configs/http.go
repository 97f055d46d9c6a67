package configs

import "time"

// HTTP defines configuration for the HTTP server. Port is the only
// setting most deployments change; the timeouts bound slow clients and
// the graceful shutdown of the serve command.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`
	// ReadHeaderTimeout limits how long a client may take to send headers.
	ReadHeaderTimeout time.Duration `env:"READ_HEADER_TIMEOUT" envDefault:"5s"`
	// ShutdownTimeout bounds in-flight requests after a termination signal.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	// RecentOutcomes is how many outcomes GET /api/v1/outcomes keeps.
	RecentOutcomes int `env:"RECENT_OUTCOMES" envDefault:"256"`
}
