package redis

import "time"

// Config describes the Redis connection. An empty ConnectionURL means Redis
// is not configured; callers fall back to local storage.
type Config struct {
	ConnectionURL  string        `env:"REDIS_URL"`                              // Format "redis://:password@localhost:6379/0"
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`    // Connection attempts before giving up
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"2s"`   // Delay between attempts
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"10s"` // Overall budget for Connect
}

// Configured reports whether a connection URL is present.
func (c Config) Configured() bool {
	return c.ConnectionURL != ""
}
