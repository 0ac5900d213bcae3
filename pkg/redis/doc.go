// Package redis connects to the Redis server that backs the shared
// credential slot. Connect verifies the connection with a ping and retries
// per the Config before giving up, so a slow-starting server does not fail
// the process immediately.
//
// Config fields are populated from environment variables via
// github.com/caarlos0/env; an empty REDIS_URL means Redis is not in play and
// callers use the encrypted file slot instead.
package redis
