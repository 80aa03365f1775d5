// Package redis backs the gateway's session layer: a connection helper plus
// the session-ID to bearer-token store built on it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultPingTimeout = 5 * time.Second

// Options configures the gateway's Redis connection.
type Options struct {
	Addr string
	DB   int
	// PingTimeout bounds the startup connectivity check. Zero means the
	// default.
	PingTimeout time.Duration
}

// Connect opens a client and verifies the server is reachable before the
// gateway starts accepting session bindings. Readiness re-checks the same
// connection at runtime.
func Connect(ctx context.Context, opts Options) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: opts.Addr,
		DB:   opts.DB,
	})

	timeout := opts.PingTimeout
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connect %s: %w", opts.Addr, err)
	}
	return client, nil
}
