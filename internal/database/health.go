package database

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// Pinger is anything whose connectivity can be probed.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Watch pings p every interval until ctx is done. It logs when the
// dependency goes down and when it comes back, not on every tick.
func Watch(ctx context.Context, p Pinger, logger *zerolog.Logger, interval, timeout time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	healthy := true
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		pingCtx, cancel := context.WithTimeout(ctx, timeout)
		start := time.Now()
		err := p.Ping(pingCtx)
		cancel()

		switch {
		case err != nil && ctx.Err() != nil:
			return
		case err != nil && healthy:
			healthy = false
			logger.Error().Err(err).
				Dur("response_time", time.Since(start)).
				Msg("database health check failed")
		case err == nil && !healthy:
			healthy = true
			logger.Info().
				Dur("response_time", time.Since(start)).
				Msg("database health check recovered")
		}
	}
}
