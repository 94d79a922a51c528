// SPDX-License-Identifier: Apache-2.0

package adapter

import (
	"context"
	"sync"
)

// refreshGroup deduplicates concurrent session-refresh attempts. The
// first caller after an unauthorized response performs the refresh; every
// caller that arrives while it is in flight waits on the same call and
// shares its result, so a burst of 401s produces exactly one request to
// the refresh endpoint.
type refreshGroup struct {
	mu       sync.Mutex
	inflight *refreshCall
}

type refreshCall struct {
	done chan struct{}
	err  error
}

// do runs fn once for however many goroutines call it concurrently. Late
// arrivals block until the shared call finishes or their context ends.
func (g *refreshGroup) do(ctx context.Context, fn func(ctx context.Context) error) error {
	g.mu.Lock()
	if c := g.inflight; c != nil {
		g.mu.Unlock()
		select {
		case <-c.done:
			return c.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	c := &refreshCall{done: make(chan struct{})}
	g.inflight = c
	g.mu.Unlock()

	c.err = fn(ctx)

	g.mu.Lock()
	g.inflight = nil
	g.mu.Unlock()
	close(c.done)

	return c.err
}