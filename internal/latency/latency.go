// Package latency simulates the network delay a real inventory lookup would
// have. The flow has no backend I/O, but the pages still show loaders while a
// "search" runs; this is that wait, made cancellable so an abandoned request
// never applies a late state mutation.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first. A zero or
// negative d returns immediately.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
