// Package latency simulates the response time of the mocked backends.
package latency

import (
	"context"
	"time"
)

// Wait blocks for d or until ctx is done, whichever comes first.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Units converts a number of time units into a duration.
func Units(n float64, unit time.Duration) time.Duration {
	return time.Duration(n * float64(unit))
}
