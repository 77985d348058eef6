package app

import (
	"context"
	"time"
)

// BackgroundTimeoutContext returns a context detached from any caller and
// cancelled after the given duration.
func BackgroundTimeoutContext(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}
