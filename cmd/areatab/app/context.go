package app

import (
	"context"
	"os/signal"
	"syscall"
)

// Context returns a context cancelled on SIGINT or SIGTERM, giving
// commands a chance to shut down cleanly when the process is asked
// to stop.
func Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
