package metrics

import (
	"context"
	"time"

	"encore.dev/rlog"
)

// safeAsync runs fn in a goroutine detached from the request context, with a
// timeout and error logging. Tests swap it for a synchronous runner.
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}
