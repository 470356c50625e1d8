package system

import (
	"context"
)

// RunWithContext runs operation on its own goroutine and waits for it.
//
// If ctx is already done the operation is not started. If ctx is cancelled
// while the operation runs, the operation's own context is cancelled and its
// result is still awaited, so it can stop cleanly before RunWithContext
// returns.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Buffered so the goroutine never blocks on send.
	done := make(chan error, 1)

	go func() {
		done <- operation(opCtx)
		close(done)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		cancel()
		return <-done
	}
}
