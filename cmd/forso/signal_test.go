package main

// Notes:
// - notifyContext: only observable behavior is tested (cancellation via
//   stop() and parent propagation). OS signal delivery is not simulated.

import (
	"context"
	"testing"
)

func TestNotifyContext(t *testing.T) {
	t.Parallel()

	t.Run("starts not cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		defer stop()

		if ctx.Err() != nil {
			t.Fatalf("context should not be cancelled initially, got %v", ctx.Err())
		}
	})

	t.Run("stop cancels", func(t *testing.T) {
		t.Parallel()

		ctx, stop := notifyContext(context.Background())
		stop()

		if ctx.Err() == nil {
			t.Fatal("context should be cancelled after stop()")
		}
	})

	t.Run("inherits parent cancellation", func(t *testing.T) {
		t.Parallel()

		parent, cancel := context.WithCancel(context.Background())
		ctx, stop := notifyContext(parent)
		defer stop()

		cancel()

		<-ctx.Done()
		if ctx.Err() != context.Canceled {
			t.Errorf("ctx.Err() = %v, want context.Canceled", ctx.Err())
		}
	})
}
