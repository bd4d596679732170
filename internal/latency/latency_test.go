package latency_test

import (
	"context"
	"testing"
	"time"

	"github.com/jfcamacho/vuelacol/internal/latency"
)

func TestWait_Completes(t *testing.T) {
	start := time.Now()
	if err := latency.Wait(context.Background(), 20*time.Millisecond); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, want at least 20ms", elapsed)
	}
}

func TestWait_Zero(t *testing.T) {
	if err := latency.Wait(context.Background(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestWait_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- latency.Wait(ctx, time.Minute)
	}()

	cancel()

	select {
	case err := <-done:
		if err != context.Canceled {
			t.Errorf("error = %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Wait did not return after cancellation")
	}
}

func TestWait_AlreadyCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := latency.Wait(ctx, time.Minute); err != context.Canceled {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}
