package latency

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestWaitElapses(t *testing.T) {
	start := time.Now()
	if err := Wait(context.Background(), 5*time.Millisecond); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 5*time.Millisecond {
		t.Errorf("returned after %s, want at least 5ms", elapsed)
	}
}

func TestWaitCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Wait(ctx, time.Hour)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestWaitZero(t *testing.T) {
	if err := Wait(context.Background(), 0); err != nil {
		t.Errorf("zero wait: %v", err)
	}
}

func TestUnits(t *testing.T) {
	tests := []struct {
		n    float64
		unit time.Duration
		want time.Duration
	}{
		{1.5, time.Second, 1500 * time.Millisecond},
		{2, time.Second, 2 * time.Second},
		{5, time.Millisecond, 5 * time.Millisecond},
		{0, time.Second, 0},
	}
	for _, tt := range tests {
		if got := Units(tt.n, tt.unit); got != tt.want {
			t.Errorf("Units(%v, %s) = %s, want %s", tt.n, tt.unit, got, tt.want)
		}
	}
}
