package retry

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestBackoff_SucceedsAfterRetries(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 5}
	calls := 0

	err := b.Do(context.Background(), func(attempt int) error {
		calls++
		if attempt != calls {
			t.Errorf("attempt = %d, want %d", attempt, calls)
		}
		if calls < 3 {
			return fmt.Errorf("connection refused")
		}
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestBackoff_PermanentError(t *testing.T) {
	b := &Backoff{InitialDelay: time.Millisecond, MaxAttempts: 5}
	calls := 0

	err := b.Do(context.Background(), func(_ int) error {
		calls++
		return Permanent(fmt.Errorf("fatal"))
	})

	if err == nil || err.Error() != "fatal" {
		t.Fatalf("expected 'fatal', got %v", err)
	}
	if calls != 1 {
		t.Errorf("permanent error should stop after 1 call, got %d", calls)
	}
}

func TestBackoff_NotRetryable(t *testing.T) {
	b := &Backoff{
		InitialDelay: time.Millisecond,
		MaxAttempts:  5,
		Retryable:    func(error) bool { return false },
	}
	calls := 0
	_ = b.Do(context.Background(), func(_ int) error {
		calls++
		return fmt.Errorf("no such host")
	})
	if calls != 1 {
		t.Errorf("non-retryable error retried %d times", calls)
	}
}

func TestBackoff_MaxAttempts(t *testing.T) {
	b := &Backoff{
		InitialDelay: time.Millisecond,
		MaxDelay:     10 * time.Millisecond,
		Multiplier:   1.5,
		MaxAttempts:  3,
	}
	calls := 0

	err := b.Do(context.Background(), func(_ int) error {
		calls++
		return fmt.Errorf("always fails")
	})

	if err == nil {
		t.Fatal("expected error after max attempts")
	}
	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestBackoff_SingleAttemptReturnsRawError(t *testing.T) {
	want := fmt.Errorf("refused")
	b := DialBackoff(1)
	err := b.Do(context.Background(), func(_ int) error { return want })
	if err != want {
		t.Errorf("got %v, want the unwrapped error", err)
	}
}

func TestBackoff_OnRetry(t *testing.T) {
	var seen []int
	b := &Backoff{
		InitialDelay: time.Millisecond,
		MaxAttempts:  3,
		OnRetry: func(attempt int, err error, wait time.Duration) {
			seen = append(seen, attempt)
			if wait <= 0 {
				t.Errorf("wait = %v", wait)
			}
		},
	}
	_ = b.Do(context.Background(), func(_ int) error { return fmt.Errorf("x") })

	if len(seen) != 2 || seen[0] != 1 || seen[1] != 2 {
		t.Errorf("OnRetry attempts = %v, want [1 2]", seen)
	}
}

func TestBackoff_ContextCancelled(t *testing.T) {
	b := &Backoff{
		InitialDelay: 5 * time.Second,
		MaxAttempts:  100,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := b.Do(ctx, func(_ int) error {
		return fmt.Errorf("fail")
	})

	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if time.Since(start) > 2*time.Second {
		t.Error("cancellation did not interrupt the wait")
	}
}

func TestPermanent_Nil(t *testing.T) {
	if Permanent(nil) != nil {
		t.Error("Permanent(nil) should be nil")
	}
}

func TestIsPermanent(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"permanent", Permanent(fmt.Errorf("x")), true},
		{"not permanent", fmt.Errorf("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPermanent(tt.err); got != tt.want {
				t.Errorf("IsPermanent() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestJitter_Range(t *testing.T) {
	d := 100 * time.Millisecond
	for i := 0; i < 100; i++ {
		j := addJitter(d)
		lower := time.Duration(float64(d) * 0.74)
		upper := time.Duration(float64(d) * 1.26)
		if j < lower || j > upper {
			t.Errorf("jitter %v out of expected range [%v, %v]", j, lower, upper)
		}
	}
}
