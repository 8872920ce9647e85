package retry

import (
	"fmt"
	"testing"
	"time"
)

func TestCircuitBreaker_NormalOperation(t *testing.T) {
	cb := NewCircuitBreaker(0, 0)

	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cb.CurrentState() != StateClosed {
		t.Errorf("expected closed, got %s", cb.CurrentState())
	}
	if cb.MaxFailures != 3 || cb.ResetTimeout != 30*time.Second {
		t.Errorf("defaults = %d/%v", cb.MaxFailures, cb.ResetTimeout)
	}
}

func TestCircuitBreaker_OpensAfterThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Second)

	for i := 0; i < 3; i++ {
		cb.Execute(func() error { return fmt.Errorf("disk full") }) //nolint:errcheck
	}

	if cb.CurrentState() != StateOpen {
		t.Errorf("expected open after 3 failures, got %s", cb.CurrentState())
	}
	if cb.Failures() != 3 {
		t.Errorf("expected 3 failures, got %d", cb.Failures())
	}
}

func TestCircuitBreaker_RejectsWhenOpen(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Hour)
	cb.Execute(func() error { return fmt.Errorf("fail") }) //nolint:errcheck

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})

	if err != ErrCircuitOpen {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if called {
		t.Error("fn should not be called when circuit is open")
	}
}

func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker(1, time.Minute)
	clock := time.Unix(1000, 0)
	cb.now = func() time.Time { return clock }

	cb.Execute(func() error { return fmt.Errorf("fail") }) //nolint:errcheck
	if cb.CurrentState() != StateOpen {
		t.Fatal("expected open")
	}

	clock = clock.Add(2 * time.Minute)
	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("probe: %v", err)
	}
	if cb.CurrentState() != StateClosed || cb.Failures() != 0 {
		t.Errorf("after successful probe: %s, %d failures", cb.CurrentState(), cb.Failures())
	}
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(5, time.Minute)
	clock := time.Unix(1000, 0)
	cb.now = func() time.Time { return clock }

	for i := 0; i < 5; i++ {
		cb.Execute(func() error { return fmt.Errorf("fail") }) //nolint:errcheck
	}
	clock = clock.Add(2 * time.Minute)
	cb.Execute(func() error { return fmt.Errorf("still failing") }) //nolint:errcheck

	if cb.CurrentState() != StateOpen {
		t.Errorf("failed probe should reopen, got %s", cb.CurrentState())
	}
}

func TestState_String(t *testing.T) {
	for s, want := range map[State]string{
		StateClosed:   "closed",
		StateOpen:     "open",
		StateHalfOpen: "half-open",
		State(9):      "unknown",
	} {
		if s.String() != want {
			t.Errorf("%d.String() = %q, want %q", s, s.String(), want)
		}
	}
}
