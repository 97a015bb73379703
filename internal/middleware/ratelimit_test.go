package middleware

import (
	"testing"
	"time"
)

func TestSlidingWindowDeniesOverBudget(t *testing.T) {
	rl := NewRateLimiter(2)
	base := time.Now()

	if _, ok := rl.allow("k", base); !ok {
		t.Fatal("first request should be admitted")
	}
	if remaining, ok := rl.allow("k", base.Add(1*time.Second)); !ok || remaining != 0 {
		t.Fatalf("second request should be admitted with 0 remaining, got ok=%v remaining=%d", ok, remaining)
	}
	if _, ok := rl.allow("k", base.Add(59*time.Second)); ok {
		t.Error("third request inside the window should be denied")
	}
}

func TestSlidingWindowSlidesInsteadOfResetting(t *testing.T) {
	rl := NewRateLimiter(2)
	base := time.Now()

	rl.allow("k", base)
	rl.allow("k", base.Add(1*time.Second))

	// Just past the minute mark only the first stamp has aged out, so a
	// single slot opens up. A reset-style limiter would grant the full
	// budget again here.
	if _, ok := rl.allow("k", base.Add(61*time.Second)); !ok {
		t.Error("one slot should open once the oldest stamp expires")
	}
	if _, ok := rl.allow("k", base.Add(61*time.Second)); ok {
		t.Error("second stamp is still inside the trailing minute, request should be denied")
	}
}

func TestSlidingWindowPerCaller(t *testing.T) {
	rl := NewRateLimiter(1)
	base := time.Now()

	if _, ok := rl.allow("alice", base); !ok {
		t.Fatal("alice's first request should be admitted")
	}
	if _, ok := rl.allow("bob", base); !ok {
		t.Error("bob's budget is independent of alice's")
	}
	if _, ok := rl.allow("alice", base.Add(time.Second)); ok {
		t.Error("alice's budget is exhausted, request should be denied")
	}
}
