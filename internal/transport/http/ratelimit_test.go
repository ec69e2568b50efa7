package http

import "testing"

func TestRateLimiterCapsEvents(t *testing.T) {
	rl := newRateLimiter(2)
	if !rl.allow() || !rl.allow() {
		t.Fatal("events under the limit should pass")
	}
	if rl.allow() {
		t.Fatal("event over the limit should be rejected")
	}
}

func TestRateLimiterZeroMeansUnlimited(t *testing.T) {
	rl := newRateLimiter(0)
	for i := 0; i < 1000; i++ {
		if !rl.allow() {
			t.Fatal("unlimited limiter must always allow")
		}
	}
}
