package service

import "time"

// ThrottleDecision is the outcome of the per-device cool-down gate.
type ThrottleDecision struct {
	Allowed bool
	Wait    time.Duration
}

// DecideThrottle answers whether a device may submit at `now` given its last
// successful submission. Pure: advancing `last` only after a fully successful
// persist is the caller's responsibility, so failed attempts stay retryable.
func DecideThrottle(now, last time.Time, window time.Duration) ThrottleDecision {
	if last.IsZero() {
		return ThrottleDecision{Allowed: true}
	}
	elapsed := now.Sub(last)
	if elapsed >= window {
		return ThrottleDecision{Allowed: true}
	}
	return ThrottleDecision{Wait: window - elapsed}
}
