// Package biztime centralizes time handling. Everything is stored and
// transported in UTC; persistence uses unix milliseconds.
package biztime

import (
	"sync"
	"time"
)

var (
	clockMu sync.RWMutex
	clock   = time.Now
)

// NowUTC returns current time in UTC, truncated to milliseconds so a value
// survives a round trip through storage unchanged.
func NowUTC() time.Time {
	clockMu.RLock()
	now := clock
	clockMu.RUnlock()
	return now().UTC().Truncate(time.Millisecond)
}

// SetClock replaces the time source and returns a func restoring the
// previous one. Intended for tests.
func SetClock(fn func() time.Time) (restore func()) {
	clockMu.Lock()
	prev := clock
	clock = fn
	clockMu.Unlock()
	return func() {
		clockMu.Lock()
		clock = prev
		clockMu.Unlock()
	}
}

// ToMillis converts t to unix milliseconds.
func ToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

// FromMillis converts unix milliseconds to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// ToMillisPtr converts an optional time.
func ToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

// FromMillisPtr converts optional unix milliseconds.
func FromMillisPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := FromMillis(*ms)
	return &t
}
