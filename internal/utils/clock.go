package utils

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

// Today returns midnight of the clock's current day in its own location.
func Today(clock Clock) time.Time {
	year, month, day := clock.Now().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, clock.Now().Location())
}
