package clock

import "time"

// Clock abstracts wall time so reservation expiry can be tested with a
// frozen clock.
type Clock interface {
	Now() time.Time
}

type RealClock struct{}

func NewRealClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

// FrozenClock stands still until told otherwise.
type FrozenClock struct {
	current time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{current: t}
}

func (c *FrozenClock) Now() time.Time {
	return c.current
}

func (c *FrozenClock) Set(t time.Time) {
	c.current = t
}

func (c *FrozenClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
