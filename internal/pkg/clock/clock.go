package clock

import "time"

// Clock supplies "now" for validity checks. Implementations report time in the
// hotel's location so calendar-date comparisons follow the hotel's day boundary.
type Clock interface {
	Now() time.Time
}

type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

type FixedClock struct {
	currentTime time.Time
}

func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{currentTime: t}
}

func (c *FixedClock) Now() time.Time {
	return c.currentTime
}

func (c *FixedClock) Set(t time.Time) {
	c.currentTime = t
}
