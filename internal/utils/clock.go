package utils

import "time"

const DateLayout = "2006-01-02"

// Clock reports time in the training centre's local zone. Tests pin it
// with Fixed.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(loc *time.Location) Clock {
	return Clock{loc: loc, now: time.Now}
}

// Fixed returns a clock that always reads t.
func Fixed(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now()
	}
	if c.loc == nil {
		return c.now()
	}
	return c.now().In(c.loc)
}

// Today is the local calendar date, YYYY-MM-DD.
func (c Clock) Today() string {
	return c.Now().Format(DateLayout)
}
