package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant.
type Fixed struct {
	t time.Time
}

func NewFixed(t time.Time) Fixed {
	return Fixed{t: t}
}

func (f Fixed) Now() time.Time {
	return f.t
}
