package clock

import "time"

// DateFormat is the canonical calendar-date layout used for due dates.
const DateFormat = "2006-01-02"

// Clock is the injectable time source. Every operation that needs the
// current date reads it exactly once through this interface.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// Real returns a Clock backed by time.Now.
func Real() Clock { return realClock{} }

type fixedClock struct{ t time.Time }

func (f fixedClock) Now() time.Time { return f.t }

// Fixed returns a Clock that always reports t. Intended for tests.
func Fixed(t time.Time) Clock { return fixedClock{t: t} }

// Today formats c.Now() as a calendar-date string.
func Today(c Clock) string { return c.Now().Format(DateFormat) }
