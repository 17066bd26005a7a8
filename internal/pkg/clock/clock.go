package clock

import "time"

// Clock supplies the current civil date and time-of-day in one fixed named
// time zone, so attendance and leave date math is independent of server
// locale. Inject a Fixed clock in tests.
type Clock interface {
	// Now returns the current instant in the clock's zone.
	Now() time.Time

	// Today returns the current civil date: midnight in the clock's zone.
	Today() time.Time

	Location() *time.Location
}

type zoneClock struct {
	loc *time.Location
}

// NewZoneClock returns a Clock pinned to the named IANA zone.
func NewZoneClock(zone string) (Clock, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, err
	}
	return &zoneClock{loc: loc}, nil
}

func (c *zoneClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *zoneClock) Today() time.Time {
	return Midnight(c.Now())
}

func (c *zoneClock) Location() *time.Location {
	return c.loc
}

// Fixed is a Clock frozen at a single instant, for deterministic tests.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time {
	return f.Instant
}

func (f Fixed) Today() time.Time {
	return Midnight(f.Instant)
}

func (f Fixed) Location() *time.Location {
	return f.Instant.Location()
}

// Midnight truncates t to the start of its civil day, keeping the zone.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
