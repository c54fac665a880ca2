package civil

import (
	"errors"
	"time"
)

// ErrClockUnsupported indicates the host clock cannot be set on this platform.
var ErrClockUnsupported = errors.New("setting the system clock is not supported")

// Clock is the source of the current time and the sink for committed edits.
type Clock interface {
	// Now returns the current wall-clock time, normalized.
	Now() BrokenDownTime

	// Apply sets the clock to ts.
	Apply(ts Timestamp) error
}

// SystemClock reads and writes the host clock.
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock creates a SystemClock in the local time zone.
func NewSystemClock() *SystemClock {
	return &SystemClock{Location: time.Local}
}

// Now returns the host wall-clock time.
func (c *SystemClock) Now() BrokenDownTime {
	return FromTime(time.Now().In(c.location()))
}

// Apply sets the host clock. It usually needs elevated privileges.
func (c *SystemClock) Apply(ts Timestamp) error {
	return setSystemTime(ts)
}

func (c *SystemClock) location() *time.Location {
	if c.Location == nil {
		return time.Local
	}
	return c.Location
}

// VirtualClock follows the host clock shifted by an offset that Apply adjusts.
// It lets the application run where the host clock cannot be changed.
type VirtualClock struct {
	Location *time.Location

	offset time.Duration
	now    func() time.Time
}

// NewVirtualClock creates a VirtualClock with no offset.
func NewVirtualClock() *VirtualClock {
	return &VirtualClock{Location: time.Local, now: time.Now}
}

// Now returns the shifted time.
func (c *VirtualClock) Now() BrokenDownTime {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return FromTime(c.wall().Add(c.offset).In(loc))
}

// Apply moves the offset so that Now reports ts.
func (c *VirtualClock) Apply(ts Timestamp) error {
	c.offset = time.Unix(int64(ts), 0).Sub(c.wall())
	return nil
}

func (c *VirtualClock) wall() time.Time {
	if c.now == nil {
		return time.Now()
	}
	return c.now()
}

// FixedClock is a Clock frozen at a single instant, for tests and dry runs.
type FixedClock struct {
	Time     BrokenDownTime
	Applied  []Timestamp
	ApplyErr error
}

// Now returns the frozen time.
func (c *FixedClock) Now() BrokenDownTime {
	return c.Time.Normalize()
}

// Apply records ts and returns ApplyErr. On success the clock moves to ts (UTC).
func (c *FixedClock) Apply(ts Timestamp) error {
	c.Applied = append(c.Applied, ts)
	if c.ApplyErr != nil {
		return c.ApplyErr
	}
	c.Time = FromTime(ts.Time(time.UTC))
	return nil
}
