// Package civil implements broken-down calendar time and its normalization.
//
// A BrokenDownTime stores its year as an offset from EpochBase and its month
// as 0-11, matching the layout the rest of the application edits field by
// field. Fields may be set out of range; Normalize carries and borrows them
// into a canonical proleptic Gregorian date and recomputes the weekday.
package civil

import (
	"errors"
	"fmt"
	"time"
)

// EpochBase is the calendar year that a zero Year offset refers to.
const EpochBase = 1900

// Supported year offsets. MaxYear is the last full year before a signed
// 32-bit timestamp overflows, which bounds both calendar browsing and commits.
const (
	MinYear = 0
	MaxYear = 2037 - EpochBase
)

var (
	// ErrUnrepresentable indicates a time outside the supported year range.
	ErrUnrepresentable = errors.New("time cannot be represented")
)

// Timestamp is an absolute point in time in seconds since the Unix epoch.
type Timestamp int64

// BrokenDownTime is a calendar date and time split into fields.
type BrokenDownTime struct {
	Year    int // Years since EpochBase
	Month   int // 0-11
	Day     int // 1-31
	Hour    int // 0-23
	Minute  int // 0-59
	Second  int // 0-60
	Weekday int // 0-6, Sunday=0; derived by Normalize
}

// Normalize returns b with every field carried or borrowed into range and
// Weekday recomputed.
//
// Arithmetic is done in UTC so that a one-hour step never lands in a
// daylight-saving gap.
func (b BrokenDownTime) Normalize() BrokenDownTime {
	return FromTime(b.date(time.UTC))
}

// CalendarYear returns the four-digit year.
func (b BrokenDownTime) CalendarYear() int {
	return b.Year + EpochBase
}

// String formats b as YYYY-MM-DD hh:mm:ss without normalizing it.
func (b BrokenDownTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		b.CalendarYear(), b.Month+1, b.Day, b.Hour, b.Minute, b.Second)
}

// In interprets b as a wall-clock time in loc.
func (b BrokenDownTime) In(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return b.date(loc)
}

func (b BrokenDownTime) date(loc *time.Location) time.Time {
	return time.Date(b.CalendarYear(), time.Month(b.Month+1), b.Day,
		b.Hour, b.Minute, b.Second, 0, loc)
}

// FromTime splits t into its wall-clock fields in t's location.
func FromTime(t time.Time) BrokenDownTime {
	return BrokenDownTime{
		Year:    t.Year() - EpochBase,
		Month:   int(t.Month()) - 1,
		Day:     t.Day(),
		Hour:    t.Hour(),
		Minute:  t.Minute(),
		Second:  t.Second(),
		Weekday: int(t.Weekday()),
	}
}

// InRange reports whether a normalized year offset lies inside the supported range.
func InRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}

// ToAbsolute converts b, interpreted in loc, to a Timestamp.
// It fails with ErrUnrepresentable when the normalized year falls outside
// [MinYear, MaxYear].
func ToAbsolute(b BrokenDownTime, loc *time.Location) (Timestamp, error) {
	n := b.Normalize()
	if !InRange(n.Year) {
		return 0, fmt.Errorf("%w: year %d", ErrUnrepresentable, n.CalendarYear())
	}
	return Timestamp(n.In(loc).Unix()), nil
}

// Time converts ts to a time.Time in loc.
func (ts Timestamp) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	return time.Unix(int64(ts), 0).In(loc)
}
