package render

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/richardwooding/odclock/internal/calendar"
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/clock"
	"github.com/richardwooding/odclock/internal/settings"
)

// Hour12 maps a 0-23 hour to the 1-12 clock dial.
func Hour12(h int) int {
	h %= 12
	if h == 0 {
		return 12
	}
	return h
}

// TimeText formats hours and minutes as HH:MM, or hh:MM on the 12 hour dial.
func TimeText(t civil.BrokenDownTime, use24 bool) string {
	h := t.Hour
	if !use24 {
		h = Hour12(h)
	}
	return fmt.Sprintf("%02d:%02d", h, t.Minute)
}

// SecondsText formats the seconds suffix.
func SecondsText(t civil.BrokenDownTime) string {
	return fmt.Sprintf(":%02d", t.Second)
}

// FormatTag returns AM or PM on the 12 hour dial and 24h otherwise.
func FormatTag(t civil.BrokenDownTime, use24 bool) string {
	switch {
	case use24:
		return "24h"
	case t.Hour < 12:
		return "AM"
	default:
		return "PM"
	}
}

// MonthName returns the upper-case name of a 0-11 month.
func MonthName(month int) string {
	return strings.ToUpper(time.Month(month%12 + 1).String())
}

// DateTokens renders the day, month and year of t in the given order.
func DateTokens(t civil.BrokenDownTime, order [3]settings.DateField) [3]string {
	var out [3]string
	for i, f := range order {
		switch f {
		case settings.Day:
			out[i] = fmt.Sprintf("%02d", t.Day)
		case settings.Month:
			out[i] = MonthName(t.Month)
		case settings.Year:
			out[i] = fmt.Sprintf("%d", t.CalendarYear())
		}
	}
	return out
}

// DateText joins DateTokens with single spaces.
func DateText(t civil.BrokenDownTime, order [3]settings.DateField) string {
	tok := DateTokens(t, order)
	return strings.Join(tok[:], " ")
}

// MonthTitle names the month a calendar view shows, e.g. "OCTOBER 2026".
func MonthTitle(v calendar.View) string {
	return fmt.Sprintf("%s %d", MonthName(v.Month), v.Year+civil.EpochBase)
}

// WeekdayLabel returns a two letter weekday heading.
func WeekdayLabel(d time.Weekday) string {
	return strings.ToUpper(d.String()[:2])
}

// StatusText turns a clock status error into a short message for the screen.
func StatusText(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, civil.ErrUnrepresentable):
		return "DATE OUT OF RANGE"
	case errors.Is(err, clock.ErrClockNotSet):
		return "CLOCK NOT SET"
	}
	return strings.ToUpper(err.Error())
}
