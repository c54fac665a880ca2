// Package settings holds the display preferences shared by every mode and
// their key-per-line settings.ini persistence.
package settings

import (
	"errors"
	"fmt"
)

// ErrInvalidOrder indicates a date order that is not a permutation of
// Day, Month and Year.
var ErrInvalidOrder = errors.New("date order must contain day, month and year exactly once")

// DateField is one component of a displayed date.
type DateField int

// Date fields. The numeric values are the ones stored in settings.ini.
const (
	Day DateField = iota
	Month
	Year
)

// String returns the field name.
func (f DateField) String() string {
	switch f {
	case Day:
		return "Day"
	case Month:
		return "Month"
	case Year:
		return "Year"
	}
	return fmt.Sprintf("DateField(%d)", int(f))
}

// Settings are the user's display preferences.
type Settings struct {
	Use24Hour   bool
	DateOrder   [3]DateField
	MondayFirst bool
}

// Default returns the built-in preferences: 24-hour clock, day-month-year,
// weeks starting on Sunday.
func Default() Settings {
	return Settings{
		Use24Hour:   true,
		DateOrder:   [3]DateField{Day, Month, Year},
		MondayFirst: false,
	}
}

// Validate checks that DateOrder is a permutation of Day, Month and Year.
func (s Settings) Validate() error {
	var seen [3]bool
	for _, f := range s.DateOrder {
		if f < Day || f > Year || seen[f] {
			return fmt.Errorf("%w: %v", ErrInvalidOrder, s.DateOrder)
		}
		seen[f] = true
	}
	return nil
}

// SwapDateFields exchanges two positions of DateOrder, which keeps it a
// permutation. Out-of-range positions are ignored.
func (s *Settings) SwapDateFields(i, j int) {
	if i < 0 || i >= len(s.DateOrder) || j < 0 || j >= len(s.DateOrder) {
		return
	}
	s.DateOrder[i], s.DateOrder[j] = s.DateOrder[j], s.DateOrder[i]
}

// ToggleFormat switches between the 24-hour and 12-hour clock.
func (s *Settings) ToggleFormat() {
	s.Use24Hour = !s.Use24Hour
}

// ToggleFirstDay switches the first day of the week between Sunday and Monday.
func (s *Settings) ToggleFirstDay() {
	s.MondayFirst = !s.MondayFirst
}
