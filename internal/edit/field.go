// Package edit implements in-place editing of a time and date, one field at
// a time, with a cursor that walks a fixed ring of editable slots.
package edit

import (
	"fmt"

	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/settings"
)

// Slot is a position of the edit cursor. The three date slots take their
// meaning from the current date order.
type Slot int

// Editable slots in cursor order.
const (
	SlotHour Slot = iota
	SlotMinute
	SlotSecond
	SlotFormat
	SlotDate1
	SlotDate2
	SlotDate3

	slotCount = 7
)

// String returns the slot name.
func (s Slot) String() string {
	switch s {
	case SlotHour:
		return "Hour"
	case SlotMinute:
		return "Minute"
	case SlotSecond:
		return "Second"
	case SlotFormat:
		return "Format"
	case SlotDate1, SlotDate2, SlotDate3:
		return fmt.Sprintf("Date%d", int(s-SlotDate1)+1)
	}
	return fmt.Sprintf("Slot(%d)", int(s))
}

// IsDate reports whether s is one of the date slots.
func (s Slot) IsDate() bool {
	return s >= SlotDate1 && s <= SlotDate3
}

// Field is a semantic time component a slot can resolve to.
type Field int

// Fields.
const (
	FieldNone Field = iota
	FieldHour
	FieldMinute
	FieldSecond
	FieldFormat
	FieldDay
	FieldMonth
	FieldYear
)

// String returns the field name.
func (f Field) String() string {
	switch f {
	case FieldHour:
		return "Hour"
	case FieldMinute:
		return "Minute"
	case FieldSecond:
		return "Second"
	case FieldFormat:
		return "Format"
	case FieldDay:
		return "Day"
	case FieldMonth:
		return "Month"
	case FieldYear:
		return "Year"
	}
	return "None"
}

// accessor reads and writes one field of a BrokenDownTime.
type accessor struct {
	get func(t civil.BrokenDownTime) int
	set func(t *civil.BrokenDownTime, v int)
}

var accessors = map[Field]accessor{
	FieldHour: {
		get: func(t civil.BrokenDownTime) int { return t.Hour },
		set: func(t *civil.BrokenDownTime, v int) { t.Hour = v },
	},
	FieldMinute: {
		get: func(t civil.BrokenDownTime) int { return t.Minute },
		set: func(t *civil.BrokenDownTime, v int) { t.Minute = v },
	},
	FieldSecond: {
		get: func(t civil.BrokenDownTime) int { return t.Second },
		set: func(t *civil.BrokenDownTime, v int) { t.Second = v },
	},
	FieldDay: {
		get: func(t civil.BrokenDownTime) int { return t.Day },
		set: func(t *civil.BrokenDownTime, v int) { t.Day = v },
	},
	FieldMonth: {
		get: func(t civil.BrokenDownTime) int { return t.Month },
		set: func(t *civil.BrokenDownTime, v int) { t.Month = v },
	},
	FieldYear: {
		get: func(t civil.BrokenDownTime) int { return t.Year },
		set: func(t *civil.BrokenDownTime, v int) { t.Year = v },
	},
}

var dateFields = map[settings.DateField]Field{
	settings.Day:   FieldDay,
	settings.Month: FieldMonth,
	settings.Year:  FieldYear,
}

// Resolve maps a slot to the field it edits under the given settings.
func Resolve(s Slot, st settings.Settings) Field {
	switch s {
	case SlotHour:
		return FieldHour
	case SlotMinute:
		return FieldMinute
	case SlotSecond:
		return FieldSecond
	case SlotFormat:
		return FieldFormat
	case SlotDate1, SlotDate2, SlotDate3:
		return dateFields[st.DateOrder[s-SlotDate1]]
	}
	return FieldNone
}

// Adjust adds delta to field f of t and normalizes the result. The format
// field toggles the clock format in st instead. Unknown fields are ignored.
func Adjust(f Field, delta int, t *civil.BrokenDownTime, st *settings.Settings) {
	if f == FieldFormat {
		if delta != 0 {
			st.ToggleFormat()
		}
		return
	}

	acc, ok := accessors[f]
	if !ok {
		return
	}
	acc.set(t, acc.get(*t)+delta)
	*t = t.Normalize()
}
