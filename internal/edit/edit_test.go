package edit

import (
	"testing"

	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/settings"
)

func cursorAt(s Slot) Cursor {
	return Cursor{index: int(s)}
}

func TestCursorNextWraps(t *testing.T) {
	var c Cursor
	for i := 0; i < slotCount; i++ {
		c.Next()
	}
	if c.Slot() != SlotHour {
		t.Errorf("after 7 Next() slot = %s, want Hour", c.Slot())
	}

	c = cursorAt(SlotDate3)
	c.Next()
	if c.Slot() != SlotHour {
		t.Errorf("Next() from Date3 = %s, want Hour", c.Slot())
	}
}

func TestCursorPreviousWraps(t *testing.T) {
	for start := SlotHour; start <= SlotDate3; start++ {
		c := cursorAt(start)
		for i := 0; i < slotCount; i++ {
			c.Previous()
		}
		if c.Slot() != start {
			t.Errorf("7x Previous() from %s = %s", start, c.Slot())
		}
	}

	var c Cursor
	c.Previous()
	if c.Slot() != SlotDate3 {
		t.Errorf("Previous() from Hour = %s, want Date3", c.Slot())
	}
}

func TestResolve(t *testing.T) {
	st := settings.Settings{DateOrder: [3]settings.DateField{settings.Year, settings.Day, settings.Month}}

	tests := []struct {
		slot Slot
		want Field
	}{
		{SlotHour, FieldHour},
		{SlotMinute, FieldMinute},
		{SlotSecond, FieldSecond},
		{SlotFormat, FieldFormat},
		{SlotDate1, FieldYear},
		{SlotDate2, FieldDay},
		{SlotDate3, FieldMonth},
		{Slot(9), FieldNone},
	}

	for _, tt := range tests {
		t.Run(tt.slot.String(), func(t *testing.T) {
			if got := Resolve(tt.slot, st); got != tt.want {
				t.Errorf("Resolve(%s) = %s, want %s", tt.slot, got, tt.want)
			}
		})
	}
}

func TestIncrementHourRollsDay(t *testing.T) {
	st := settings.Default()
	tm := civil.BrokenDownTime{Year: 124, Month: 1, Day: 28, Hour: 23}
	c := cursorAt(SlotHour)

	c.Increment(&tm, &st)

	if tm.Hour != 0 || tm.Day != 29 || tm.Month != 1 {
		t.Errorf("after Increment = %s, want 2024-02-29 00:00:00", tm)
	}
	if tm.Weekday != 4 {
		t.Errorf("Weekday = %d, want 4 (Thursday)", tm.Weekday)
	}
}

func TestIncrementDecrementDateSlots(t *testing.T) {
	tests := []struct {
		name  string
		order [3]settings.DateField
		slot  Slot
		delta int
		start civil.BrokenDownTime
		want  string
	}{
		{"day in slot 1", [3]settings.DateField{settings.Day, settings.Month, settings.Year}, SlotDate1, 1,
			civil.BrokenDownTime{Year: 124, Month: 1, Day: 29}, "2024-03-01 00:00:00"},
		{"month in slot 2", [3]settings.DateField{settings.Day, settings.Month, settings.Year}, SlotDate2, -1,
			civil.BrokenDownTime{Year: 124, Month: 0, Day: 10}, "2023-12-10 00:00:00"},
		{"year in slot 1", [3]settings.DateField{settings.Year, settings.Month, settings.Day}, SlotDate1, 1,
			civil.BrokenDownTime{Year: 124, Month: 1, Day: 29}, "2025-03-01 00:00:00"},
		{"day in slot 3", [3]settings.DateField{settings.Year, settings.Month, settings.Day}, SlotDate3, -1,
			civil.BrokenDownTime{Year: 124, Month: 2, Day: 1}, "2024-02-29 00:00:00"},
		{"minute", [3]settings.DateField{settings.Day, settings.Month, settings.Year}, SlotMinute, -1,
			civil.BrokenDownTime{Year: 124, Month: 0, Day: 1}, "2023-12-31 23:59:00"},
		{"second", [3]settings.DateField{settings.Day, settings.Month, settings.Year}, SlotSecond, 1,
			civil.BrokenDownTime{Year: 124, Month: 0, Day: 1, Minute: 59, Second: 59}, "2024-01-01 01:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := settings.Settings{Use24Hour: true, DateOrder: tt.order}
			tm := tt.start
			c := cursorAt(tt.slot)

			if tt.delta > 0 {
				c.Increment(&tm, &st)
			} else {
				c.Decrement(&tm, &st)
			}

			if tm.String() != tt.want {
				t.Errorf("got %s, want %s", tm, tt.want)
			}
		})
	}
}

func TestFormatSlotTogglesSetting(t *testing.T) {
	st := settings.Default()
	tm := civil.BrokenDownTime{Year: 126, Month: 9, Day: 18, Hour: 13}
	before := tm
	c := cursorAt(SlotFormat)

	c.Increment(&tm, &st)
	if st.Use24Hour {
		t.Error("Increment on format slot should switch to 12-hour")
	}
	c.Decrement(&tm, &st)
	if !st.Use24Hour {
		t.Error("Decrement on format slot should switch back to 24-hour")
	}
	if tm != before {
		t.Errorf("format slot changed time: %+v", tm)
	}
}

func TestSwapRight(t *testing.T) {
	st := settings.Default()
	c := cursorAt(SlotDate2)

	if !c.SwapRight(&st) {
		t.Fatal("SwapRight() on Date2 should apply")
	}
	want := [3]settings.DateField{settings.Day, settings.Year, settings.Month}
	if st.DateOrder != want {
		t.Errorf("DateOrder = %v, want %v", st.DateOrder, want)
	}
	if c.Slot() != SlotDate3 {
		t.Errorf("cursor = %s, want Date3", c.Slot())
	}
	if c.Field(st) != FieldMonth {
		t.Errorf("cursor field = %s, want Month", c.Field(st))
	}
}

func TestSwapLeft(t *testing.T) {
	st := settings.Default()
	c := cursorAt(SlotDate3)

	if !c.SwapLeft(&st) {
		t.Fatal("SwapLeft() on Date3 should apply")
	}
	want := [3]settings.DateField{settings.Day, settings.Year, settings.Month}
	if st.DateOrder != want {
		t.Errorf("DateOrder = %v, want %v", st.DateOrder, want)
	}
	if c.Field(st) != FieldYear {
		t.Errorf("cursor field = %s, want Year", c.Field(st))
	}
}

func TestSwapOutsideRangeIsNoop(t *testing.T) {
	for slot := SlotHour; slot <= SlotDate3; slot++ {
		st := settings.Default()
		c := cursorAt(slot)

		if slot != SlotDate2 && slot != SlotDate3 {
			if c.SwapLeft(&st) || c.Slot() != slot || st != settings.Default() {
				t.Errorf("SwapLeft() at %s should be a no-op", slot)
			}
		}
		if slot != SlotDate1 && slot != SlotDate2 {
			if c.SwapRight(&st) || c.Slot() != slot || st != settings.Default() {
				t.Errorf("SwapRight() at %s should be a no-op", slot)
			}
		}
	}
}

func TestSwapKeepsPermutation(t *testing.T) {
	st := settings.Default()
	c := cursorAt(SlotDate1)

	// A fixed walk of moves across every slot.
	moves := "RRLLRnRpLLnnRLpRRLnLR"
	for _, m := range moves {
		switch m {
		case 'R':
			c.SwapRight(&st)
		case 'L':
			c.SwapLeft(&st)
		case 'n':
			c.Next()
		case 'p':
			c.Previous()
		}
		if err := st.Validate(); err != nil {
			t.Fatalf("after move %c: %v", m, err)
		}
	}
}

func TestSessionRestore(t *testing.T) {
	st := settings.Default()
	s := Begin(civil.BrokenDownTime{Year: 126, Month: 9, Day: 18, Hour: 10}, st)

	s.Cursor = cursorAt(SlotDate2)
	s.Cursor.SwapRight(&st)
	s.Cursor = cursorAt(SlotFormat)
	s.Cursor.Increment(&s.Working, &st)

	if st == settings.Default() {
		t.Fatal("settings should have been changed by the edit")
	}

	s.Restore(&st)
	if st != settings.Default() {
		t.Errorf("Restore() = %+v, want defaults", st)
	}
	if s.Working.Weekday != 0 {
		t.Errorf("Begin() should normalize: weekday = %d, want 0 (Sunday)", s.Working.Weekday)
	}
}
