package edit

import (
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/settings"
)

// Cursor tracks the selected slot. The zero value selects the hour.
type Cursor struct {
	index int
}

// Slot returns the selected slot.
func (c *Cursor) Slot() Slot {
	return Slot(c.index)
}

// Field returns the field the selected slot edits under st.
func (c *Cursor) Field(st settings.Settings) Field {
	return Resolve(c.Slot(), st)
}

// Next selects the following slot, wrapping after the last one.
func (c *Cursor) Next() {
	c.index = (c.index + 1) % slotCount
}

// Previous selects the preceding slot, wrapping before the first one.
func (c *Cursor) Previous() {
	c.index = (c.index - 1 + slotCount) % slotCount
}

// Increment adds one to the selected field.
func (c *Cursor) Increment(t *civil.BrokenDownTime, st *settings.Settings) {
	Adjust(c.Field(*st), 1, t, st)
}

// Decrement subtracts one from the selected field.
func (c *Cursor) Decrement(t *civil.BrokenDownTime, st *settings.Settings) {
	Adjust(c.Field(*st), -1, t, st)
}

// SwapLeft moves the date field under the cursor one position to the left
// in the date order, and the cursor with it. It only applies to the second
// and third date slots and reports whether anything changed.
func (c *Cursor) SwapLeft(st *settings.Settings) bool {
	s := c.Slot()
	if s != SlotDate2 && s != SlotDate3 {
		return false
	}
	pos := int(s - SlotDate1)
	st.SwapDateFields(pos-1, pos)
	c.index--
	return true
}

// SwapRight moves the date field under the cursor one position to the right
// in the date order, and the cursor with it. It only applies to the first
// and second date slots and reports whether anything changed.
func (c *Cursor) SwapRight(st *settings.Settings) bool {
	s := c.Slot()
	if s != SlotDate1 && s != SlotDate2 {
		return false
	}
	pos := int(s - SlotDate1)
	st.SwapDateFields(pos, pos+1)
	c.index++
	return true
}
