package calendar

import (
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/input"
	"github.com/richardwooding/odclock/internal/settings"
)

// View is the month being browsed.
type View struct {
	Year  int // Years since civil.EpochBase
	Month int // 0-11
}

// Mode is the calendar screen. Its view is set once and then only moves
// when the user browses or commits a new clock time.
type Mode struct {
	view View
}

// New creates a calendar screen showing the month of t.
func New(t civil.BrokenDownTime) *Mode {
	m := &Mode{}
	m.SetView(t)
	return m
}

// View returns the month being shown.
func (m *Mode) View() View {
	return m.view
}

// SetView moves to the month of t, clamped to the supported years.
func (m *Mode) SetView(t civil.BrokenDownTime) {
	n := t.Normalize()
	switch {
	case n.Year < civil.MinYear:
		m.view = View{Year: civil.MinYear, Month: 0}
	case n.Year > civil.MaxYear:
		m.view = View{Year: civil.MaxYear, Month: 11}
	default:
		m.view = View{Year: n.Year, Month: n.Month}
	}
}

// NextMonth moves one month forward unless that leaves the supported years.
func (m *Mode) NextMonth() bool {
	return m.stepMonth(1)
}

// PreviousMonth moves one month back unless that leaves the supported years.
func (m *Mode) PreviousMonth() bool {
	return m.stepMonth(-1)
}

func (m *Mode) stepMonth(delta int) bool {
	n := civil.BrokenDownTime{Year: m.view.Year, Month: m.view.Month + delta, Day: 1}.Normalize()
	if !civil.InRange(n.Year) {
		return false
	}
	m.view = View{Year: n.Year, Month: n.Month}
	return true
}

// NextYear moves one year forward, stopping at civil.MaxYear.
func (m *Mode) NextYear() bool {
	if m.view.Year >= civil.MaxYear {
		return false
	}
	m.view.Year++
	return true
}

// PreviousYear moves one year back, stopping at civil.MinYear.
func (m *Mode) PreviousYear() bool {
	if m.view.Year <= civil.MinYear {
		return false
	}
	m.view.Year--
	return true
}

// Grid yields the cells of the month being shown.
func (m *Mode) Grid(st settings.Settings) [Cells]Cell {
	return Month(m.view.Year, m.view.Month, st.MondayFirst)
}

// Update advances the screen by one frame. Left and right browse months,
// up and down browse years.
func (m *Mode) Update(st *settings.Settings, in input.Frame) {
	if in.Has(input.Left) {
		m.PreviousMonth()
	}
	if in.Has(input.Right) {
		m.NextMonth()
	}
	if in.Has(input.Up) {
		m.NextYear()
	}
	if in.Has(input.Down) {
		m.PreviousYear()
	}
	if in.Has(input.ToggleFirstDay) {
		st.ToggleFirstDay()
	}
}

// Reset has nothing to undo; browsing state survives screen switches.
func (m *Mode) Reset(*settings.Settings) {}
