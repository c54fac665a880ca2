// Package app ties the screens together: it owns the shared settings, picks
// the active screen and feeds it one frame of input at a time.
package app

import (
	"fmt"
	"time"

	"github.com/richardwooding/odclock/internal/calendar"
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/clock"
	"github.com/richardwooding/odclock/internal/input"
	"github.com/richardwooding/odclock/internal/log"
	"github.com/richardwooding/odclock/internal/settings"
)

// ModeID identifies a screen. Screens cycle in declaration order.
type ModeID int

// Screens.
const (
	ModeClock ModeID = iota
	ModeCalendar
	ModeAlarm
	ModeTimer

	modeCount
)

// String returns the screen name.
func (m ModeID) String() string {
	switch m {
	case ModeClock:
		return "Clock"
	case ModeCalendar:
		return "Calendar"
	case ModeAlarm:
		return "Alarm"
	case ModeTimer:
		return "Timer"
	}
	return fmt.Sprintf("ModeID(%d)", int(m))
}

// Modes returns every screen in cycle order.
func Modes() []ModeID {
	return []ModeID{ModeClock, ModeCalendar, ModeAlarm, ModeTimer}
}

// Mode is a screen driven by the controller.
type Mode interface {
	// Update applies one frame of input.
	Update(st *settings.Settings, in input.Frame)

	// Reset drops any transient sub-state, such as an open edit.
	Reset(st *settings.Settings)
}

// Placeholder is a screen with nothing to do yet.
type Placeholder struct {
	Title string
}

// Update ignores input.
func (p *Placeholder) Update(*settings.Settings, input.Frame) {}

// Reset has nothing to reset.
func (p *Placeholder) Reset(*settings.Settings) {}

// State is the whole application state. It is mutated only by Update and
// read by the renderer between updates.
type State struct {
	Settings settings.Settings
	Active   ModeID
	Frames   uint64
	Done     bool

	Clock    *clock.Mode
	Calendar *calendar.Mode
	Alarm    *Placeholder
	Timer    *Placeholder
}

// New builds the application on clock c, with edits interpreted in loc.
// The calendar starts on the current month.
func New(c civil.Clock, loc *time.Location, st settings.Settings) *State {
	s := &State{
		Settings: st,
		Active:   ModeClock,
		Clock:    clock.New(c, loc),
		Alarm:    &Placeholder{Title: "Alarm"},
		Timer:    &Placeholder{Title: "Timer"},
	}
	s.Calendar = calendar.New(s.Clock.Now())
	s.Clock.OnCommit = s.Calendar.SetView
	return s
}

// Mode returns the screen for id.
func (s *State) Mode(id ModeID) Mode {
	switch id {
	case ModeClock:
		return s.Clock
	case ModeCalendar:
		return s.Calendar
	case ModeAlarm:
		return s.Alarm
	case ModeTimer:
		return s.Timer
	}
	return nil
}

// Editing reports whether the clock editor is open.
func (s *State) Editing() bool {
	return s.Active == ModeClock && s.Clock.State() == clock.Editing
}

// AdvanceMode resets the active screen and moves to the next one.
func (s *State) AdvanceMode() {
	s.switchTo((s.Active + 1) % modeCount)
}

// RetreatMode resets the active screen and moves to the previous one.
func (s *State) RetreatMode() {
	s.switchTo((s.Active - 1 + modeCount) % modeCount)
}

func (s *State) switchTo(id ModeID) {
	s.Mode(s.Active).Reset(&s.Settings)
	log.Debug("mode switch", "from", s.Active, "to", id)
	s.Active = id
}

// Update applies one frame of input: quitting, screen switching and the
// format toggle are handled here, everything else goes to the active screen.
// Quitting closes any open edit so that its settings changes are dropped.
// The clock's live time is refreshed on every screen.
func (s *State) Update(in input.Frame) {
	s.Frames++

	if in.Has(input.Quit) {
		s.Mode(s.Active).Reset(&s.Settings)
		s.Done = true
		return
	}

	s.Clock.Tick()

	switch {
	case in.Has(input.ModeNext):
		s.AdvanceMode()
	case in.Has(input.ModePrev):
		s.RetreatMode()
	}

	if in.Has(input.ToggleFormat) && !s.Editing() {
		s.Settings.ToggleFormat()
	}

	s.Mode(s.Active).Update(&s.Settings, in)
}
