// Package clock implements the clock screen: a live time display and an
// in-place editor that sets the system clock.
package clock

import (
	"errors"
	"fmt"
	"time"

	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/edit"
	"github.com/richardwooding/odclock/internal/input"
	"github.com/richardwooding/odclock/internal/log"
	"github.com/richardwooding/odclock/internal/settings"
)

// ErrClockNotSet indicates a commit whose time could not be applied to the clock.
var ErrClockNotSet = errors.New("clock was not set")

// State is the clock screen's sub-state.
type State int

// States.
const (
	Viewing State = iota
	Editing
)

// String returns the state name.
func (s State) String() string {
	if s == Editing {
		return "Editing"
	}
	return "Viewing"
}

// Mode is the clock screen.
type Mode struct {
	clock civil.Clock
	loc   *time.Location

	state   State
	session *edit.Session
	now     civil.BrokenDownTime
	status  error

	// OnCommit, if set, receives the working time after a commit.
	OnCommit func(t civil.BrokenDownTime)
}

// New creates a clock screen reading c, with edits interpreted in loc.
func New(c civil.Clock, loc *time.Location) *Mode {
	if loc == nil {
		loc = time.Local
	}
	return &Mode{
		clock: c,
		loc:   loc,
		now:   c.Now(),
	}
}

// State returns the current sub-state.
func (m *Mode) State() State {
	return m.state
}

// Session returns the open edit session, or nil while viewing.
func (m *Mode) Session() *edit.Session {
	return m.session
}

// Now returns the time read from the clock on the last update.
func (m *Mode) Now() civil.BrokenDownTime {
	return m.now
}

// Displayed returns the time the screen shows: the working copy while
// editing, otherwise the live time.
func (m *Mode) Displayed() civil.BrokenDownTime {
	if m.session != nil {
		return m.session.Working
	}
	return m.now
}

// Status returns the problem from the last commit, if any.
func (m *Mode) Status() error {
	return m.status
}

// Tick rereads the live time.
func (m *Mode) Tick() {
	m.now = m.clock.Now()
}

// Update advances the screen by one frame.
func (m *Mode) Update(st *settings.Settings, in input.Frame) {
	m.Tick()

	if m.state == Viewing {
		if in.Has(input.Edit) {
			m.BeginEdit(*st)
		}
		return
	}

	c := &m.session.Cursor
	w := &m.session.Working

	if in.Has(input.Left) {
		c.Previous()
	}
	if in.Has(input.Right) {
		c.Next()
	}
	if in.Has(input.Up) {
		c.Increment(w, st)
	}
	if in.Has(input.Down) {
		c.Decrement(w, st)
	}
	if in.Has(input.ReorderLeft) {
		c.SwapLeft(st)
	}
	if in.Has(input.ReorderRight) {
		c.SwapRight(st)
	}

	switch {
	case in.Has(input.Cancel):
		m.Cancel(st)
	case in.Has(input.Confirm):
		_ = m.Commit()
	}
}

// BeginEdit opens an edit session on the current time.
func (m *Mode) BeginEdit(st settings.Settings) {
	m.session = edit.Begin(m.clock.Now(), st)
	m.state = Editing
	m.status = nil
	log.Debug("clock edit started", "time", m.session.Working.String())
}

// Commit applies the working time to the clock and returns to viewing.
//
// A time outside the supported range leaves the session open and returns an
// error wrapping civil.ErrUnrepresentable. A clock that refuses the new time
// still ends the session; the failure is returned wrapped in ErrClockNotSet.
// Both are kept as the screen's status.
func (m *Mode) Commit() error {
	if m.session == nil {
		return nil
	}
	working := m.session.Working

	ts, err := civil.ToAbsolute(working, m.loc)
	if err != nil {
		m.status = err
		log.Error("clock commit rejected", err, "time", working.String())
		return err
	}

	m.session = nil
	m.state = Viewing
	m.status = nil

	if err := m.clock.Apply(ts); err != nil {
		m.status = fmt.Errorf("%w: %w", ErrClockNotSet, err)
		log.Error("failed to set clock", err, "time", working.String())
	} else {
		log.Info("clock set", "time", working.String())
	}

	m.now = m.clock.Now()
	if m.OnCommit != nil {
		m.OnCommit(working)
	}
	return m.status
}

// Cancel discards the session and restores the settings it started with.
func (m *Mode) Cancel(st *settings.Settings) {
	if m.session == nil {
		return
	}
	m.session.Restore(st)
	m.session = nil
	m.state = Viewing
	m.status = nil
}

// Reset leaves editing, as when the user switches to another screen.
func (m *Mode) Reset(st *settings.Settings) {
	m.Cancel(st)
}
