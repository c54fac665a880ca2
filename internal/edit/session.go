package edit

import (
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/settings"
)

// Session is one in-progress edit of the clock: a working copy of the time,
// the cursor and a snapshot of the settings to restore on cancel.
type Session struct {
	Working civil.BrokenDownTime
	Cursor  Cursor

	saved settings.Settings
}

// Begin starts a session on a copy of now, snapshotting st.
func Begin(now civil.BrokenDownTime, st settings.Settings) *Session {
	return &Session{
		Working: now.Normalize(),
		saved:   st,
	}
}

// Saved returns the settings snapshot taken when the session began.
func (s *Session) Saved() settings.Settings {
	return s.saved
}

// Restore writes the snapshot back into st.
func (s *Session) Restore(st *settings.Settings) {
	*st = s.saved
}
