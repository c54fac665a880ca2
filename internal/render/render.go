// Package render draws the application state into a 320x240 framebuffer
// using tinyfont bitmap fonts.
package render

import (
	"image/color"
	"strconv"
	"strings"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"

	"github.com/richardwooding/odclock/internal/app"
	"github.com/richardwooding/odclock/internal/calendar"
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/clock"
	"github.com/richardwooding/odclock/internal/edit"
	"github.com/richardwooding/odclock/internal/settings"
)

var (
	colorBG       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	colorText     = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorDigits   = color.RGBA{R: 0xff, G: 0xff, B: 0x00, A: 0xff}
	colorDigitDim = color.RGBA{R: 0x80, G: 0x80, B: 0x00, A: 0xff}
	colorFaint    = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	colorGrey     = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
	colorAccent   = color.RGBA{R: 0xe1, G: 0x41, B: 0x41, A: 0xff}
	colorMenuBG   = color.RGBA{R: 0x3e, G: 0x37, B: 0x5c, A: 0xff}
	colorCaseTop  = color.RGBA{R: 0x78, G: 0x84, B: 0xab, A: 0xff}
	colorCase     = color.RGBA{R: 0x3e, G: 0x37, B: 0x5c, A: 0xff}
	colorLCD      = color.RGBA{R: 0x17, G: 0x11, B: 0x1a, A: 0xff}
	colorLCDEdge  = color.RGBA{R: 0x37, G: 0x25, B: 0x38, A: 0xff}
	colorButton   = color.RGBA{R: 0x7a, G: 0x21, B: 0x3a, A: 0xff}
	colorToday    = color.RGBA{R: 0x3e, G: 0x37, B: 0x5c, A: 0xff}
)

// Menu bar and footer.
const (
	menuH      = 16
	iconW      = 24
	iconH      = 12
	iconGap    = 4
	menuBase   = 12
	footerBase = 234
	editBase   = 204
	statusBase = 184
)

// Clock face. The case sits at (caseX, caseY); everything else is relative
// to the screen.
const (
	caseX    = 85
	caseY    = 50
	caseW    = 150
	caseH    = 110
	lcdX     = caseX + 10
	lcdY     = caseY + 30
	lcdW     = 130
	lcdH     = 70
	timeX    = lcdX + 3
	timeBase = lcdY + 34
	tagX     = lcdX + 112
	tagBase  = lcdY + 18
	secBase  = lcdY + 32
	dateBase = lcdY + 60
)

// Calendar grid.
const (
	titleBase = 34
	headBase  = 52
	gridX     = 20
	gridY     = 58
	cellW     = 40
	cellH     = 24
)

var iconLabels = [...]string{"CL", "CA", "AL", "TI"}

// Renderer draws frames of an app.State.
type Renderer struct {
	fb    *Framebuffer
	small tinyfont.Fonter
	large tinyfont.Fonter
}

// New creates a renderer that draws into fb.
func New(fb *Framebuffer) *Renderer {
	return &Renderer{
		fb:    fb,
		small: &proggy.TinySZ8pt7b,
		large: &freemono.Bold18pt7b,
	}
}

// Framebuffer returns the target framebuffer.
func (r *Renderer) Framebuffer() *Framebuffer {
	return r.fb
}

// Draw renders one frame of s and presents it.
func (r *Renderer) Draw(s *app.State) error {
	r.fb.Fill(colorBG)
	r.drawMenu(s.Active)

	switch s.Active {
	case app.ModeClock:
		r.drawClock(s.Clock, s.Settings)
	case app.ModeCalendar:
		r.drawCalendar(s.Calendar, s.Settings, s.Clock.Now())
	case app.ModeAlarm:
		r.drawPlaceholder(s.Alarm)
	case app.ModeTimer:
		r.drawPlaceholder(s.Timer)
	}

	return r.fb.Display()
}

func (r *Renderer) drawMenu(active app.ModeID) {
	r.fb.FillRect(0, 0, Width, menuH, colorMenuBG)

	for i, id := range app.Modes() {
		x := iconGap + i*(iconW+iconGap)
		y := (menuH - iconH) / 2
		label := colorText
		if id == active {
			r.fb.FillRect(x, y, iconW, iconH, colorAccent)
		} else {
			r.fb.StrokeRect(x, y, iconW, iconH, colorGrey)
			label = colorGrey
		}
		lw := r.width(r.small, iconLabels[i])
		r.text(r.small, x+(iconW-lw)/2, menuBase, iconLabels[i], label)
	}

	name := strings.ToUpper(active.String())
	r.text(r.small, Width-iconGap-r.width(r.small, name), menuBase, name, colorText)

	r.text(r.small, iconGap, footerBase, "[START] exit", colorText)
}

func (r *Renderer) hint(s string) {
	r.text(r.small, Width-iconGap-r.width(r.small, s), footerBase, s, colorText)
}

func (r *Renderer) drawCase() {
	r.fb.FillRect(caseX, caseY, caseW, 22, colorCaseTop)
	r.fb.FillRect(caseX+60, caseY+5, 30, 10, colorButton)
	r.fb.FillRect(caseX+60, caseY+2, 30, 10, colorAccent)
	r.fb.FillRect(caseX, caseY+20, caseW, caseH-20, colorCase)
	r.fb.FillRect(lcdX, lcdY, lcdW, lcdH, colorLCD)
	r.fb.FillRect(lcdX, lcdY, 2, lcdH, colorLCDEdge)
	r.fb.FillRect(lcdX, lcdY, lcdW, 2, colorLCDEdge)
}

func (r *Renderer) drawClock(m *clock.Mode, st settings.Settings) {
	r.drawCase()

	t := m.Displayed().Normalize()
	r.text(r.large, timeX, timeBase, TimeText(t, st.Use24Hour), colorDigits)

	tagColor := colorDigitDim
	if st.Use24Hour {
		tagColor = colorFaint
	}
	r.text(r.small, tagX, tagBase, FormatTag(t, st.Use24Hour), tagColor)
	r.text(r.small, tagX, secBase, SecondsText(t), colorDigitDim)

	date := DateText(t, st.DateOrder)
	r.text(r.small, r.dateX(date), dateBase, date, colorDigits)

	if msg := StatusText(m.Status()); msg != "" {
		r.text(r.small, (Width-r.width(r.small, msg))/2, statusBase, msg, colorAccent)
	}

	if m.State() != clock.Editing {
		r.hint("[SELECT] set time")
		return
	}

	r.text(r.small, iconGap, editBase, "EDIT-MODE", colorDigits)
	r.hint("[A] accept [B] cancel")

	x, w, base := r.slotBounds(m.Session().Cursor.Slot(), t, st)
	r.fb.FillRect(x, base+2, w, 2, colorAccent)
}

func (r *Renderer) dateX(date string) int {
	return caseX + (caseW-r.width(r.small, date))/2
}

// slotBounds returns where the text edited through slot is drawn: its left
// edge, width and baseline.
func (r *Renderer) slotBounds(slot edit.Slot, t civil.BrokenDownTime, st settings.Settings) (x, w, base int) {
	clockText := TimeText(t, st.Use24Hour)
	switch slot {
	case edit.SlotHour:
		return timeX, r.width(r.large, clockText[:2]), timeBase
	case edit.SlotMinute:
		return timeX + r.width(r.large, clockText[:3]), r.width(r.large, clockText[3:]), timeBase
	case edit.SlotSecond:
		sec := SecondsText(t)
		return tagX + r.width(r.small, sec[:1]), r.width(r.small, sec[1:]), secBase
	case edit.SlotFormat:
		return tagX, r.width(r.small, FormatTag(t, st.Use24Hour)), tagBase
	}

	tokens := DateTokens(t, st.DateOrder)
	x = r.dateX(DateText(t, st.DateOrder))
	pos := int(slot - edit.SlotDate1)
	for i := 0; i < pos; i++ {
		x += r.width(r.small, tokens[i]+" ")
	}
	return x, r.width(r.small, tokens[pos]), dateBase
}

func (r *Renderer) drawCalendar(m *calendar.Mode, st settings.Settings, today civil.BrokenDownTime) {
	v := m.View()
	title := MonthTitle(v)
	r.text(r.small, (Width-r.width(r.small, title))/2, titleBase, title, colorDigits)

	for col, wd := range calendar.Weekdays(st.MondayFirst) {
		label := WeekdayLabel(wd)
		c := colorDigitDim
		if calendar.IsAccent(wd) {
			c = colorAccent
		}
		r.text(r.small, gridX+col*cellW+(cellW-r.width(r.small, label))/2, headBase, label, c)
	}

	current := today.Year == v.Year && today.Month == v.Month
	for i, cell := range m.Grid(st) {
		x := gridX + (i%calendar.Columns)*cellW
		y := gridY + (i/calendar.Columns)*cellH

		if current && cell.InMonth && cell.Day == today.Day {
			r.fb.FillRect(x+2, y+2, cellW-4, cellH-4, colorToday)
		}

		c := colorDigits
		switch {
		case !cell.InMonth:
			c = colorFaint
		case cell.Accent():
			c = colorAccent
		}
		label := strconv.Itoa(cell.Day)
		r.text(r.small, x+(cellW-r.width(r.small, label))/2, y+16, label, c)
	}

	r.hint("[X] first day")
}

func (r *Renderer) drawPlaceholder(p *app.Placeholder) {
	title := strings.ToUpper(p.Title)
	r.text(r.large, (Width-r.width(r.large, title))/2, 120, title, colorDigits)

	msg := "not available yet"
	r.text(r.small, (Width-r.width(r.small, msg))/2, 150, msg, colorGrey)
}

func (r *Renderer) text(f tinyfont.Fonter, x, base int, s string, c color.RGBA) {
	tinyfont.WriteLine(r.fb, f, int16(x), int16(base), s, c)
}

func (r *Renderer) width(f tinyfont.Fonter, s string) int {
	_, outbox := tinyfont.LineWidth(f, s)
	return int(outbox)
}
