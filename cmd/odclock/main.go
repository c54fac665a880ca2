// Package main provides the odclock CLI application.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/richardwooding/odclock/internal/app"
	"github.com/richardwooding/odclock/internal/calendar"
	"github.com/richardwooding/odclock/internal/civil"
	"github.com/richardwooding/odclock/internal/input"
	"github.com/richardwooding/odclock/internal/log"
	"github.com/richardwooding/odclock/internal/render"
	"github.com/richardwooding/odclock/internal/settings"
)

var (
	// ErrInvalidScale indicates the scale factor is out of valid range.
	ErrInvalidScale = errors.New("scale must be between 1 and 5")

	// ErrYearOutOfRange indicates a calendar year the clock cannot represent.
	ErrYearOutOfRange = errors.New("year must be between 1900 and 2037")

	// ErrInvalidMonth indicates a month outside 1-12.
	ErrInvalidMonth = errors.New("month must be between 1 and 12")
)

// CLI represents the command-line interface structure.
type CLI struct {
	Run      RunCmd      `cmd:"" default:"1" help:"Open the clock window."`
	Cal      CalCmd      `cmd:"" help:"Print a month calendar."`
	Settings SettingsCmd `cmd:"" help:"Print the effective settings."`
	Keymap   KeymapCmd   `cmd:"" help:"Print the effective key bindings."`
}

// RunCmd opens the clock window.
type RunCmd struct {
	Scale        int    `help:"Window scale factor (1-5)." default:"2"`
	Settings     string `help:"Settings file (default ~/.odclock/settings.ini)." type:"path"`
	Keymap       string `help:"YAML key binding file." type:"path"`
	VirtualClock bool   `help:"Keep clock changes inside the app instead of setting the system clock."`
	LogLevel     string `help:"Minimum log level." enum:"debug,info,error" default:"info"`
}

func (c *RunCmd) validate() error {
	if c.Scale < 1 || c.Scale > 5 {
		return fmt.Errorf("%w: got %d", ErrInvalidScale, c.Scale)
	}
	return nil
}

// Run executes the run command.
func (c *RunCmd) Run() error {
	if err := c.validate(); err != nil {
		return err
	}

	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)

	path := settingsPath(c.Settings)
	st := loadSettings(path)

	km, err := input.LoadKeymap(c.Keymap)
	if err != nil {
		return fmt.Errorf("failed to load keymap: %w", err)
	}
	bindings, err := resolveKeys(km)
	if err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}

	var clk civil.Clock = civil.NewSystemClock()
	if c.VirtualClock {
		clk = civil.NewVirtualClock()
	}

	state := app.New(clk, time.Local, st)
	game := NewGame(state, bindings)

	// Configure Ebiten window
	ebiten.SetWindowTitle("odclock")
	ebiten.SetWindowSize(render.Width*c.Scale, render.Height*c.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)

	runErr := ebiten.RunGame(game)

	if err := settings.Save(path, state.Settings); err != nil {
		log.Error("failed to save settings", err, "path", path)
	} else {
		log.Info("settings saved", "path", path)
	}

	if runErr != nil {
		return fmt.Errorf("window error: %w", runErr)
	}
	return nil
}

// CalCmd prints a month calendar.
type CalCmd struct {
	Year   int  `help:"Year (1900-2037). Defaults to the current year."`
	Month  int  `help:"Month (1-12). Defaults to the current month."`
	Monday bool `help:"Start weeks on Monday."`
}

// Run executes the cal command.
func (c *CalCmd) Run() error {
	return c.print(os.Stdout, time.Now())
}

func (c *CalCmd) print(w io.Writer, now time.Time) error {
	year, month := c.Year, c.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if !civil.InRange(year - civil.EpochBase) {
		return fmt.Errorf("%w: got %d", ErrYearOutOfRange, year)
	}
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: got %d", ErrInvalidMonth, month)
	}

	view := calendar.View{Year: year - civil.EpochBase, Month: month - 1}
	const lineWidth = calendar.Columns*3 - 1

	title := render.MonthTitle(view)
	fmt.Fprintf(w, "%*s\n", (lineWidth+len(title))/2, title)

	labels := make([]string, 0, calendar.Columns)
	for _, wd := range calendar.Weekdays(c.Monday) {
		labels = append(labels, render.WeekdayLabel(wd))
	}
	fmt.Fprintln(w, strings.Join(labels, " "))

	var row []string
	for cell := range calendar.Grid(view.Year, view.Month, c.Monday) {
		if cell.InMonth {
			row = append(row, fmt.Sprintf("%2d", cell.Day))
		} else {
			row = append(row, "  ")
		}
		if len(row) == calendar.Columns {
			fmt.Fprintln(w, strings.TrimRight(strings.Join(row, " "), " "))
			row = row[:0]
		}
	}
	return nil
}

// SettingsCmd prints the settings the clock would start with.
type SettingsCmd struct {
	Settings string `help:"Settings file (default ~/.odclock/settings.ini)." type:"path"`
}

// Run executes the settings command.
func (c *SettingsCmd) Run() error {
	path := settingsPath(c.Settings)
	st := loadSettings(path)

	fmt.Printf("# %s\n", path)
	_, err := st.WriteTo(os.Stdout)
	return err
}

// KeymapCmd prints the key bindings after applying an optional override file.
type KeymapCmd struct {
	Keymap string `arg:"" optional:"" help:"YAML key binding file." type:"path"`
}

// Run executes the keymap command.
func (c *KeymapCmd) Run() error {
	km, err := input.LoadKeymap(c.Keymap)
	if err != nil {
		return fmt.Errorf("failed to load keymap: %w", err)
	}
	if _, err := resolveKeys(km); err != nil {
		return fmt.Errorf("invalid keymap: %w", err)
	}

	out, err := km.Marshal()
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(out)
	return err
}

func settingsPath(flag string) string {
	if flag != "" {
		return flag
	}
	return settings.DefaultPath()
}

// loadSettings never fails: unreadable or invalid files fall back to defaults.
func loadSettings(path string) settings.Settings {
	st, err := settings.Load(path)
	if err != nil {
		log.Error("settings file problem, using defaults where needed", err, "path", path)
	}
	return st
}

func main() {
	cli := &CLI{}
	ctx := kong.Parse(cli,
		kong.Name("odclock"),
		kong.Description("A clock, calendar and alarm for handheld consoles."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
