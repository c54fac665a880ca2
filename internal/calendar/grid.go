// Package calendar generates perpetual month grids and implements the
// calendar browsing screen.
package calendar

import (
	"iter"
	"time"

	"github.com/richardwooding/odclock/internal/civil"
)

// Grid dimensions. Six weeks always cover a month however it falls.
const (
	Columns = 7
	Rows    = 6
	Cells   = Columns * Rows
)

// Cell is one day of a month grid.
type Cell struct {
	Day     int
	InMonth bool
	Weekday time.Weekday
}

// Accent reports whether the cell is drawn in the accent colour.
func (c Cell) Accent() bool {
	return IsAccent(c.Weekday)
}

// IsAccent reports whether days and headings of weekday d are highlighted.
// Only Sunday is.
func IsAccent(d time.Weekday) bool {
	return d == time.Sunday
}

// Lead returns how many days of the previous month open the grid of the
// month starting on weekday first.
func Lead(first time.Weekday, mondayFirst bool) int {
	if mondayFirst {
		return (int(first) + 6) % 7
	}
	return int(first)
}

// Grid yields the 42 cells of the month grid for a year offset and 0-based
// month, row by row, starting on Sunday or Monday.
func Grid(year, month int, mondayFirst bool) iter.Seq[Cell] {
	first := civil.BrokenDownTime{Year: year, Month: month, Day: 1}.Normalize()
	start := 1 - Lead(time.Weekday(first.Weekday), mondayFirst)

	return func(yield func(Cell) bool) {
		for i := 0; i < Cells; i++ {
			d := civil.BrokenDownTime{Year: first.Year, Month: first.Month, Day: start + i}.Normalize()
			c := Cell{
				Day:     d.Day,
				InMonth: d.Year == first.Year && d.Month == first.Month,
				Weekday: time.Weekday(d.Weekday),
			}
			if !yield(c) {
				return
			}
		}
	}
}

// Month collects the grid of a month into an array.
func Month(year, month int, mondayFirst bool) [Cells]Cell {
	var out [Cells]Cell
	i := 0
	for c := range Grid(year, month, mondayFirst) {
		out[i] = c
		i++
	}
	return out
}

// Weekdays returns the column headers in grid order.
func Weekdays(mondayFirst bool) [Columns]time.Weekday {
	var out [Columns]time.Weekday
	for i := range out {
		if mondayFirst {
			out[i] = time.Weekday((i + 1) % 7)
		} else {
			out[i] = time.Weekday(i)
		}
	}
	return out
}

// DaysIn returns the length of a month.
func DaysIn(year, month int) int {
	return civil.BrokenDownTime{Year: year, Month: month + 1, Day: 0}.Normalize().Day
}
