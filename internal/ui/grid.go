package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/plan"
)

const (
	cellWidth    = 3
	monthsPerRow = 4
)

var (
	monthTitle = lipgloss.NewStyle().Bold(true).Foreground(Primary)
	dayHeader  = lipgloss.NewStyle().Foreground(Secondary).Width(cellWidth)
	dayPlain   = lipgloss.NewStyle().Width(cellWidth)
	dayWeekend = dayPlain.Copy().Foreground(Red)
	monthBox   = lipgloss.NewStyle().Padding(0, 2, 1, 0)

	usedStyle = lipgloss.NewStyle().Foreground(Primary)
	overStyle = lipgloss.NewStyle().Foreground(Red).Bold(true)
)

// LayersOn returns the active layers covering a day, outermost first
type LayersOn func(calendar.Day) []plan.Layer

// DayCell renders one day. Covered days take the colour of the outermost
// layer. More layers are shown by underlining, which is how nested rings
// come out in a terminal.
func DayCell(day calendar.Day, layers []plan.Layer, cursor bool) string {
	s := dayPlain
	if day.Weekend() {
		s = dayWeekend
	}
	if len(layers) > 0 {
		s = dayPlain.Copy().
			Foreground(Background).
			Background(lipgloss.Color(layers[0].Color))
		if len(layers) > 1 {
			s = s.Underline(true).Bold(true)
		}
	}
	if cursor {
		s = s.Copy().Reverse(true)
	}
	return s.Render(fmt.Sprintf("%2d ", day.Day))
}

// MonthGrid renders the month title, weekday header and the day cells
func MonthGrid(year int, month time.Month, cursor calendar.Day, on LayersOn) string {
	var b strings.Builder
	b.WriteString(monthTitle.Render(month.String()))
	b.WriteString("\n")
	for _, d := range calendar.DayNames {
		b.WriteString(dayHeader.Render(d[:2]))
	}
	b.WriteString("\n")
	for i, c := range calendar.Month(year, month) {
		if i > 0 && i%7 == 0 {
			b.WriteString("\n")
		}
		if c.Blank {
			b.WriteString(dayPlain.Render(""))
			continue
		}
		b.WriteString(DayCell(c.Day, on(c.Day), c.Day == cursor))
	}
	return monthBox.Render(b.String())
}

// YearGrid lays out all months of the year in rows
func YearGrid(year int, cursor calendar.Day, on LayersOn) string {
	rows := []string{}
	for first := time.January; first <= time.December; first += monthsPerRow {
		months := []string{}
		for m := first; m < first+monthsPerRow && m <= time.December; m++ {
			months = append(months, MonthGrid(year, m, cursor, on))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, months...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Budget renders "used / total", highlighted when used exceeds total
func Budget(used, total int) string {
	s := usedStyle
	if used > total {
		s = overStyle
	}
	return "Vacation days: " + s.Render(fmt.Sprint(used)) + fmt.Sprintf(" / %d", total)
}
