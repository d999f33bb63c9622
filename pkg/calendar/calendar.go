package calendar

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// DayNames are the grid column headers, weeks start on Monday
var DayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}

var ErrInvalidDate = errors.New("invalid date")

// Day is a local calendar date without any time or zone
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

func New(year int, month time.Month, day int) Day {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
}

// FromTime takes the local date fields of t
func FromTime(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

func Today() Day {
	return FromTime(time.Now())
}

// ParseISO parses a YYYY-MM-DD string
func ParseISO(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return FromTime(t), nil
}

// ISO formats the day as zero padded YYYY-MM-DD
func (d Day) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Day) String() string {
	return d.ISO()
}

func (d Day) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.Local)
}

func (d Day) AddDays(n int) Day {
	return FromTime(d.Time().AddDate(0, 0, n))
}

func (d Day) AddMonths(n int) Day {
	t := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.Local)
	last := DaysIn(t.Year(), t.Month())
	return Day{Year: t.Year(), Month: t.Month(), Day: min(d.Day, last)}
}

func (d Day) Weekday() time.Weekday {
	return d.Time().Weekday()
}

func (d Day) Weekend() bool {
	w := d.Weekday()
	return w == time.Saturday || w == time.Sunday
}

func (d Day) Before(o Day) bool {
	return d.Time().Before(o.Time())
}

func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// Cell is one slot in a month grid. Blank cells pad the first week.
type Cell struct {
	Blank bool
	Day   Day
}

// Month lays out a month Monday first, with blank cells before the 1st
func Month(year int, month time.Month) []Cell {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
	offset := int(first) - 1
	if offset < 0 {
		offset = 6 // sunday goes last
	}
	cells := make([]Cell, 0, offset+31)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{Blank: true})
	}
	for d := 1; d <= DaysIn(year, month); d++ {
		cells = append(cells, Cell{Day: Day{Year: year, Month: month, Day: d}})
	}
	return cells
}

// MaxYear is the last year a zero padded ISO date can hold
const MaxYear = 9999

var leadingInt = regexp.MustCompile(`^[+-]?\d+`)

// ResolveYear turns a raw year parameter into a year.
// A numeric value is read up to its first non-digit, so "2024.9" is 2024 and
// "1e3" is 1. Absent, non-numeric or out of range values fall back to the
// year of now.
func ResolveYear(raw string, now time.Time) int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return now.Year()
	}
	if _, err := strconv.ParseFloat(raw, 64); err != nil && !errors.Is(err, strconv.ErrRange) {
		return now.Year()
	}
	y, err := strconv.Atoi(leadingInt.FindString(raw))
	if err != nil || y < 0 || y > MaxYear {
		return now.Year()
	}
	return y
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
