package dateinput

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/td0m/vacation/pkg/calendar"
)

var ErrNoMatch = errors.New("no date format matches")

type multiplier struct {
	key   string
	value int
}

var multipliers = []multiplier{
	{"days", 1},
	{"weeks", 7},
	{"months", 30},
	{"years", 365},
}

var ordinal = regexp.MustCompile(`([0-9])(st|nd|rd|th)`)

// Parse resolves user input to a day, relative to today.
// It understands "today", "tomorrow", weekday names, offsets like "in 2 weeks"
// or "-3d", ISO dates and the absolute formats below.
func Parse(s string, today calendar.Day) (calendar.Day, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return calendar.Day{}, ErrNoMatch
	}
	switch s {
	case "today", "tod", "now":
		return today, nil
	case "tomorrow", "tom":
		return today.AddDays(1), nil
	case "yesterday", "yday":
		return today.AddDays(-1), nil
	}
	for i := time.Sunday; i <= time.Saturday; i++ {
		name := strings.ToLower(i.String())
		if s == name || s == name[:3] {
			return nextWeekday(today, i), nil
		}
	}
	if days, err := parseRelative(s); err == nil {
		return today.AddDays(days), nil
	}
	if d, err := calendar.ParseISO(s); err == nil {
		return d, nil
	}
	s = ordinal.ReplaceAllString(s, "$1")
	return parseAbsolute(s, today)
}

func nextWeekday(today calendar.Day, w time.Weekday) calendar.Day {
	days := int(w - today.Weekday())
	if days < 0 {
		days += 7
	}
	return today.AddDays(days)
}

func parseRelative(s string) (int, error) {
	s = strings.TrimPrefix(s, "in")
	s = strings.TrimSpace(s)
	sign := 1
	if strings.HasSuffix(s, "ago") {
		sign = -1
		s = strings.TrimSpace(strings.TrimSuffix(s, "ago"))
	}
	if len(s) > 0 && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign *= -1
		}
		s = s[1:]
	}

	// parse quantity
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, errors.New("missing quantity")
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return 0, err
	}
	s = strings.TrimSpace(s[i:])

	mult := 1
	if len(s) > 0 {
		mult = 0
		for _, m := range multipliers {
			end := min(len(m.key), len(s))
			if m.key[:end] == s {
				mult = m.value
				break
			}
		}
		if mult == 0 {
			return 0, errors.New("unexpected postfix")
		}
	}
	return sign * n * mult, nil
}

var formats = []string{
	"_2/01",
	"_2/01/06",
	"_2/01/2006",
	"_2-01",
	"_2-01-06",
	"_2-01-2006",
	"Jan _2",
	"Jan _2 2006",
	"January _2",
	"January _2 2006",
	"_2 Jan",
	"_2 Jan 2006",
	"_2 January",
	"_2 January 2006",
}

// parseAbsolute parses one of formats. Formats without a year take the
// year of today.
func parseAbsolute(s string, today calendar.Day) (calendar.Day, error) {
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err != nil {
			continue
		}
		year := t.Year()
		if year == 0 {
			year = today.Year
		}
		if t.Day() > calendar.DaysIn(year, t.Month()) {
			return calendar.Day{}, ErrNoMatch
		}
		return calendar.Day{Year: year, Month: t.Month(), Day: t.Day()}, nil
	}
	return calendar.Day{}, ErrNoMatch
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
