package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/selection"
)

func TestYearGrid(t *testing.T) {
	is := is.New(t)
	calls := 0
	on := func(calendar.Day) []plan.Layer {
		calls++
		return nil
	}
	out := YearGrid(2024, calendar.New(2024, time.March, 1), on)
	for m := time.January; m <= time.December; m++ {
		is.True(strings.Contains(out, m.String()))
	}
	is.Equal(calls, 366) // every day of a leap year, no blanks
}

func TestLayerRow(t *testing.T) {
	l := plan.Layer{ID: "remote", Name: "Remote", Color: "#3b82f6", Active: true}

	t.Run("armed", func(t *testing.T) {
		is := is.New(t)
		row := LayerRow(l, 3, false, &selection.Armed{Layer: "remote", Mode: selection.Remove})
		is.True(strings.Contains(row, "[x]"))
		is.True(strings.Contains(row, "Remote"))
		is.True(strings.Contains(row, "3"))
		is.True(strings.Contains(row, "removing"))
	})

	t.Run("other layer armed", func(t *testing.T) {
		is := is.New(t)
		l.Active = false
		row := LayerRow(l, 0, true, &selection.Armed{Layer: plan.DefaultID, Mode: selection.Add})
		is.True(strings.Contains(row, "[ ]"))
		is.True(!strings.Contains(row, "adding"))
	})
}

func TestBudget(t *testing.T) {
	is := is.New(t)
	is.True(strings.Contains(Budget(3, 30), "3"))
	is.True(strings.Contains(Budget(31, 30), "/ 30"))
}

func TestNextColor(t *testing.T) {
	is := is.New(t)
	is.Equal(NextColor(""), Palette[0])
	is.Equal(NextColor(Palette[0]), Palette[1])
	is.Equal(NextColor(Palette[len(Palette)-1]), Palette[0])
}

func TestTabs(t *testing.T) {
	is := is.New(t)
	tabs := NewTabs([]string{"Calendar", "Layers"})
	tabs.Width = 80
	tabs.Set(5)
	is.Equal(tabs.Value(), 1)
	tabs.Next()
	is.Equal(tabs.Value(), 0)
	tabs.Info = "info"
	view := tabs.View()
	is.True(strings.Contains(view, "Calendar"))
	is.True(strings.Contains(view, "info"))
}
