package plan

import (
	"testing"

	"github.com/matryer/is"
)

func TestRegistry_Toggle(t *testing.T) {
	t.Run("add is idempotent", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		is.True(r.Toggle(DefaultID, "2024-03-01", true))
		once, _ := r.Get(DefaultID)
		is.True(r.Toggle(DefaultID, "2024-03-01", true))
		twice, _ := r.Get(DefaultID)
		is.Equal(once.Dates, twice.Dates)
		is.Equal(twice.Dates, []string{"2024-03-01"})
	})

	t.Run("remove absent date is a no-op", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		r.Toggle(DefaultID, "2024-03-01", true)
		is.True(r.Toggle(DefaultID, "2024-03-02", false))
		l, _ := r.Get(DefaultID)
		is.Equal(l.Dates, []string{"2024-03-01"})
	})

	t.Run("remove keeps order of the rest", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		for _, d := range []string{"2024-03-03", "2024-03-01", "2024-03-02"} {
			r.Toggle(DefaultID, d, true)
		}
		r.Toggle(DefaultID, "2024-03-01", false)
		l, _ := r.Get(DefaultID)
		is.Equal(l.Dates, []string{"2024-03-03", "2024-03-02"})
	})

	t.Run("unknown layer", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		is.True(!r.Toggle("nope", "2024-03-01", true))
		is.Equal(r.Layers(), []Layer{DefaultLayer()})
	})
}

func TestRegistry_DatesForYear(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()
	for _, d := range []string{"2023-12-31", "2024-01-01", "2024-06-15", "garbage", "20240-01-01"} {
		r.Toggle(DefaultID, d, true)
	}
	is.Equal(r.DatesForYear(DefaultID, 2024), []string{"2024-01-01", "2024-06-15"})
	is.Equal(r.CountForYear(DefaultID, 2024), 2)
	is.Equal(r.CountForYear(DefaultID, 2023), 1)
	is.Equal(r.CountForYear(DefaultID, 2025), 0)
	is.Equal(r.CountForYear("nope", 2024), 0)
}

func TestRegistry_DatesForEarlyYear(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()
	r.Toggle(DefaultID, "0001-03-04", true)
	r.Toggle(DefaultID, "1-03-05", true)
	is.Equal(r.DatesForYear(DefaultID, 1), []string{"0001-03-04"})
}

func TestRegistry_LayersCoveringDate(t *testing.T) {
	is := is.New(t)
	r := NewRegistry(
		Layer{ID: "a", Name: "A", Active: true},
		Layer{ID: "b", Name: "B", Active: false},
		Layer{ID: "c", Name: "C", Active: true},
	)
	for _, id := range []ID{"a", "b", "c", DefaultID} {
		r.Toggle(id, "2024-07-01", true)
	}
	got := r.LayersCoveringDate("2024-07-01")
	ids := []ID{}
	for _, l := range got {
		ids = append(ids, l.ID)
	}
	is.Equal(ids, []ID{"a", "c", DefaultID})
	is.Equal(len(r.LayersCoveringDate("2024-07-02")), 0)
}
