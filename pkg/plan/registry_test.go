package plan

import (
	"testing"

	"github.com/matryer/is"
)

func sequentialIDs(ids ...ID) func() ID {
	i := 0
	return func() ID {
		id := ids[i%len(ids)]
		i++
		return id
	}
}

func TestRegistry_DefaultLayer(t *testing.T) {
	t.Run("synthesized when missing", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		ls := r.Layers()
		is.Equal(len(ls), 1)
		is.Equal(ls[0], DefaultLayer())
	})

	t.Run("appended after other layers", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry(Layer{ID: "work", Name: "Work"})
		ls := r.Layers()
		is.Equal(len(ls), 2)
		is.Equal(ls[1].ID, DefaultID)
	})

	t.Run("not duplicated", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry(DefaultLayer(), Layer{ID: "work", Name: "Work"})
		is.Equal(len(r.Layers()), 2)
	})
}

func TestRegistry_SetLayersDuplicateIDs(t *testing.T) {
	is := is.New(t)
	r := NewRegistry(Layer{ID: "work", Name: "A"}, Layer{ID: "work", Name: "B"})
	ls := r.Layers()
	is.Equal(len(ls), 2) // work + default
	is.Equal(ls[0].Name, "A")

	is.NoErr(r.Delete("work"))
	_, ok := r.Get("work")
	is.True(!ok)
}

func TestRegistry_Create(t *testing.T) {
	t.Run("trims the name", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		l, err := r.Create("  Remote  ", "#3b82f6")
		is.NoErr(err)
		is.Equal(l.Name, "Remote")
		is.True(l.Active)
		is.Equal(len(l.Dates), 0)
		is.Equal(len(r.Layers()), 2)
	})

	t.Run("rejects blank names", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		_, err := r.Create("   ", "#fff")
		is.Equal(err, ErrEmptyName)
		is.Equal(len(r.Layers()), 1)
	})

	t.Run("skips colliding ids", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry(Layer{ID: "layer_1", Name: "One"})
		r.newID = sequentialIDs("layer_1", DefaultID, "layer_2")
		l, err := r.Create("Two", "#000")
		is.NoErr(err)
		is.Equal(l.ID, ID("layer_2"))
	})

	t.Run("generated ids are unique", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		seen := map[ID]bool{}
		for i := 0; i < 100; i++ {
			l, err := r.Create("x", "#000")
			is.NoErr(err)
			is.True(!seen[l.ID])
			seen[l.ID] = true
		}
	})
}

func TestRegistry_Update(t *testing.T) {
	r := NewRegistry()
	r.Toggle(DefaultID, "2024-05-01", true)

	t.Run("keeps dates", func(t *testing.T) {
		is := is.New(t)
		is.NoErr(r.Update(DefaultID, " Holidays ", "#ff0000"))
		l, ok := r.Get(DefaultID)
		is.True(ok)
		is.Equal(l.Name, "Holidays")
		is.Equal(l.Color, "#ff0000")
		is.Equal(l.Dates, []string{"2024-05-01"})
	})

	t.Run("rejects blank names without changes", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Update(DefaultID, "", "#000"), ErrEmptyName)
		l, _ := r.Get(DefaultID)
		is.Equal(l.Name, "Holidays")
		is.Equal(l.Color, "#ff0000")
	})

	t.Run("unknown id", func(t *testing.T) {
		is := is.New(t)
		is.Equal(r.Update("nope", "x", "#000"), ErrNotFound)
	})
}

func TestRegistry_ToggleActive(t *testing.T) {
	is := is.New(t)
	r := NewRegistry()
	r.Toggle(DefaultID, "2024-05-01", true)
	is.NoErr(r.ToggleActive(DefaultID))
	l, _ := r.Get(DefaultID)
	is.True(!l.Active)
	is.Equal(l.Dates, []string{"2024-05-01"})
	is.Equal(r.ToggleActive("nope"), ErrNotFound)
}

func TestRegistry_Delete(t *testing.T) {
	t.Run("default layer is protected", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry(Layer{ID: "work", Name: "Work"})
		before := r.Layers()
		is.Equal(r.Delete(DefaultID), ErrProtected)
		is.Equal(r.Layers(), before)
	})

	t.Run("removes other layers", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry(Layer{ID: "work", Name: "Work"})
		is.NoErr(r.Delete("work"))
		_, ok := r.Get("work")
		is.True(!ok)
		is.Equal(len(r.Layers()), 1)
	})

	t.Run("unknown id", func(t *testing.T) {
		is := is.New(t)
		r := NewRegistry()
		is.Equal(r.Delete("work"), ErrNotFound)
	})
}

func TestMergeIncoming(t *testing.T) {
	previous := []Layer{
		{ID: DefaultID, Name: "My vacations", Color: "#4ade80", Active: true, Dates: []string{"2024-01-02", "2024-01-03"}},
		{ID: "work", Name: "Work", Color: "#000", Active: true, Dates: []string{"2024-02-01"}},
	}

	t.Run("dates come from the persisted copy", func(t *testing.T) {
		is := is.New(t)
		updated := []Layer{
			{ID: DefaultID, Name: "Holidays", Color: "#111", Active: false},
			{ID: "work", Name: "Work", Color: "#000", Active: true, Dates: []string{"bogus"}},
		}
		got := MergeIncoming(updated, previous)
		is.Equal(len(got), 2)
		is.Equal(got[0].Name, "Holidays")
		is.Equal(got[0].Color, "#111")
		is.True(!got[0].Active)
		is.Equal(got[0].Dates, []string{"2024-01-02", "2024-01-03"})
		is.Equal(got[1].Dates, []string{"2024-02-01"})
	})

	t.Run("new layers are used as is", func(t *testing.T) {
		is := is.New(t)
		updated := append(cloneAll(previous), Layer{ID: "new", Name: "New", Color: "#222", Active: true})
		got := MergeIncoming(updated, previous)
		is.Equal(len(got), 3)
		is.Equal(got[2].ID, ID("new"))
		is.Equal(got[2].Dates, []string{})
	})

	t.Run("layers missing from the update are preserved", func(t *testing.T) {
		is := is.New(t)
		updated := []Layer{{ID: DefaultID, Name: "My vacations", Active: true}}
		got := MergeIncoming(updated, previous)
		is.Equal(len(got), 2)
		is.Equal(got[1].ID, ID("work"))
		is.Equal(got[1].Dates, []string{"2024-02-01"})
	})

	t.Run("default layer survives with its dates", func(t *testing.T) {
		is := is.New(t)
		updated := []Layer{{ID: "work", Name: "Work", Active: true}}
		got := MergeIncoming(updated, previous)
		is.Equal(len(got), 2)
		is.Equal(got[1].ID, DefaultID)
		is.Equal(got[1].Dates, []string{"2024-01-02", "2024-01-03"})
	})

	t.Run("does not alias the inputs", func(t *testing.T) {
		is := is.New(t)
		got := MergeIncoming(previous, previous)
		got[0].Dates[0] = "changed"
		is.Equal(previous[0].Dates[0], "2024-01-02")
	})
}
