package plan

import (
	"github.com/google/uuid"
)

type ID string

// DefaultID is the id of the layer that always exists and cannot be deleted
const DefaultID ID = "vacation"

const DefaultTotalVacationDays = 30

type Layer struct {
	ID     ID       `json:"id"`
	Name   string   `json:"name"`
	Color  string   `json:"color"`
	Active bool     `json:"active"`
	Dates  []string `json:"dates"`
}

// Document is the unit that gets persisted
type Document struct {
	Layers            []Layer `json:"layers"`
	TotalVacationDays int     `json:"totalVacationDays"`
}

func DefaultLayer() Layer {
	return Layer{
		ID:     DefaultID,
		Name:   "My vacations",
		Color:  "#4ade80",
		Active: true,
		Dates:  []string{},
	}
}

func NewDocument() Document {
	return Document{
		Layers:            []Layer{DefaultLayer()},
		TotalVacationDays: DefaultTotalVacationDays,
	}
}

// NewID returns a time ordered layer id
func NewID() ID {
	u, err := uuid.NewV7()
	if err != nil {
		return ID("layer_" + uuid.NewString())
	}
	return ID("layer_" + u.String())
}

// HasDate reports whether the layer contains the given ISO date
func (l Layer) HasDate(iso string) bool {
	for _, d := range l.Dates {
		if d == iso {
			return true
		}
	}
	return false
}

func (l Layer) clone() Layer {
	dates := make([]string, len(l.Dates))
	copy(dates, l.Dates)
	l.Dates = dates
	return l
}

func cloneAll(ls []Layer) []Layer {
	out := make([]Layer, len(ls))
	for i, l := range ls {
		out[i] = l.clone()
	}
	return out
}

// unique drops layers whose id was already seen, keeping the first
func unique(ls []Layer) []Layer {
	out := ls[:0]
	seen := map[ID]bool{}
	for _, l := range ls {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out
}

func indexOf(ls []Layer, id ID) int {
	for i, l := range ls {
		if l.ID == id {
			return i
		}
	}
	return -1
}

// WithDefault appends the default layer if it is missing
func WithDefault(ls []Layer) []Layer {
	if indexOf(ls, DefaultID) >= 0 {
		return ls
	}
	return append(ls, DefaultLayer())
}
