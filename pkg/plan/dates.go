package plan

import (
	"fmt"
	"strings"
)

// Toggle adds or removes an ISO date on a layer.
// Adding a present date or removing an absent one changes nothing.
// It returns false when the layer does not exist.
func (r *Registry) Toggle(id ID, iso string, add bool) bool {
	i := indexOf(r.layers, id)
	if i < 0 {
		return false
	}
	l := &r.layers[i]
	has := l.HasDate(iso)
	switch {
	case add && !has:
		l.Dates = append(l.Dates, iso)
	case !add && has:
		dates := make([]string, 0, len(l.Dates)-1)
		for _, d := range l.Dates {
			if d != iso {
				dates = append(dates, d)
			}
		}
		l.Dates = dates
	}
	return true
}

// DatesForYear filters by the zero padded "YYYY-" string prefix, the same
// form calendar dates are stored in. Malformed entries simply never match.
func (r *Registry) DatesForYear(id ID, year int) []string {
	i := indexOf(r.layers, id)
	if i < 0 {
		return []string{}
	}
	prefix := fmt.Sprintf("%04d-", year)
	out := []string{}
	for _, d := range r.layers[i].Dates {
		if strings.HasPrefix(d, prefix) {
			out = append(out, d)
		}
	}
	return out
}

func (r *Registry) CountForYear(id ID, year int) int {
	return len(r.DatesForYear(id, year))
}

// LayersCoveringDate returns the active layers containing iso in list order.
// The first one is drawn outermost.
func (r *Registry) LayersCoveringDate(iso string) []Layer {
	out := []Layer{}
	for _, l := range r.layers {
		if l.Active && l.HasDate(iso) {
			out = append(out, l.clone())
		}
	}
	return out
}
