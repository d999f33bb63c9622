package persist

import (
	"encoding/json"
	"strings"

	"github.com/td0m/vacation/pkg/plan"
)

// savable is the loosely typed shape of what is found in storage.
// Anything that does not fit plan.Document gets repaired in toDocument.
type savable struct {
	Layers            json.RawMessage `json:"layers"`
	TotalVacationDays json.RawMessage `json:"totalVacationDays"`
}

// savableLayer keeps every field raw so one badly typed field is repaired on
// its own instead of costing the whole layer.
type savableLayer map[string]json.RawMessage

// field decodes key into v. It reports false when the key is missing or
// holds the wrong type.
func (sl savableLayer) field(key string, v interface{}) bool {
	raw, ok := sl[key]
	if !ok {
		return false
	}
	return json.Unmarshal(raw, v) == nil
}

// toDocument validates a decoded blob and returns a document that holds all
// plan.Document invariants. The bool reports whether anything was repaired.
func (s savable) toDocument() (plan.Document, bool) {
	doc := plan.Document{TotalVacationDays: plan.DefaultTotalVacationDays}
	repaired := false

	var total float64
	if err := json.Unmarshal(s.TotalVacationDays, &total); err == nil && int(total) > 0 {
		doc.TotalVacationDays = int(total)
	} else {
		repaired = true
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(s.Layers, &raw); err != nil || raw == nil {
		doc.Layers = []plan.Layer{plan.DefaultLayer()}
		return doc, true
	}

	seen := map[plan.ID]bool{}
	for _, r := range raw {
		var sl savableLayer
		var rawID string
		if err := json.Unmarshal(r, &sl); err != nil || !sl.field("id", &rawID) || rawID == "" {
			repaired = true
			continue
		}
		id := plan.ID(rawID)
		if seen[id] {
			repaired = true
			continue
		}
		seen[id] = true
		l, fixed := sl.toLayer(id)
		repaired = repaired || fixed
		doc.Layers = append(doc.Layers, l)
	}

	if !seen[plan.DefaultID] {
		doc.Layers = plan.WithDefault(doc.Layers)
		repaired = true
	}
	return doc, repaired
}

func (sl savableLayer) toLayer(id plan.ID) (plan.Layer, bool) {
	repaired := false
	check := func(key string, v interface{}) {
		if _, present := sl[key]; present && !sl.field(key, v) {
			repaired = true
		}
	}

	var name, color string
	var active bool
	check("name", &name)
	check("color", &color)
	check("active", &active)

	l := plan.Layer{
		ID:     id,
		Name:   strings.TrimSpace(name),
		Color:  color,
		Active: active,
		Dates:  []string{},
	}
	if l.Name == "" {
		l.Name = string(id)
		if id == plan.DefaultID {
			l.Name = plan.DefaultLayer().Name
		}
	}
	if l.Name != name {
		repaired = true
	}

	var dates []interface{}
	if !sl.field("dates", &dates) || dates == nil {
		return l, true
	}
	seen := map[string]bool{}
	for _, d := range dates {
		s, ok := d.(string)
		if !ok || seen[s] {
			repaired = true
			continue
		}
		seen[s] = true
		l.Dates = append(l.Dates, s)
	}
	return l, repaired
}
