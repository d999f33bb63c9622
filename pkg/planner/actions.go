package planner

import (
	"errors"

	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/selection"
)

var ErrInvalidTotal = errors.New("total vacation days must be positive")

func (p *Planner) CreateLayer(name, color string) (plan.Layer, error) {
	l, err := p.registry.Create(name, color)
	if err != nil {
		return plan.Layer{}, err
	}
	p.save()
	return l, nil
}

func (p *Planner) UpdateLayer(id plan.ID, name, color string) error {
	if err := p.registry.Update(id, name, color); err != nil {
		return err
	}
	p.save()
	return nil
}

func (p *Planner) ToggleLayer(id plan.ID) error {
	if err := p.registry.ToggleActive(id); err != nil {
		return err
	}
	p.save()
	return nil
}

// DeleteLayer removes a layer that the user already confirmed deleting.
// The selection is cleared when it pointed at the deleted layer.
func (p *Planner) DeleteLayer(id plan.ID) error {
	if err := p.registry.Delete(id); err != nil {
		return err
	}
	p.selection.DisarmIfTarget(id)
	p.save()
	return nil
}

// ReplaceLayers is the entry point for views that hand back a whole layer
// list rather than single edits. The list may not carry the authoritative
// dates, so it is reconciled with the current state through MergeIncoming.
func (p *Planner) ReplaceLayers(updated []plan.Layer) {
	merged := plan.MergeIncoming(updated, p.registry.Layers())
	p.registry.SetLayers(merged)
	if a, ok := p.selection.Current(); ok {
		if _, found := p.registry.Get(a.Layer); !found {
			p.selection.Disarm()
		}
	}
	p.save()
}

func (p *Planner) SetTotalVacationDays(n int) error {
	if n <= 0 {
		return ErrInvalidTotal
	}
	p.total = n
	p.save()
	return nil
}

// Arm toggles click-to-mark mode for a layer. Unknown layers are rejected.
func (p *Planner) Arm(id plan.ID, mode selection.Mode) error {
	if _, ok := p.registry.Get(id); !ok {
		return plan.ErrNotFound
	}
	p.selection.Arm(id, mode)
	return nil
}

func (p *Planner) Disarm() {
	p.selection.Disarm()
}

// ClickDay applies the armed mode to day. Without an armed layer it does
// nothing. It reports whether a toggle happened.
func (p *Planner) ClickDay(day calendar.Day) bool {
	a, ok := p.selection.Current()
	if !ok {
		return false
	}
	if !p.registry.Toggle(a.Layer, day.ISO(), a.Mode == selection.Add) {
		return false
	}
	// saved even when nothing changed, keeps storage canonical
	p.save()
	return true
}
