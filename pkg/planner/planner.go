// Package planner is the root controller. It owns the layer registry, the
// selection state and the store, and saves after every mutation. Views read
// snapshots and call back into it.
package planner

import (
	"log/slog"

	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/persist"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/selection"
)

type Planner struct {
	store     persist.Persistor
	registry  *plan.Registry
	selection selection.Controller
	total     int
	year      int
	saveErr   error
	log       *slog.Logger
}

// Snapshot is a read-only copy of everything a view needs to render
type Snapshot struct {
	Year              int
	Layers            []plan.Layer
	TotalVacationDays int
	VacationDaysUsed  int
	Armed             *selection.Armed
	// YearDates holds each layer's dates within Year, keyed by layer id
	YearDates map[plan.ID][]string
}

func (s Snapshot) OverBudget() bool {
	return s.VacationDaysUsed > s.TotalVacationDays
}

// New loads the stored document and starts on the given year
func New(store persist.Persistor, year int, log *slog.Logger) *Planner {
	if log == nil {
		log = slog.Default()
	}
	doc := store.Load()
	return &Planner{
		store:    store,
		registry: plan.NewRegistry(doc.Layers...),
		total:    doc.TotalVacationDays,
		year:     year,
		log:      log,
	}
}

func (p *Planner) document() plan.Document {
	return plan.Document{
		Layers:            p.registry.Layers(),
		TotalVacationDays: p.total,
	}
}

// save writes the current state. A failed write keeps the session going on
// the in-memory state.
func (p *Planner) save() {
	p.saveErr = p.store.Save(p.document())
	if p.saveErr != nil {
		p.log.Warn("continuing with unsaved changes", "err", p.saveErr)
	}
}

// LastSaveError is the error of the most recent save, nil if it succeeded
func (p *Planner) LastSaveError() error {
	return p.saveErr
}

func (p *Planner) Snapshot() Snapshot {
	s := Snapshot{
		Year:              p.year,
		Layers:            p.registry.Layers(),
		TotalVacationDays: p.total,
		VacationDaysUsed:  p.VacationDaysUsed(),
		YearDates:         map[plan.ID][]string{},
	}
	for _, l := range s.Layers {
		s.YearDates[l.ID] = p.DatesForYear(l.ID)
	}
	if a, ok := p.selection.Current(); ok {
		s.Armed = &a
	}
	return s
}

func (p *Planner) Year() int {
	return p.year
}

func (p *Planner) SetYear(year int) {
	p.year = year
}

func (p *Planner) Layer(id plan.ID) (plan.Layer, bool) {
	return p.registry.Get(id)
}

// VacationDaysUsed counts default layer dates in the viewed year
func (p *Planner) VacationDaysUsed() int {
	return p.registry.CountForYear(plan.DefaultID, p.year)
}

func (p *Planner) TotalVacationDays() int {
	return p.total
}

// OverBudget is only informational, adding more days is never blocked
func (p *Planner) OverBudget() bool {
	return p.VacationDaysUsed() > p.total
}

// DatesForYear returns the layer's dates within the viewed year
func (p *Planner) DatesForYear(id plan.ID) []string {
	return p.registry.DatesForYear(id, p.year)
}

func (p *Planner) CountForYear(id plan.ID) int {
	return p.registry.CountForYear(id, p.year)
}

// LayersOn returns the active layers covering day, outermost first
func (p *Planner) LayersOn(day calendar.Day) []plan.Layer {
	return p.registry.LayersCoveringDate(day.ISO())
}

func (p *Planner) Armed() (selection.Armed, bool) {
	return p.selection.Current()
}
