package plan

import (
	"errors"
	"strings"
)

type LayerManager interface {
	SetLayers([]Layer)
	Layers() []Layer
	Get(ID) (Layer, bool)

	Create(name, color string) (Layer, error)
	Update(id ID, name, color string) error
	ToggleActive(ID) error
	Delete(ID) error

	Toggle(id ID, iso string, add bool) bool
	DatesForYear(ID, int) []string
	CountForYear(ID, int) int
	LayersCoveringDate(iso string) []Layer
}

var _ LayerManager = &Registry{}

var (
	ErrEmptyName = errors.New("layer name cannot be empty")
	ErrNotFound  = errors.New("layer not found")
	ErrProtected = errors.New("cannot delete the default layer")
)

// Registry holds the working set of layers in display order.
// The default layer is present after every operation.
type Registry struct {
	layers []Layer
	newID  func() ID
}

func NewRegistry(layers ...Layer) *Registry {
	r := &Registry{newID: NewID}
	r.SetLayers(layers)
	return r
}

// SetLayers replaces the working set. Only the first layer of any id is kept.
func (r *Registry) SetLayers(ls []Layer) {
	r.layers = WithDefault(unique(cloneAll(ls)))
}

// Layers returns a copy of all layers, safe to hand to views
func (r *Registry) Layers() []Layer {
	return cloneAll(r.layers)
}

func (r *Registry) Get(id ID) (Layer, bool) {
	i := indexOf(r.layers, id)
	if i < 0 {
		return Layer{}, false
	}
	return r.layers[i].clone(), true
}

// MergeIncoming reconciles a layer list coming from a view with the
// persisted one. Dates always come from previous; everything else from updated.
// Layers only known to previous are kept, so partial lists never drop data.
func MergeIncoming(updated, previous []Layer) []Layer {
	out := make([]Layer, 0, len(updated)+1)
	seen := map[ID]bool{}
	for _, l := range updated {
		if seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		merged := l.clone()
		if i := indexOf(previous, l.ID); i >= 0 {
			merged.Dates = previous[i].clone().Dates
		}
		if merged.Dates == nil {
			merged.Dates = []string{}
		}
		out = append(out, merged)
	}
	for _, l := range previous {
		if seen[l.ID] || l.ID == DefaultID {
			continue
		}
		seen[l.ID] = true
		out = append(out, l.clone())
	}
	if !seen[DefaultID] {
		if i := indexOf(previous, DefaultID); i >= 0 {
			return append(out, previous[i].clone())
		}
	}
	return WithDefault(out)
}

func (r *Registry) uniqueID() ID {
	for {
		id := r.newID()
		if indexOf(r.layers, id) < 0 {
			return id
		}
	}
}

func (r *Registry) Create(name, color string) (Layer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Layer{}, ErrEmptyName
	}
	l := Layer{
		ID:     r.uniqueID(),
		Name:   name,
		Color:  color,
		Active: true,
		Dates:  []string{},
	}
	r.layers = append(r.layers, l)
	return l.clone(), nil
}

// Update changes name and color only, dates are left alone
func (r *Registry) Update(id ID, name, color string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	i := indexOf(r.layers, id)
	if i < 0 {
		return ErrNotFound
	}
	r.layers[i].Name = name
	r.layers[i].Color = color
	return nil
}

func (r *Registry) ToggleActive(id ID) error {
	i := indexOf(r.layers, id)
	if i < 0 {
		return ErrNotFound
	}
	r.layers[i].Active = !r.layers[i].Active
	return nil
}

func (r *Registry) Delete(id ID) error {
	if id == DefaultID {
		return ErrProtected
	}
	i := indexOf(r.layers, id)
	if i < 0 {
		return ErrNotFound
	}
	r.layers = append(r.layers[:i], r.layers[i+1:]...)
	return nil
}
