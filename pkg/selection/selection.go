package selection

import (
	"fmt"

	"github.com/td0m/vacation/pkg/plan"
)

type Mode string

const (
	Add    Mode = "add"
	Remove Mode = "remove"
)

func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Add, Remove:
		return Mode(s), nil
	}
	return "", fmt.Errorf("invalid selection mode %q", s)
}

// Armed is the (layer, mode) pair that day clicks apply to
type Armed struct {
	Layer plan.ID
	Mode  Mode
}

// Controller tracks at most one armed pair. The zero value is idle.
type Controller struct {
	armed *Armed
}

// Arm arms the given pair. Arming the pair that is already armed
// disarms it, arming anything else replaces the current pair.
func (c *Controller) Arm(layer plan.ID, mode Mode) {
	if c.IsArmed(layer, mode) {
		c.armed = nil
		return
	}
	c.armed = &Armed{Layer: layer, Mode: mode}
}

func (c *Controller) Disarm() {
	c.armed = nil
}

// DisarmIfTarget disarms only when layer is the armed target
func (c *Controller) DisarmIfTarget(layer plan.ID) {
	if c.armed != nil && c.armed.Layer == layer {
		c.armed = nil
	}
}

func (c Controller) Current() (Armed, bool) {
	if c.armed == nil {
		return Armed{}, false
	}
	return *c.armed, true
}

func (c Controller) IsArmed(layer plan.ID, mode Mode) bool {
	return c.armed != nil && c.armed.Layer == layer && c.armed.Mode == mode
}
