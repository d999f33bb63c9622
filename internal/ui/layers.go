package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/selection"
)

var (
	LayerTitle  = lipgloss.NewStyle().Bold(true)
	HiddenTitle = lipgloss.NewStyle().Foreground(Secondary).Strikethrough(true)
	LayerCount  = lipgloss.NewStyle().Foreground(Blue)

	LayerDivider = lipgloss.NewStyle().Foreground(Faded).Padding(0, 1).Render("∙")
	armedAdd     = lipgloss.NewStyle().Foreground(Green).Bold(true).Render("+ adding")
	armedRemove  = lipgloss.NewStyle().Foreground(Orange).Bold(true).Render("- removing")

	StatusError = lipgloss.NewStyle().Foreground(Red)
	StatusInfo  = lipgloss.NewStyle().Foreground(Secondary)
)

// Swatch is a coloured dot for a layer colour
func Swatch(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("●")
}

// LayerRow renders one line of the layers panel
func LayerRow(l plan.Layer, count int, selected bool, armed *selection.Armed) string {
	check := "[ ]"
	title := HiddenTitle
	if l.Active {
		check = "[x]"
		title = LayerTitle
	}
	if selected {
		title = title.Copy().Background(Faded)
	}
	s := check + " " + Swatch(l.Color) + " " + title.Render(l.Name)
	s += LayerDivider + LayerCount.Render(fmt.Sprint(count))
	if armed != nil && armed.Layer == l.ID {
		s += LayerDivider
		if armed.Mode == selection.Add {
			s += armedAdd
		} else {
			s += armedRemove
		}
	}
	return s
}

// LayerList renders all layers with the row at cursor highlighted
func LayerList(layers []plan.Layer, counts map[plan.ID]int, cursor int, armed *selection.Armed) string {
	rows := make([]string, len(layers))
	for i, l := range layers {
		rows[i] = LayerRow(l, counts[l.ID], i == cursor, armed)
	}
	return strings.Join(rows, "\n")
}

// Legend lists the active layers with their colours, in ring order
func Legend(layers []plan.Layer) string {
	parts := []string{}
	for _, l := range layers {
		if l.Active {
			parts = append(parts, Swatch(l.Color)+" "+l.Name)
		}
	}
	return strings.Join(parts, "  ")
}
