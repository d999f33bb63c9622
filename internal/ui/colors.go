package ui

import "github.com/charmbracelet/lipgloss"

const (
	Background = lipgloss.Color("#000")

	Primary   = lipgloss.Color("#fff")
	Secondary = lipgloss.Color("#888")
	Faded     = lipgloss.Color("#555")

	Blue   = lipgloss.Color("#4db7ff")
	Green  = lipgloss.Color("#00a352")
	Red    = lipgloss.Color("#c42912")
	Yellow = lipgloss.Color("#c4b810")
	Orange = lipgloss.Color("#c27510")
)

// Palette is offered when creating a layer, the first entry is the default
var Palette = []string{
	"#3b82f6", // blue
	"#f97316", // orange
	"#a855f7", // purple
	"#ef4444", // red
	"#eab308", // yellow
	"#14b8a6", // teal
	"#ec4899", // pink
	"#4ade80", // green
}

// NextColor cycles through Palette starting after current
func NextColor(current string) string {
	for i, c := range Palette {
		if c == current {
			return Palette[(i+1)%len(Palette)]
		}
	}
	return Palette[0]
}
