package dateinput

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/td0m/vacation/pkg/calendar"
)

var (
	indicator = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	checkmark = indicator.Copy().
			Foreground(lipgloss.AdaptiveColor{Light: "#00ad3b", Dark: "#73F59F"}).
			Render("✓")

	cross = indicator.Copy().
		Foreground(lipgloss.AdaptiveColor{Light: "", Dark: "#FF5047"}).
		Render("✗")

	faded = lipgloss.AdaptiveColor{Light: "#666", Dark: "#999"}
)

// Model is a one line input that parses what is typed into a day
type Model struct {
	i     textinput.Model
	today calendar.Day
	value *calendar.Day
}

func NewModel(today calendar.Day) Model {
	i := textinput.NewModel()
	i.Focus()
	i.CharLimit = 20
	i.Prompt = ""
	i.Placeholder = "today, fri, in 2 weeks, 24 dec"
	return Model{
		i:     i,
		today: today,
	}
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		m.i, cmd = m.i.Update(msg)
		m.value = nil
		if d, err := Parse(m.i.Value(), m.today); err == nil {
			m.value = &d
		}
		return m, cmd
	}
	return m, nil
}

// View renders the input with a parse indicator
func (m Model) View() string {
	indicator := cross
	if m.i.Value() == "" {
		indicator = ""
	} else if m.value != nil {
		indicator = checkmark + " " + m.value.Time().Format("Mon 2 Jan 2006")
	}
	return lipgloss.NewStyle().Foreground(faded).Render("go to: ") + m.i.View() + indicator
}

// Value returns the parsed day, or nil while the input does not parse
func (m Model) Value() *calendar.Day {
	return m.value
}

func (m *Model) Reset(today calendar.Day) {
	m.today = today
	m.value = nil
	m.i.SetValue("")
}
