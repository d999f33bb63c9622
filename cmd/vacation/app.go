package main

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/td0m/vacation/internal/ui"
	"github.com/td0m/vacation/pkg/calendar"
	"github.com/td0m/vacation/pkg/dateinput"
	"github.com/td0m/vacation/pkg/plan"
	"github.com/td0m/vacation/pkg/planner"
	"github.com/td0m/vacation/pkg/selection"
)

const (
	headerHeight = 3
	footerHeight = 3
)

const (
	tabCalendar = iota
	tabLayers
)

type mode int

const (
	modeNormal mode = iota
	modeNew
	modeEdit
	modeConfirmDelete
	modeGoto
)

type app struct {
	mode mode

	viewport  viewport.Model
	tabs      ui.Tabs
	nameinput textinput.Model
	color     string
	jump      dateinput.Model

	cursor      calendar.Day
	layerCursor int
	editing     plan.ID

	status    string
	statusErr bool

	planner *planner.Planner
}

func newApp(p *planner.Planner, today calendar.Day) *app {
	i := textinput.NewModel()
	i.Prompt = ""
	i.Placeholder = "Layer name"
	i.CharLimit = 40
	i.Width = 30

	cursor := today
	if cursor.Year != p.Year() {
		cursor = calendar.New(p.Year(), 1, 1)
	}
	return &app{
		viewport:  viewport.Model{},
		tabs:      ui.NewTabs([]string{"Calendar", "Layers"}),
		nameinput: i,
		jump:      dateinput.NewModel(today),
		cursor:    cursor,
		planner:   p,
	}
}

// Init is the first function that will be called. It returns an optional
// initial command. To not perform an initial command return nil.
func (m *app) Init() tea.Cmd {
	return nil
}

// Update is called when a message is received. Use it to inspect messages
// and, in response, update the model and/or send a command.
func (m *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		verticalMargins := headerHeight + footerHeight
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - verticalMargins
		m.tabs.Width = msg.Width
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.cancel()
		default:
			cmd = m.keyUpdate(msg)
		}
	}
	m.render()
	return m, cmd
}

func (m *app) cancel() {
	if m.mode == modeNormal {
		m.planner.Disarm()
		m.info("selection cleared")
		return
	}
	m.mode = modeNormal
	m.nameinput.Blur()
	m.info("")
}

// handle keys differently based on the current mode
func (m *app) keyUpdate(msg tea.KeyMsg) tea.Cmd {
	var cmd tea.Cmd
	switch m.mode {
	case modeNew, modeEdit:
		switch msg.Type {
		case tea.KeyEnter:
			m.submitForm()
		case tea.KeyTab:
			m.color = ui.NextColor(m.color)
		default:
			m.nameinput, cmd = m.nameinput.Update(msg)
		}
	case modeConfirmDelete:
		if msg.String() == "y" {
			m.deleteLayer()
		} else {
			m.info("delete cancelled")
		}
		m.mode = modeNormal
	case modeGoto:
		if msg.Type == tea.KeyEnter {
			if d := m.jump.Value(); d != nil {
				m.setCursor(*d)
				m.mode = modeNormal
			}
			return nil
		}
		m.jump, cmd = m.jump.Update(msg)
	case modeNormal:
		switch msg.String() {
		case "q":
			return tea.Quit
		case "tab":
			m.tabs.Next()
		case "alt+1":
			m.tabs.Set(tabCalendar)
		case "alt+2":
			m.tabs.Set(tabLayers)
		case "a":
			m.arm(selection.Add)
		case "r":
			m.arm(selection.Remove)
		case "n":
			m.startNew()
		case "/":
			m.mode = modeGoto
			m.jump.Reset(calendar.Today())
		default:
			if m.tabs.Value() == tabCalendar {
				m.calendarKey(msg.String())
			} else {
				m.layersKey(msg.String())
			}
		}
	}
	return cmd
}

func (m *app) calendarKey(key string) {
	switch key {
	case "h", "left":
		m.setCursor(m.cursor.AddDays(-1))
	case "l", "right":
		m.setCursor(m.cursor.AddDays(1))
	case "k", "up":
		m.setCursor(m.cursor.AddDays(-7))
	case "j", "down":
		m.setCursor(m.cursor.AddDays(7))
	case "H":
		m.setCursor(m.cursor.AddMonths(-1))
	case "L":
		m.setCursor(m.cursor.AddMonths(1))
	case "[":
		m.setCursor(m.cursor.AddMonths(-12))
	case "]":
		m.setCursor(m.cursor.AddMonths(12))
	case "g":
		m.setCursor(calendar.Today())
	case "enter", " ":
		m.click()
	}
}

func (m *app) layersKey(key string) {
	layers := m.planner.Snapshot().Layers
	switch key {
	case "j", "down":
		m.layerCursor = clamp(m.layerCursor+1, 0, len(layers)-1)
	case "k", "up":
		m.layerCursor = clamp(m.layerCursor-1, 0, len(layers)-1)
	case " ":
		if l, ok := m.atCursor(); ok {
			m.report(m.planner.ToggleLayer(l.ID))
		}
	case "e":
		m.startEdit()
	case "d", "delete":
		m.confirmDelete()
	case "+":
		m.report(m.planner.SetTotalVacationDays(m.planner.TotalVacationDays() + 1))
	case "-":
		m.report(m.planner.SetTotalVacationDays(m.planner.TotalVacationDays() - 1))
	}
}

func (m *app) setCursor(d calendar.Day) {
	m.cursor = d
	if d.Year != m.planner.Year() {
		m.planner.SetYear(d.Year)
	}
}

func (m *app) atCursor() (plan.Layer, bool) {
	layers := m.planner.Snapshot().Layers
	if m.layerCursor < 0 || m.layerCursor >= len(layers) {
		return plan.Layer{}, false
	}
	return layers[m.layerCursor], true
}

func (m *app) arm(mode selection.Mode) {
	l, ok := m.atCursor()
	if !ok {
		return
	}
	m.report(m.planner.Arm(l.ID, mode))
	if a, armed := m.planner.Armed(); armed {
		m.info(string(a.Mode) + " dates: " + l.Name)
	} else {
		m.info("selection cleared")
	}
}

func (m *app) click() {
	if _, armed := m.planner.Armed(); !armed {
		m.info("arm a layer with a or r first")
		return
	}
	m.planner.ClickDay(m.cursor)
	m.reportSave()
}

func (m *app) startNew() {
	m.mode = modeNew
	m.color = ui.Palette[0]
	m.nameinput.SetValue("")
	m.nameinput.Focus()
	m.info("")
}

func (m *app) startEdit() {
	l, ok := m.atCursor()
	if !ok {
		return
	}
	m.mode = modeEdit
	m.editing = l.ID
	m.color = l.Color
	m.nameinput.SetValue(l.Name)
	m.nameinput.SetCursor(len(l.Name))
	m.nameinput.Focus()
	m.info("")
}

func (m *app) submitForm() {
	var err error
	switch m.mode {
	case modeNew:
		var l plan.Layer
		l, err = m.planner.CreateLayer(m.nameinput.Value(), m.color)
		if err == nil {
			m.layerCursor = len(m.planner.Snapshot().Layers) - 1
			m.info("created " + l.Name)
		}
	case modeEdit:
		err = m.planner.UpdateLayer(m.editing, m.nameinput.Value(), m.color)
	}
	if err != nil {
		// keep the form open so the name can be fixed
		m.fail(err)
		return
	}
	m.mode = modeNormal
	m.nameinput.Blur()
	m.reportSave()
}

func (m *app) confirmDelete() {
	l, ok := m.atCursor()
	if !ok {
		return
	}
	if l.ID == plan.DefaultID {
		m.fail(plan.ErrProtected)
		return
	}
	m.editing = l.ID
	m.mode = modeConfirmDelete
	m.info("delete " + l.Name + "? (y/n)")
}

func (m *app) deleteLayer() {
	if err := m.planner.DeleteLayer(m.editing); err != nil {
		m.fail(err)
		return
	}
	layers := m.planner.Snapshot().Layers
	m.layerCursor = clamp(m.layerCursor, 0, len(layers)-1)
	m.info("layer deleted")
	m.reportSave()
}

func (m *app) report(err error) {
	if err != nil {
		m.fail(err)
		return
	}
	m.reportSave()
}

// reportSave surfaces a failed save without blocking anything
func (m *app) reportSave() {
	if err := m.planner.LastSaveError(); err != nil {
		m.fail(errors.New("changes not saved, they are kept until you quit"))
	}
}

func (m *app) info(s string) {
	m.status = s
	m.statusErr = false
}

func (m *app) fail(err error) {
	m.status = err.Error()
	m.statusErr = true
}

func (m *app) render() {
	snap := m.planner.Snapshot()
	m.tabs.Info = ui.Budget(snap.VacationDaysUsed, snap.TotalVacationDays)
	switch m.tabs.Value() {
	case tabCalendar:
		m.viewport.SetContent(ui.YearGrid(snap.Year, m.cursor, m.planner.LayersOn))
		m.scrollToCursor()
	case tabLayers:
		counts := map[plan.ID]int{}
		for _, l := range snap.Layers {
			counts[l.ID] = m.planner.CountForYear(l.ID)
		}
		m.viewport.SetContent(ui.LayerList(snap.Layers, counts, m.layerCursor, snap.Armed))
		m.viewport.YOffset = max(0, m.layerCursor-m.viewport.Height+1)
	}
}

// scrollToCursor keeps the row of months holding the cursor visible
func (m *app) scrollToCursor() {
	rowHeight := 10
	top := (int(m.cursor.Month) - 1) / 4 * rowHeight
	if top < m.viewport.YOffset {
		m.viewport.YOffset = top
	}
	if top+rowHeight > m.viewport.YOffset+m.viewport.Height {
		m.viewport.YOffset = max(0, top+rowHeight-m.viewport.Height)
	}
}

// View renders the program's UI, which is just a string. The view is
// rendered after every Update.
func (m *app) View() string {
	snap := m.planner.Snapshot()
	var footer string
	switch m.mode {
	case modeNew, modeEdit:
		label := "new layer: "
		if m.mode == modeEdit {
			label = "edit layer: "
		}
		footer = label + m.nameinput.View() + " " + ui.Swatch(m.color) + ui.StatusInfo.Render(" tab: colour, enter: save, esc: cancel")
	case modeGoto:
		footer = m.jump.View()
	default:
		footer = ui.Legend(snap.Layers)
	}
	status := ui.StatusInfo.Render(m.status)
	if m.statusErr {
		status = ui.StatusError.Render(m.status)
	}
	return m.tabs.View() + m.viewport.View() + "\n" + footer + "\n" + strings.TrimRight(status, "\n")
}

func clamp(v, low, high int) int {
	return min(high, max(low, v))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
