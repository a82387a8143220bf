// Package tui provides the interactive Bubble Tea converter screen.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattsmi/cjdn/internal/calendar"
	"github.com/muesli/reflow/wordwrap"
	"github.com/pkg/browser"
)

// referenceURL documents the derivation of the conversion formulas.
const referenceURL = "https://aa.quae.nl/en/reken/juliaansedag.html"

const aboutText = "Type an ISO date (YYYY-MM-DD, minus sign for BC years) to convert it " +
	"from the selected calendar, or a bare integer to treat it as a CJDN. " +
	"Results update as you type."

// inputCalendars is the tab cycle order for the input calendar selector.
var inputCalendars = []calendar.System{calendar.Gregorian, calendar.Milankovic, calendar.Julian}

// Model is the single-screen converter model.
type Model struct {
	input  textinput.Model
	keymap KeyMap
	help   helpOverlay

	selected int // index into inputCalendars

	res    Result
	hasRes bool
	err    error

	width    int
	height   int
	showHelp bool
}

// NewModel creates the converter model with the date input focused.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "2000-01-01 or 2451545"
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 24

	keymap := DefaultKeyMap()

	return Model{
		input:  ti,
		keymap: keymap,
		help:   newHelpOverlay(keymap),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keymap.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keymap.OpenRef):
			_ = browser.OpenURL(referenceURL)
			return m, nil

		case key.Matches(msg, m.keymap.NextCalendar):
			m.selected = (m.selected + 1) % len(inputCalendars)
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keymap.PrevCalendar):
			m.selected = (m.selected + len(inputCalendars) - 1) % len(inputCalendars)
			m.recompute()
			return m, nil

		case key.Matches(msg, m.keymap.Submit):
			m.recompute()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.recompute()
	return m, cmd
}

// recompute refreshes the result panel from the current input. An empty
// input clears the panel instead of reporting an error.
func (m *Model) recompute() {
	if strings.TrimSpace(m.input.Value()) == "" {
		m.hasRes = false
		m.err = nil
		return
	}
	res, err := Resolve(m.input.Value(), m.system())
	if err != nil {
		m.hasRes = false
		m.err = err
		return
	}
	m.res = res
	m.hasRes = true
	m.err = nil
}

func (m Model) system() calendar.System {
	return inputCalendars[m.selected]
}

// View renders the converter screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("cjdn — calendar converter"))
	b.WriteString("\n")

	wrapWidth := m.width - 2
	if wrapWidth < 20 {
		wrapWidth = 76
	}
	b.WriteString(LabelStyle.Render(wordwrap.String(aboutText, wrapWidth)))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.viewCalendarSelector())
	b.WriteString("\n")

	switch {
	case m.err != nil:
		b.WriteString("\n" + ErrorStyle.Render(m.err.Error()) + "\n")
	case m.hasRes:
		b.WriteString(m.viewResult())
	}

	if m.showHelp {
		b.WriteString("\n" + m.help.View(m.width))
	} else {
		b.WriteString(HelpStyle.Render("\ntab: calendar • f1: help • esc: quit"))
	}

	return b.String()
}

// viewCalendarSelector renders the tab-cycled input calendar row.
func (m Model) viewCalendarSelector() string {
	items := make([]string, 0, len(inputCalendars))
	for i, sys := range inputCalendars {
		name := sys.String()
		if i == m.selected {
			items = append(items, SelectedItemStyle.Render("["+name+"]"))
		} else {
			items = append(items, NormalItemStyle.Render(" "+name+" "))
		}
	}
	return LabelStyle.Render("input calendar: ") + strings.Join(items, " ")
}

// viewResult renders the result panel.
func (m Model) viewResult() string {
	r := m.res

	row := func(label, value string) string {
		return LabelStyle.Render(fmt.Sprintf("%-16s", label)) + ValueStyle.Render(value)
	}

	rows := []string{
		row("CJDN", fmt.Sprintf("%d", r.CJDN)),
		row("weekday", fmt.Sprintf("%d (%s)", r.Weekday, calendar.WeekdayName(r.Weekday))),
		row("gregorian", r.Gregorian.String()+leapMark(calendar.Gregorian, r.Gregorian.Year)),
		row("milankovic", r.Milankovic.String()+leapMark(calendar.Milankovic, r.Milankovic.Year)),
		row("julian", r.Julian.String()+leapMark(calendar.Julian, r.Julian.Year)),
		row("western easter", r.WesternEaster.String()),
		row("orthodox easter", r.OrthodoxEaster.String()),
	}
	panel := ResultPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	if r.Note != "" {
		wrapWidth := m.width - 2
		if wrapWidth < 20 {
			wrapWidth = 76
		}
		panel += "\n" + NoteStyle.Render(wordwrap.String(r.Note, wrapWidth))
	}
	return panel
}

// leapMark annotates a year that is a leap year on the given calendar.
func leapMark(s calendar.System, year int) string {
	if s.IsLeap(year) {
		return " (leap year)"
	}
	return ""
}
