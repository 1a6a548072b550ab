// File: playground.go
// Title: Interactive Playground
// Description: Bubbletea model that previews every conversion of the text
//              typed into its input line, grouped into tabs.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/msto63/stringy/foundation/utils/stringx"
	"github.com/msto63/stringy/internal/convert"
)

// View represents the tabs of the playground
type View int

const (
	ViewCase View = iota
	ViewLayout
	ViewMarkup
	ViewInspect
	viewCount
)

var viewTitles = [...]string{"Case", "Layout", "Markup", "Inspect"}

// String returns the tab title
func (v View) String() string {
	if v < 0 || v >= viewCount {
		return "Unknown"
	}
	return viewTitles[v]
}

// group maps a conversion tab to its catalog group
func (v View) group() convert.Group {
	switch v {
	case ViewCase:
		return convert.GroupCase
	case ViewLayout:
		return convert.GroupLayout
	default:
		return convert.GroupMarkup
	}
}

// chromeHeight is the number of lines taken by header, input and footer
const chromeHeight = 9

// Model is the playground model
type Model struct {
	view   View
	width  int
	height int
	ready  bool

	input    textinput.Model
	viewport viewport.Model

	encoding string
	opts     convert.Options
	content  string
}

// NewModel creates a playground starting with text, tagging values with
// encoding and running conversions with opts.
func NewModel(text, encoding string, opts convert.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Type some text..."
	ti.CharLimit = 4000
	ti.Width = 60
	ti.SetValue(text)
	ti.Focus()

	m := Model{
		view:     ViewCase,
		input:    ti,
		encoding: encoding,
		opts:     opts,
	}
	m.content = m.renderContent()
	return m
}

// Value returns the current input as a string value
func (m Model) Value() stringx.Value {
	return stringx.New(m.input.Value(), m.encoding)
}

// CurrentView returns the active tab
func (m Model) CurrentView() View {
	return m.view
}

// Content returns the rendered preview of the active tab
func (m Model) Content() string {
	return m.content
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab":
			m.view = (m.view + 1) % viewCount
			m.refresh()
			return m, nil

		case "shift+tab":
			m.view = (m.view + viewCount - 1) % viewCount
			m.refresh()
			return m, nil

		case "ctrl+l":
			m.input.Reset()
			m.refresh()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		height := max(msg.Height-chromeHeight, 1)
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.input.Width = max(msg.Width-8, 10)
		m.viewport.SetContent(m.content)
	}

	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	if m.input.Value() != before {
		m.refresh()
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// refresh recomputes the preview for the current input and tab
func (m *Model) refresh() {
	m.content = m.renderContent()
	if m.ready {
		m.viewport.SetContent(m.content)
		m.viewport.GotoTop()
	}
}

func (m Model) renderContent() string {
	v := m.Value()
	if m.view == ViewInspect {
		return lipgloss.JoinHorizontal(lipgloss.Top,
			CodepointTable(convert.Codepoints(v)), "  ",
			PredicateTable(convert.Predicates(v)))
	}
	return ResultList(convert.Run(v, m.view.group(), m.opts))
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var s strings.Builder
	s.WriteString(m.renderHeader())
	s.WriteString("\n")
	s.WriteString(FocusedInputStyle.Render(m.input.View()))
	s.WriteString("\n")
	s.WriteString(m.viewport.View())
	s.WriteString("\n")
	s.WriteString(m.renderFooter())
	return s.String()
}

func (m Model) renderHeader() string {
	tabs := make([]string, 0, viewCount)
	for v := ViewCase; v < viewCount; v++ {
		if v == m.view {
			tabs = append(tabs, ActiveTabStyle.Render(v.String()))
		} else {
			tabs = append(tabs, TabStyle.Render(v.String()))
		}
	}

	title := TitleStyle.Render("stringy playground")
	return lipgloss.JoinVertical(lipgloss.Left, title, lipgloss.JoinHorizontal(lipgloss.Top, tabs...))
}

func (m Model) renderFooter() string {
	v := m.Value()
	status := StatusBarStyle.Render(fmt.Sprintf("%d codepoints | %s", v.Len(), v.Encoding()))
	help := RenderHelp("tab/shift+tab: switch view | ctrl+l: clear | esc: quit")
	return lipgloss.JoinVertical(lipgloss.Left, status, help)
}
