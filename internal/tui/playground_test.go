// File: playground_test.go
// Title: Playground Tests
// Description: Drives the playground model with key and window messages.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/stringy/internal/convert"
)

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	pm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T; want Model", next)
	}
	return pm, cmd
}

func TestNewModel(t *testing.T) {
	m := NewModel("string_with1number", "utf-8", convert.DefaultOptions())

	if m.CurrentView() != ViewCase {
		t.Errorf("CurrentView() = %v; want %v", m.CurrentView(), ViewCase)
	}
	if got := m.Value().Encoding(); got != "UTF-8" {
		t.Errorf("Value().Encoding() = %q; want UTF-8", got)
	}
	if !strings.Contains(m.Content(), "stringWith1Number") {
		t.Errorf("Content() missing camelized preview:\n%s", m.Content())
	}
	if m.View() != "Loading..." {
		t.Errorf("View() before sizing = %q; want Loading...", m.View())
	}
}

func TestViewCycling(t *testing.T) {
	m := NewModel("Grüße aus Köln", "UTF-8", convert.DefaultOptions())

	tests := []struct {
		key      tea.KeyType
		want     View
		contains string
	}{
		{tea.KeyTab, ViewLayout, "Grüße aus Köln"},
		{tea.KeyTab, ViewMarkup, "grusse-aus-koln"},
		{tea.KeyTab, ViewInspect, "U+00FC"},
		{tea.KeyTab, ViewCase, "grüßeAusKöln"},
		{tea.KeyShiftTab, ViewInspect, "U+00DF"},
	}

	for _, tt := range tests {
		m, _ = update(t, m, tea.KeyMsg{Type: tt.key})
		if m.CurrentView() != tt.want {
			t.Fatalf("after %v CurrentView() = %v; want %v", tt.key, m.CurrentView(), tt.want)
		}
		if !strings.Contains(m.Content(), tt.contains) {
			t.Errorf("%v content missing %q:\n%s", tt.want, tt.contains, m.Content())
		}
	}
}

func TestTypingRefreshesPreview(t *testing.T) {
	m := NewModel("", "UTF-8", convert.DefaultOptions())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("TestDCase")})
	if got := m.Value().String(); got != "TestDCase" {
		t.Fatalf("Value() = %q; want TestDCase", got)
	}
	if !strings.Contains(m.Content(), "test-d-case") {
		t.Errorf("Content() missing dasherized preview:\n%s", m.Content())
	}

	view := m.View()
	for _, want := range []string{"stringy playground", "Case", "9 codepoints | UTF-8"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	if m.Value().Len() != 0 {
		t.Errorf("ctrl+l left %q", m.Value().String())
	}
}

func TestQuit(t *testing.T) {
	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		m := NewModel("x", "UTF-8", convert.DefaultOptions())
		_, cmd := update(t, m, tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Fatalf("%v returned no command", key)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("%v did not quit", key)
		}
	}
}

func TestViewString(t *testing.T) {
	if ViewInspect.String() != "Inspect" || View(42).String() != "Unknown" {
		t.Errorf("View.String() = %q, %q", ViewInspect.String(), View(42).String())
	}
}

func TestTables(t *testing.T) {
	cps := []convert.Codepoint{{Index: 0, Negative: -1, Rune: 'ř'}}
	out := CodepointTable(cps)
	for _, want := range []string{"INDEX", "CODEPOINT", "ř", "U+0159", "-1"} {
		if !strings.Contains(out, want) {
			t.Errorf("CodepointTable missing %q:\n%s", want, out)
		}
	}

	out = PredicateTable([]convert.Predicate{{Name: "alpha", Holds: true}, {Name: "json", Holds: false}})
	for _, want := range []string{"PREDICATE", "alpha", "yes", "json", "no"} {
		if !strings.Contains(out, want) {
			t.Errorf("PredicateTable missing %q:\n%s", want, out)
		}
	}
}
