// File: table.go
// Title: Inspection Tables
// Description: Renders codepoint and predicate listings as lipgloss tables.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package tui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/stringy/internal/convert"
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorMuted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return HeaderStyle
			}
			return CellStyle
		}).
		Headers(headers...)
}

// CodepointTable renders one row per codepoint with both indexes.
func CodepointTable(cps []convert.Codepoint) string {
	t := newTable("INDEX", "NEG", "CHAR", "CODEPOINT")
	for _, c := range cps {
		t.Row(strconv.Itoa(c.Index), strconv.Itoa(c.Negative), c.Display(), c.Hex())
	}
	return t.Render()
}

// PredicateTable renders the classification summary.
func PredicateTable(ps []convert.Predicate) string {
	t := newTable("PREDICATE", "RESULT")
	for _, p := range ps {
		t.Row(p.Name, RenderBool(p.Holds))
	}
	return t.Render()
}

// ResultList renders conversion results as aligned name/output lines.
func ResultList(results []convert.Result) string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top,
			NameStyle.Render(r.Name), OutputStyle.Render(r.Output)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
