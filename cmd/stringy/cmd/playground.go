// File: playground.go
// Title: Playground Command
// Description: Starts the interactive preview of every conversion.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/stringy/internal/tui"
)

func newPlaygroundCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "playground [text...]",
		Aliases: []string{"tui"},
		Short:   "Preview every conversion interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			model := tui.NewModel(strings.Join(args, " "), a.settings.Encoding, a.settings.Options())

			a.log.Debug("starting playground", "encoding", a.settings.Encoding)
			p := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			_, err := p.Run()
			return err
		},
	}
}
