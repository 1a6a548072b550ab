// File: inspect.go
// Title: Inspect Command
// Description: Prints the codepoints of text with both indexes and its
//              classification predicates as tables.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/stringy/internal/convert"
	"github.com/msto63/stringy/internal/tui"
)

func newInspectCmd(a *app) *cobra.Command {
	var noPredicates bool

	cmd := &cobra.Command{
		Use:     "inspect [text...]",
		Short:   "Show codepoints and classification of text",
		Example: `  stringy inspect "fòô bàř"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			v := a.value(text)
			a.log.Debug("inspecting", "codepoints", v.Len(), "encoding", v.Encoding())

			writeLine(cmd, fmt.Sprintf("%d codepoints, encoding %s", v.Len(), v.Encoding()))
			writeLine(cmd, tui.CodepointTable(convert.Codepoints(v)))
			if !noPredicates {
				writeLine(cmd, tui.PredicateTable(convert.Predicates(v)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&noPredicates, "no-predicates", false, "omit the predicate table")
	return cmd
}
