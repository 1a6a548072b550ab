// File: search.go
// Title: Search Command
// Description: Codepoint index lookups, containment and prefix tests, and
//              extraction between delimiters.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/stringx"
)

var searchModes = []string{"between", "contains", "ends", "index", "last", "starts"}

func newSearchCmd(a *app) *cobra.Command {
	var (
		ignoreCase bool
		offset     int
	)

	cmd := &cobra.Command{
		Use:   "search <mode> <needle> [text...]",
		Short: "Search text by codepoints",
		Long: `Search text by codepoints. Modes:
  index     first codepoint index of needle at or after --offset, or -1
  last      last codepoint index of needle, or -1
  contains  whether needle occurs
  starts    whether the text starts with needle
  ends      whether the text ends with needle
  between   the text between needle and the next argument, which is the
            end delimiter: search between <start> <end> [text...]`,
		Example: `  stringy search index bàř "fòô bàř"
  stringy search between "{" "}" "A description of {foo} goes here"`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, needle, rest := args[0], args[1], args[2:]

			var end string
			if mode == "between" {
				if len(rest) == 0 {
					return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
						Operation("search").
						Code(mdwerror.CodeInvalidArgument).
						Message("between requires an end delimiter argument").
						Build()
				}
				end, rest = rest[0], rest[1:]
			}

			text, err := readInput(cmd, rest)
			if err != nil {
				return err
			}

			a.log.Debug("searching", "mode", mode, "ignore_case", ignoreCase, "offset", offset)
			out, err := search(a.value(text), mode, needle, end, offset, !ignoreCase)
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&ignoreCase, "ignore-case", "i", false, "compare case-insensitively")
	cmd.Flags().IntVar(&offset, "offset", 0, "codepoint offset for index, last and between")
	return cmd
}

// search runs one search mode and returns its printable result
func search(v stringx.Value, mode, needle, end string, offset int, caseSensitive bool) (interface{}, error) {
	switch mode {
	case "index":
		if caseSensitive {
			return v.IndexOf(needle, offset), nil
		}
		return v.IndexOfIgnoreCase(needle, offset), nil
	case "last":
		if caseSensitive {
			return v.IndexOfLast(needle, offset), nil
		}
		return v.IndexOfLastIgnoreCase(needle, offset), nil
	case "contains":
		return v.Contains(needle, caseSensitive), nil
	case "starts":
		return v.StartsWith(needle, caseSensitive), nil
	case "ends":
		return v.EndsWith(needle, caseSensitive), nil
	case "between":
		return v.Between(needle, end, offset), nil
	default:
		return nil, mdwerrors.UnknownChoice("search", "mode", mode, searchModes)
	}
}
