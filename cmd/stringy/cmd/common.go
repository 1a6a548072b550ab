// File: common.go
// Title: Common Command
// Description: Longest common prefix, suffix or substring of two texts.
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

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
)

func newCommonCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "common <prefix|suffix|substring> <a> <b>",
		Short: "Longest common prefix, suffix or substring",
		Example: `  stringy common substring "foo bar" "boo far"
  stringy common prefix fòôbar "fòô bar"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, other := a.value(args[1]), args[2]

			a.log.Debug("comparing", "mode", args[0])
			switch args[0] {
			case "prefix":
				writeLine(cmd, v.LongestCommonPrefix(other))
			case "suffix":
				writeLine(cmd, v.LongestCommonSuffix(other))
			case "substring":
				writeLine(cmd, v.LongestCommonSubstring(other))
			default:
				return mdwerrors.UnknownChoice("common", "mode", args[0], []string{"prefix", "suffix", "substring"})
			}
			return nil
		},
	}
}
