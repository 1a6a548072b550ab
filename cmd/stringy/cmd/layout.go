// File: layout.go
// Title: Pad and Truncate Commands
// Description: Pads text to a codepoint length or truncates it, optionally
//              at a word boundary.
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

	"github.com/msto63/stringy/foundation/utils/stringx"
)

func newPadCmd(a *app) *cobra.Command {
	var (
		length int
		pad    string
		side   string
	)

	cmd := &cobra.Command{
		Use:   "pad [text...]",
		Short: "Pad text to a length in codepoints",
		Example: `  stringy pad --length 9 --pad "_*" --side left "foo bar"
  stringy pad --length 7 --side both fòô`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			spec := stringx.PadSpec{Length: a.settings.Length, Pad: a.settings.PadString}
			if cmd.Flags().Changed("length") {
				spec.Length = length
			}
			if cmd.Flags().Changed("pad") {
				spec.Pad = pad
			}
			sideText := a.settings.PadSide
			if cmd.Flags().Changed("side") {
				sideText = side
			}
			if spec.Side, err = stringx.ParsePadSide(sideText); err != nil {
				return err
			}

			a.log.Debug("padding", "length", spec.Length, "side", spec.Side)
			out, err := spec.Apply(a.value(text))
			if err != nil {
				return err
			}
			writeLine(cmd, out)
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "target length in codepoints (default from settings)")
	cmd.Flags().StringVar(&pad, "pad", " ", "pad string, repeated cyclically")
	cmd.Flags().StringVar(&side, "side", "right", "left, right or both")
	return cmd
}

func newTruncateCmd(a *app) *cobra.Command {
	var (
		length int
		suffix string
		safe   bool
	)

	cmd := &cobra.Command{
		Use:   "truncate [text...]",
		Short: "Truncate text to a length in codepoints",
		Long: `Truncate text so that, with the suffix appended, it is at most
--length codepoints long. With --safe the cut backs up to the last
space so no word is split.`,
		Example: `  stringy truncate --length 11 --safe "Test foo bar"
  stringy truncate --length 7 --suffix ... "Test foo bar"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("length") {
				length = a.settings.Length
			}
			if !cmd.Flags().Changed("suffix") {
				suffix = a.settings.TruncateSuffix
			}

			a.log.Debug("truncating", "length", length, "safe", safe)
			v := a.value(text)
			if safe {
				writeLine(cmd, v.SafeTruncate(length, suffix))
			} else {
				writeLine(cmd, v.Truncate(length, suffix))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "maximum length in codepoints (default from settings)")
	cmd.Flags().StringVar(&suffix, "suffix", "", "suffix appended to truncated text")
	cmd.Flags().BoolVar(&safe, "safe", false, "do not split words")
	return cmd
}
