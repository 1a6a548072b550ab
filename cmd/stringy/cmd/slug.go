// File: slug.go
// Title: Slug Command
// Description: Turns text into a URL slug or its ASCII transliteration.
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
)

func newSlugCmd(a *app) *cobra.Command {
	var (
		sep   string
		lang  string
		ascii bool
	)

	cmd := &cobra.Command{
		Use:   "slug [text...]",
		Short: "Turn text into a URL slug",
		Example: `  stringy slug "Using strings like fòô bàř"
  stringy slug --lang de --sep _ "Grüße aus Köln"
  stringy slug --ascii --lang de "Äpfel und Birnen"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			opts := a.settings.Options()
			if cmd.Flags().Changed("sep") {
				opts.SlugSeparator = sep
			}
			if cmd.Flags().Changed("lang") {
				opts.Language = lang
			}

			a.log.Debug("slugifying", "language", opts.Language, "ascii", ascii)
			v := a.value(text)
			if ascii {
				writeLine(cmd, v.ToASCII(opts.Language, true, nil))
			} else {
				writeLine(cmd, v.Slugify(opts.SlugSeparator, opts.Language, nil))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "-", "word separator")
	cmd.Flags().StringVar(&lang, "lang", "en", "transliteration language, e.g. de or de_DE")
	cmd.Flags().BoolVar(&ascii, "ascii", false, "print the ASCII transliteration instead of a slug")
	return cmd
}
