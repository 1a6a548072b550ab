// File: case.go
// Title: Case Command
// Description: Converts text to one of the case styles of the conversion
//              catalog.
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

	"github.com/spf13/cobra"

	"github.com/msto63/stringy/internal/convert"
)

func newCaseCmd(a *app) *cobra.Command {
	var (
		sep    string
		ignore []string
	)

	cmd := &cobra.Command{
		Use:   "case <style> [text...]",
		Short: "Convert text to a case style",
		Long: "Convert text to a case style. Styles: " +
			strings.Join(convert.Names(convert.GroupCase), ", ") + ".",
		Example: `  stringy case camelize string_with1number
  stringy case delimit --sep :: fooBar
  echo "i like to watch DVDs" | stringy case titleize --ignore to`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conversion, err := convert.Lookup(convert.GroupCase, args[0])
			if err != nil {
				return err
			}
			text, err := readInput(cmd, args[1:])
			if err != nil {
				return err
			}

			opts := a.settings.Options()
			if cmd.Flags().Changed("sep") {
				opts.Delimiter = sep
			}
			if cmd.Flags().Changed("ignore") {
				opts.TitleizeIgnore = ignore
			}

			a.log.Debug("converting", "style", conversion.Name, "encoding", a.settings.Encoding)
			writeLine(cmd, conversion.Apply(a.value(text), opts))
			return nil
		},
	}

	cmd.Flags().StringVar(&sep, "sep", "-", "delimiter for the delimit style")
	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "words titleize leaves unchanged")
	return cmd
}
