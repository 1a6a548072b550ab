// File: root.go
// Title: Root Command
// Description: Builds the stringy command tree, loads settings and the
//              logger before every command and reports failures.
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
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/utils/stringx"
	"github.com/msto63/stringy/pkg/core/logging"
)

// app carries the state shared by the commands of one tree
type app struct {
	cfgFile   string
	encoding  string
	logLevel  string
	logFormat string
	verbose   bool

	settings Settings
	log      *logging.Logger
	timer    *mdwlog.Timer
}

// newRootCmd builds a fresh command tree
func newRootCmd() *cobra.Command {
	a := &app{settings: DefaultSettings()}

	rootCmd := &cobra.Command{
		Use:   "stringy",
		Short: "stringy - codepoint-aware string transformations",
		Long: `stringy applies the transformations of the stringx library to text
given as arguments or on standard input. All lengths and indexes count
Unicode codepoints.

Settings are read from stringy.toml or stringy.yaml in ., ./config,
the user configuration directory or /etc/stringy, and can be
overridden with STRINGY_* environment variables.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.timer != nil {
				a.timer.Stop()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: discovered stringy.toml/yaml)")
	flags.StringVar(&a.encoding, "encoding", "", "encoding tag of the input text (default from settings)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: trace, debug, info, warn, error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: text, json, console, logfmt")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug logging)")

	rootCmd.AddCommand(
		newCaseCmd(a),
		newPadCmd(a),
		newTruncateCmd(a),
		newSearchCmd(a),
		newCommonCmd(a),
		newSlugCmd(a),
		newInspectCmd(a),
		newPlaygroundCmd(a),
		newVersionCmd(),
	)
	return rootCmd
}

// setup loads settings, applies flag overrides and builds the logger
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	settings, err := LoadSettings(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("encoding") {
		settings.Encoding = a.encoding
	}
	if flags.Changed("log-level") {
		settings.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		settings.LogFormat = a.logFormat
	}
	if err := settings.Validate(); err != nil {
		return err
	}
	a.settings = settings

	logger, err := logging.New(logging.LoggerConfig{
		Name:   cmd.Root().Name(),
		Level:  settings.LogLevel,
		Format: settings.LogFormat,
		Output: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.log = logger.Verbose(a.verbose)
	if cmd != cmd.Root() {
		a.log = a.log.Named(cmd.Name())
	}

	if settings.Source != "" {
		a.log.Debug("configuration loaded", "path", settings.Source)
	} else {
		a.log.Debug("no configuration file found, using defaults")
	}
	a.log.Debug("effective settings",
		"encoding", settings.Encoding,
		"length", settings.Length,
		"pad_side", settings.PadSide,
		"language", settings.Language)

	a.timer = a.log.StartTimer(cmd.Name())
	return nil
}

// value builds the input value in the configured encoding
func (a *app) value(text string) stringx.Value {
	return stringx.New(text, a.settings.Encoding)
}

// readInput joins args with spaces, or reads stdin when args is empty.
// One trailing line break of stdin input is dropped.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerror.Wrap(err, "failed to read standard input").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cli.readInput")
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

// writeLine writes a result line to the command output
func writeLine(cmd *cobra.Command, a ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), a...)
}

// Execute runs the command tree
func Execute() error {
	rootCmd := newRootCmd()
	cmd, err := rootCmd.ExecuteC()
	if err != nil {
		printError(cmd, err)
	}
	return err
}

// printError logs err on stderr. Structured errors carry their code and
// operation as fields.
func printError(cmd *cobra.Command, err error) {
	name, out := "stringy", io.Writer(os.Stderr)
	if cmd != nil {
		name, out = cmd.CommandPath(), cmd.ErrOrStderr()
	}
	logging.NewSimpleLogger(name).WithOutput(out).LogError(err)
}
