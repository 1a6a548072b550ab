// File: settings.go
// Title: Command Settings
// Description: Typed settings for the stringy command, read from a TOML or
//              YAML file with STRINGY_ environment overrides.
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

	mdwconfig "github.com/msto63/stringy/foundation/core/config"
	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	mdwlog "github.com/msto63/stringy/foundation/core/log"
	"github.com/msto63/stringy/foundation/utils/stringx"
	"github.com/msto63/stringy/internal/convert"
)

// envPrefix prefixes environment overrides, e.g. STRINGY_DEFAULTS_ENCODING
const envPrefix = "STRINGY"

// Settings holds the effective command defaults
type Settings struct {
	Encoding       string
	Length         int
	PadString      string
	PadSide        string
	TruncateSuffix string
	Delimiter      string
	SlugSeparator  string
	Language       string
	TitleizeIgnore []string
	LogLevel       string
	LogFormat      string

	// Source is the loaded file, empty when only defaults apply
	Source string
}

// DefaultSettings returns the settings used without a configuration file
func DefaultSettings() Settings {
	return Settings{
		Encoding:       "UTF-8",
		Length:         20,
		PadString:      " ",
		PadSide:        string(stringx.PadRight),
		TruncateSuffix: "",
		Delimiter:      "-",
		SlugSeparator:  "-",
		Language:       "en",
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

var settingsRules = mdwconfig.ValidationRules{
	"defaults.encoding":        {Type: "string"},
	"defaults.length":          {Type: "int"},
	"defaults.pad_string":      {Type: "string"},
	"defaults.pad_side":        {Type: "string", OneOf: []string{"left", "right", "both"}},
	"defaults.truncate_suffix": {Type: "string"},
	"defaults.delimiter":       {Type: "string"},
	"defaults.slug_separator":  {Type: "string"},
	"defaults.language":        {Type: "string"},
	"titleize.ignore":          {Type: "[]string"},
	"logging.level":            {Type: "string"},
	"logging.format":           {Type: "string", OneOf: []string{"json", "text", "console", "logfmt"}},
}

// LoadSettings reads settings from path, or from the first file found by
// discovery when path is empty.
func LoadSettings(path string) (Settings, error) {
	var (
		cfg *mdwconfig.Config
		err error
	)
	if path != "" {
		cfg, err = mdwconfig.LoadWithOptions(path, mdwconfig.LoadOptions{
			Format:    mdwconfig.FormatAuto,
			EnvPrefix: envPrefix,
		})
	} else {
		options := mdwconfig.DefaultDiscoveryOptions()
		options.EnvPrefix = envPrefix
		cfg, err = mdwconfig.Discover(options)
	}
	if err != nil {
		return Settings{}, err
	}
	return SettingsFromConfig(cfg)
}

// SettingsFromConfig decodes and validates settings from cfg
func SettingsFromConfig(cfg *mdwconfig.Config) (Settings, error) {
	if err := cfg.Validate(settingsRules).Err(); err != nil {
		return Settings{}, err
	}

	d := DefaultSettings()
	s := Settings{
		Encoding:       cfg.GetString("defaults.encoding", d.Encoding),
		Length:         cfg.GetInt("defaults.length", d.Length),
		PadString:      cfg.GetString("defaults.pad_string", d.PadString),
		PadSide:        cfg.GetString("defaults.pad_side", d.PadSide),
		TruncateSuffix: cfg.GetString("defaults.truncate_suffix", d.TruncateSuffix),
		Delimiter:      cfg.GetString("defaults.delimiter", d.Delimiter),
		SlugSeparator:  cfg.GetString("defaults.slug_separator", d.SlugSeparator),
		Language:       cfg.GetString("defaults.language", d.Language),
		TitleizeIgnore: cfg.GetStringSlice("titleize.ignore", d.TitleizeIgnore),
		LogLevel:       cfg.GetString("logging.level", d.LogLevel),
		LogFormat:      cfg.GetString("logging.format", d.LogFormat),
		Source:         cfg.FilePath(),
	}
	return s, s.Validate()
}

// Validate rejects values the commands cannot use with CONFIG_INVALID
func (s Settings) Validate() error {
	if _, err := stringx.ParsePadSide(s.PadSide); err != nil {
		return mdwerrors.ConfigInvalid("defaults.pad_side", s.PadSide, "expected left, right or both")
	}
	if _, err := stringx.NewFromBytes(nil, s.Encoding); err != nil {
		return mdwerrors.ConfigInvalid("defaults.encoding", s.Encoding, "unsupported encoding")
	}
	if s.Length < 0 {
		return mdwerrors.ConfigInvalid("defaults.length", s.Length, "must not be negative")
	}
	if _, err := mdwlog.ParseLevel(s.LogLevel); err != nil {
		return mdwerrors.ConfigInvalid("logging.level", s.LogLevel, err.Error())
	}
	if _, err := mdwlog.ParseFormat(s.LogFormat); err != nil {
		return mdwerrors.ConfigInvalid("logging.format", s.LogFormat, err.Error())
	}
	return nil
}

// Options converts the settings into conversion options
func (s Settings) Options() convert.Options {
	side, err := stringx.ParsePadSide(s.PadSide)
	if err != nil {
		side = stringx.PadRight
	}
	return convert.Options{
		Delimiter:      s.Delimiter,
		TitleizeIgnore: s.TitleizeIgnore,
		PadLength:      s.Length,
		PadString:      s.PadString,
		PadSide:        side,
		TruncateLength: s.Length,
		TruncateSuffix: s.TruncateSuffix,
		SlugSeparator:  s.SlugSeparator,
		Language:       strings.ToLower(s.Language),
	}
}
