// File: settings_test.go
// Title: Command Settings Tests
// Description: Tests decoding, validation and option mapping of settings.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package cmd

import (
	"reflect"
	"testing"

	mdwconfig "github.com/msto63/stringy/foundation/core/config"
	mdwerror "github.com/msto63/stringy/foundation/core/error"
	"github.com/msto63/stringy/foundation/utils/stringx"
)

func TestSettingsFromConfig(t *testing.T) {
	cfg, err := mdwconfig.LoadFromString(`
[defaults]
encoding = "latin1"
length = 12
pad_string = "_*"
pad_side = "Both"
language = "DE"

[titleize]
ignore = ["at", "by"]

[logging]
level = "debug"
format = "json"
`, mdwconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	s, err := SettingsFromConfig(cfg)
	if err != nil {
		t.Fatalf("SettingsFromConfig() error = %v", err)
	}

	want := DefaultSettings()
	want.Encoding = "latin1"
	want.Length = 12
	want.PadString = "_*"
	want.PadSide = "Both"
	want.Language = "DE"
	want.TitleizeIgnore = []string{"at", "by"}
	want.LogLevel = "debug"
	want.LogFormat = "json"
	if !reflect.DeepEqual(s, want) {
		t.Errorf("SettingsFromConfig() = %+v; want %+v", s, want)
	}

	opts := s.Options()
	if opts.PadSide != stringx.PadBoth || opts.Language != "de" || opts.PadLength != 12 || opts.TruncateLength != 12 {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestSettingsFromEmptyConfig(t *testing.T) {
	s, err := SettingsFromConfig(mdwconfig.Empty(""))
	if err != nil {
		t.Fatalf("SettingsFromConfig(empty) error = %v", err)
	}
	if !reflect.DeepEqual(s, DefaultSettings()) {
		t.Errorf("SettingsFromConfig(empty) = %+v; want defaults", s)
	}
}

func TestSettingsValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		valid  bool
	}{
		{"defaults", func(*Settings) {}, true},
		{"utf-16 encoding", func(s *Settings) { s.Encoding = "UTF-16LE" }, true},
		{"pad side", func(s *Settings) { s.PadSide = "middle" }, false},
		{"encoding", func(s *Settings) { s.Encoding = "klingon" }, false},
		{"negative length", func(s *Settings) { s.Length = -1 }, false},
		{"log level", func(s *Settings) { s.LogLevel = "loud" }, false},
		{"log format", func(s *Settings) { s.LogFormat = "xml" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(&s)
			err := s.Validate()
			if tt.valid {
				if err != nil {
					t.Errorf("Validate() error = %v", err)
				}
				return
			}
			if !mdwerror.HasCode(err, mdwerror.CodeConfigInvalid) {
				t.Errorf("Validate() error = %v; want CONFIG_INVALID", err)
			}
		})
	}
}

func TestSettingsRulesRejectWrongTypes(t *testing.T) {
	cfg, err := mdwconfig.LoadFromString("[defaults]\nlength = \"long\"\n", mdwconfig.FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}
	if _, err := SettingsFromConfig(cfg); !mdwerror.HasCode(err, mdwerror.CodeConfigInvalid) {
		t.Errorf("SettingsFromConfig() error = %v; want CONFIG_INVALID", err)
	}
}
