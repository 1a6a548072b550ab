// File: doc.go
// Title: Configuration Management Package Documentation
// Description: Package config loads TOML and YAML settings files for the
//              stringy command line tool.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Trimmed to loading, discovery, env overrides and validation

/*
Package config provides configuration loading for the stringy tools.

Files are TOML (github.com/BurntSushi/toml) or YAML (gopkg.in/yaml.v3); the
format is chosen from the file extension unless set explicitly. Values are
addressed with dot notation and every lookup first consults an environment
variable derived from the key:

	cfg, err := config.LoadWithOptions("stringy.toml", config.LoadOptions{
		Format:    config.FormatAuto,
		EnvPrefix: "STRINGY",
	})
	side := cfg.GetString("defaults.pad_side", "right") // STRINGY_DEFAULTS_PAD_SIDE

Discover searches the usual locations and returns an empty configuration
when no file exists and none is required:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())

Validate checks presence, type and allowed values:

	result := cfg.Validate(config.ValidationRules{
		"defaults.pad_side": {Type: "string", OneOf: []string{"left", "right", "both"}},
	})
	if err := result.Err(); err != nil {
		return err
	}
*/
package config
