// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches a list of directories for the first configuration
//              file matching a set of base names and extensions.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with path search
// - 2025-03-02 v0.2.0: XDG config directory, empty config when not required

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string   // Environment variable prefix for overrides
	Required   bool     // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the search locations of the stringy CLI
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{".", "./config"}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "stringy"))
	}
	paths = append(paths, "/etc/stringy")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"stringy"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  "STRINGY",
		Required:   false,
	}
}

// Discover loads the first configuration file found. When none exists and
// the file is not required, an empty configuration honoring EnvPrefix is
// returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	if len(options.Paths) == 0 {
		options.Paths = []string{"."}
	}
	if len(options.Filenames) == 0 {
		options.Filenames = []string{"config"}
	}
	if len(options.Extensions) == 0 {
		options.Extensions = []string{".toml", ".yaml", ".yml"}
	}

	configPath, err := FindConfigFile(options)
	if err == nil {
		config, loadErr := LoadWithOptions(configPath, LoadOptions{
			Format:    FormatAuto,
			EnvPrefix: options.EnvPrefix,
		})
		if loadErr != nil {
			return nil, mdwerror.Wrap(loadErr, fmt.Sprintf("found config file %s but failed to load", configPath)).
				WithOperation("config.Discover").
				WithDetail("configPath", configPath)
		}
		return config, nil
	}

	if options.Required {
		return nil, mdwerror.Newf("no configuration file found in paths: %s",
			strings.Join(ListPossibleConfigFiles(options), ", ")).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("config.Discover")
	}

	return Empty(options.EnvPrefix), nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeNotFound).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns every candidate path in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
