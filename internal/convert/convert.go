// File: convert.go
// Title: Conversion Catalog
// Description: Named, option-driven transformations of a string value,
//              shared by the command line and the interactive playground.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation

package convert

import (
	"sort"
	"strings"

	mdwerrors "github.com/msto63/stringy/foundation/core/errors"
	"github.com/msto63/stringy/foundation/utils/stringx"
)

// Options parameterize the conversions that take arguments.
type Options struct {
	Delimiter      string
	TitleizeIgnore []string
	PadLength      int
	PadString      string
	PadSide        stringx.PadSide
	TruncateLength int
	TruncateSuffix string
	SlugSeparator  string
	Language       string
}

// DefaultOptions returns the options used when no settings are loaded.
func DefaultOptions() Options {
	return Options{
		Delimiter:      "-",
		PadLength:      20,
		PadString:      " ",
		PadSide:        stringx.PadRight,
		TruncateLength: 20,
		TruncateSuffix: "...",
		SlugSeparator:  "-",
		Language:       "en",
	}
}

// Group classifies a conversion for display.
type Group string

const (
	GroupCase   Group = "case"
	GroupLayout Group = "layout"
	GroupMarkup Group = "markup"
)

// Conversion is a named transformation.
type Conversion struct {
	Name        string
	Group       Group
	Description string
	Apply       func(v stringx.Value, opts Options) stringx.Value
}

// Result is the output of one conversion.
type Result struct {
	Name   string
	Group  Group
	Output string
}

func plain(f func(stringx.Value) stringx.Value) func(stringx.Value, Options) stringx.Value {
	return func(v stringx.Value, _ Options) stringx.Value { return f(v) }
}

var catalog = []Conversion{
	{"camelize", GroupCase, "camelCase words", plain(stringx.Value.Camelize)},
	{"upper-camelize", GroupCase, "UpperCamelCase words", plain(stringx.Value.UpperCamelize)},
	{"dasherize", GroupCase, "lowercase words joined by dashes", plain(stringx.Value.Dasherize)},
	{"underscored", GroupCase, "lowercase words joined by underscores", plain(stringx.Value.Underscored)},
	{"snakeize", GroupCase, "snake_case with digit runs split off", plain(stringx.Value.Snakeize)},
	{"delimit", GroupCase, "lowercase words joined by the delimiter", func(v stringx.Value, o Options) stringx.Value {
		return v.Delimit(o.Delimiter)
	}},
	{"titleize", GroupCase, "capitalized words except ignored ones", func(v stringx.Value, o Options) stringx.Value {
		return v.Titleize(o.TitleizeIgnore...)
	}},
	{"name", GroupCase, "personal name capitalization", plain(stringx.Value.CapitalizePersonalName)},
	{"humanize", GroupCase, "sentence without underscores and _id", plain(stringx.Value.Humanize)},
	{"swap", GroupCase, "swapped letter case", plain(stringx.Value.SwapCase)},
	{"upper", GroupCase, "upper case", plain(stringx.Value.ToUpperCase)},
	{"lower", GroupCase, "lower case", plain(stringx.Value.ToLowerCase)},
	{"title", GroupCase, "title case per word", plain(stringx.Value.ToTitleCase)},
	{"pad", GroupLayout, "padded to the configured length", func(v stringx.Value, o Options) stringx.Value {
		out, err := v.Pad(o.PadLength, o.PadString, o.PadSide)
		if err != nil {
			return v
		}
		return out
	}},
	{"truncate", GroupLayout, "cut to the configured length", func(v stringx.Value, o Options) stringx.Value {
		return v.Truncate(o.TruncateLength, o.TruncateSuffix)
	}},
	{"safe-truncate", GroupLayout, "cut at a word boundary", func(v stringx.Value, o Options) stringx.Value {
		return v.SafeTruncate(o.TruncateLength, o.TruncateSuffix)
	}},
	{"collapse", GroupLayout, "whitespace runs collapsed", plain(stringx.Value.CollapseWhitespace)},
	{"reverse", GroupLayout, "codepoints reversed", plain(stringx.Value.Reverse)},
	{"tidy", GroupLayout, "smart punctuation replaced", plain(stringx.Value.Tidy)},
	{"slug", GroupMarkup, "URL slug", func(v stringx.Value, o Options) stringx.Value {
		return v.Slugify(o.SlugSeparator, o.Language, nil)
	}},
	{"ascii", GroupMarkup, "ASCII transliteration", func(v stringx.Value, o Options) stringx.Value {
		return v.ToASCII(o.Language, true, nil)
	}},
	{"html-escape", GroupMarkup, "markup characters escaped", plain(stringx.Value.HTMLEscape)},
	{"strip-html", GroupMarkup, "tags removed", func(v stringx.Value, _ Options) stringx.Value {
		return v.RemoveHTML()
	}},
}

// All returns every conversion in display order.
func All() []Conversion {
	return append([]Conversion(nil), catalog...)
}

// InGroup returns the conversions of group in display order.
func InGroup(group Group) []Conversion {
	var out []Conversion
	for _, c := range catalog {
		if c.Group == group {
			out = append(out, c)
		}
	}
	return out
}

// Names returns the sorted names of the conversions in group, or of all
// conversions when group is empty.
func Names(group Group) []string {
	var names []string
	for _, c := range catalog {
		if group == "" || c.Group == group {
			names = append(names, c.Name)
		}
	}
	sort.Strings(names)
	return names
}

// Lookup finds a conversion of group by name, ignoring case. Unknown names
// fail with INVALID_ARGUMENT.
func Lookup(group Group, name string) (Conversion, error) {
	for _, c := range catalog {
		if (group == "" || c.Group == group) && strings.EqualFold(c.Name, name) {
			return c, nil
		}
	}
	operation := string(group)
	if operation == "" {
		operation = "convert"
	}
	return Conversion{}, mdwerrors.UnknownChoice(operation, "conversion", name, Names(group))
}

// Run applies every conversion in group, or all of them for an empty
// group, to v.
func Run(v stringx.Value, group Group, opts Options) []Result {
	var results []Result
	for _, c := range catalog {
		if group != "" && c.Group != group {
			continue
		}
		results = append(results, Result{Name: c.Name, Group: c.Group, Output: c.Apply(v, opts).String()})
	}
	return results
}
