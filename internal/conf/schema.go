package conf

import (
	"fmt"
	"strings"
)

// Kind is the declared type of a configuration key.
type Kind int

const (
	// KindString accepts any value, including format templates that are
	// passed through opaquely.
	KindString Kind = iota

	// KindBool accepts case-insensitive "true" and "false" and nothing
	// else.
	KindBool

	// KindInt accepts integers within the option's inclusive [Min, Max]
	// range.
	KindInt

	// KindEnum accepts one of the option's Enum values, matched
	// case-insensitively and canonicalized to the schema spelling.
	KindEnum

	// KindPath accepts any string. Existence and writability are not
	// checked at load time; a bad path surfaces when the consumer first
	// uses it.
	KindPath
)

// optionID enumerates the recognized configuration keys. Every key name
// read from a file resolves to one of these or is rejected with a warning.
type optionID int

const (
	optCommandNamespace optionID = iota
	optTrace
	optVerbosity
	optNamespace
	optVerifyServerCertificate
	optHumanFriendly
	optListerFormat
	optNoHeadings
	optLogLevel
	optConsoleFormat
	optFileFormat
	optOutputFile
)

// Option describes one recognized configuration key: the section it belongs
// to, its canonical name, declared kind, constraint, documented default and
// effect.
type Option struct {
	Section     string
	Name        string
	Kind        Kind
	Default     string
	Description string

	// Enum lists the allowed values for KindEnum options, in canonical
	// spelling.
	Enum []string

	// Min and Max bound KindInt options, inclusive.
	Min, Max int

	id optionID
}

// Constraint returns a human-readable description of the values the option
// accepts. It is the "expected" part of a ValidationError.
func (o Option) Constraint() string {
	switch o.Kind {
	case KindBool:
		return "boolean: true or false"
	case KindInt:
		return fmt.Sprintf("integer in range [%d, %d]", o.Min, o.Max)
	case KindEnum:
		return "one of: " + strings.Join(o.Enum, ", ")
	case KindPath:
		return "path"
	default:
		return "string"
	}
}

// options is the configuration schema: the closed set of sections and keys
// the loader recognizes, in the order they appear in the sample file. The
// schema is fixed at build time and never changes afterward.
var options = []Option{
	{
		id:          optCommandNamespace,
		Section:     "Main",
		Name:        "CommandNamespace",
		Kind:        KindString,
		Default:     "lmi.scripts.cmd",
		Description: "Namespace where command entry points are discovered.",
	},
	{
		id:          optTrace,
		Section:     "Main",
		Name:        "Trace",
		Kind:        KindBool,
		Default:     "False",
		Description: "Whether failures are reported with the full error chain.",
	},
	{
		id:          optVerbosity,
		Section:     "Main",
		Name:        "Verbosity",
		Kind:        KindInt,
		Default:     "0",
		Min:         0,
		Max:         2,
		Description: "Command output verbosity, independent of the log level.",
	},
	{
		id:          optNamespace,
		Section:     "CIM",
		Name:        "Namespace",
		Kind:        KindString,
		Default:     "root/cimv2",
		Description: "Default namespace used for management requests.",
	},
	{
		id:          optVerifyServerCertificate,
		Section:     "SSL",
		Name:        "VerifyServerCertificate",
		Kind:        KindBool,
		Default:     "True",
		Description: "Whether to verify the server certificate on secured connections.",
	},
	{
		id:          optHumanFriendly,
		Section:     "Format",
		Name:        "HumanFriendly",
		Kind:        KindBool,
		Default:     "False",
		Description: "Print values with human formatting instead of raw tokens.",
	},
	{
		id:          optListerFormat,
		Section:     "Format",
		Name:        "ListerFormat",
		Kind:        KindEnum,
		Default:     "table",
		Enum:        []string{"csv", "table"},
		Description: "Rendering mode for tabular output.",
	},
	{
		id:          optNoHeadings,
		Section:     "Format",
		Name:        "NoHeadings",
		Kind:        KindBool,
		Default:     "False",
		Description: "Suppress column headers in tabular output.",
	},
	{
		id:          optLogLevel,
		Section:     "Log",
		Name:        "Level",
		Kind:        KindEnum,
		Default:     "ERROR",
		Enum:        []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"},
		Description: "Minimum severity written to the log file.",
	},
	{
		id:          optConsoleFormat,
		Section:     "Log",
		Name:        "ConsoleFormat",
		Kind:        KindString,
		Default:     "%(levelname)s: %(message)s",
		Description: "Template for console log lines, passed through opaquely.",
	},
	{
		id:          optFileFormat,
		Section:     "Log",
		Name:        "FileFormat",
		Kind:        KindString,
		Default:     "%(asctime)s:%(levelname)-8s:%(name)s:%(lineno)d - %(message)s",
		Description: "Template for file log lines, passed through opaquely.",
	},
	{
		id:          optOutputFile,
		Section:     "Log",
		Name:        "OutputFile",
		Kind:        KindPath,
		Default:     "",
		Description: "Destination for file-based logging; empty disables it.",
	},
}

// Options returns the schema in sample-file order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}

// sectionIndex maps folded section names to folded key names to positions
// in the options slice. Section and key names must be unique under folding.
var sectionIndex = buildSectionIndex()

func buildSectionIndex() map[string]map[string]int {
	index := make(map[string]map[string]int)
	for i, opt := range options {
		section := strings.ToLower(opt.Section)
		keys, ok := index[section]
		if !ok {
			keys = make(map[string]int)
			index[section] = keys
		}
		key := strings.ToLower(opt.Name)
		if _, dup := keys[key]; dup {
			panic(fmt.Sprintf("conf: duplicate schema key [%s] %s", opt.Section, opt.Name))
		}
		keys[key] = i
	}
	return index
}

// knownSection reports whether the schema defines a section with this name.
// Matching is case-insensitive.
func knownSection(name string) bool {
	_, ok := sectionIndex[strings.ToLower(name)]
	return ok
}

// lookup resolves a section and key name pair, case-insensitively, to its
// schema option.
func lookup(section, key string) (Option, bool) {
	keys, ok := sectionIndex[strings.ToLower(section)]
	if !ok {
		return Option{}, false
	}
	i, ok := keys[strings.ToLower(key)]
	if !ok {
		return Option{}, false
	}
	return options[i], true
}
