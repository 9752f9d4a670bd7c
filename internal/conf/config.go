package conf

import (
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Level is the minimum severity written to the log file.
type Level string

// Log levels recognized by the Log/Level option.
const (
	LevelDebug    Level = "DEBUG"
	LevelInfo     Level = "INFO"
	LevelWarning  Level = "WARNING"
	LevelError    Level = "ERROR"
	LevelCritical Level = "CRITICAL"
)

// ParseLevel resolves a level name, case-insensitively, to a Level.
func ParseLevel(s string) (Level, error) {
	for _, l := range []Level{LevelDebug, LevelInfo, LevelWarning, LevelError, LevelCritical} {
		if strings.EqualFold(s, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unrecognized log level %q", s)
}

// LogrusLevel maps the configured level onto the ambient logger's levels.
// CRITICAL has no direct counterpart and maps to the fatal level.
func (l Level) LogrusLevel() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelInfo:
		return log.InfoLevel
	case LevelWarning:
		return log.WarnLevel
	case LevelCritical:
		return log.FatalLevel
	default:
		return log.ErrorLevel
	}
}

// ListerFormat is the rendering mode for tabular output.
type ListerFormat string

// Lister formats recognized by the Format/ListerFormat option.
const (
	ListerCSV   ListerFormat = "csv"
	ListerTable ListerFormat = "table"
)

// Configuration is the global immutable state. It is resolved once, at
// package initialization, from the default configuration locations.
var Configuration Config

func init() {
	source := &ConfigSource{
		SystemPath: SystemConfigPath(),
		UserPath:   UserConfigPath(),
	}
	config, err := source.Read()
	if err != nil {
		log.WithError(err).Warn("failed to read configuration files, using built-in defaults")
		config = Default()
	}
	Configuration = config
}

// Config is the resolved configuration: every recognized key carries either
// the override a configuration file supplied or its documented default. A
// Config is written once when it is resolved and read-only afterward.
type Config struct {
	// CommandNamespace is the namespace where command entry points are
	// discovered.
	CommandNamespace string

	// Trace reports failures with the full error chain when set.
	Trace bool

	// Verbosity controls command output verbosity, 0 to 2. It is
	// independent of the log level.
	Verbosity int

	// Namespace is the default namespace used for management requests.
	Namespace string

	// VerifyServerCertificate controls verification of the server
	// certificate on secured connections.
	VerifyServerCertificate bool

	// HumanFriendly selects human formatting over raw tokens in output.
	HumanFriendly bool

	// ListerFormat selects csv or table rendering for listings.
	ListerFormat ListerFormat

	// NoHeadings suppresses column headers in tabular output.
	NoHeadings bool

	// LogLevel is the minimum severity written to the log file.
	LogLevel Level

	// ConsoleFormat is the template for console log lines. The loader
	// passes it through opaquely.
	ConsoleFormat string

	// FileFormat is the template for file log lines. The loader passes it
	// through opaquely.
	FileFormat string

	// LogFile is the destination for file-based logging. Empty disables
	// file logging.
	LogFile string
}

// Default returns the configuration the schema documents: every key at its
// built-in default, before any file is applied.
func Default() Config {
	var ov overlay
	for _, opt := range options {
		if verr := ov.set(opt, opt.Default); verr != nil {
			panic(fmt.Sprintf("conf: failed to apply built-in defaults: %v", verr))
		}
	}
	var config Config
	config.Update(ov)
	return config
}

// Value returns the resolved value of a schema option in its raw string
// form, as it would be written in a configuration file.
func (c Config) Value(o Option) string {
	switch o.id {
	case optCommandNamespace:
		return c.CommandNamespace
	case optTrace:
		return strconv.FormatBool(c.Trace)
	case optVerbosity:
		return strconv.Itoa(c.Verbosity)
	case optNamespace:
		return c.Namespace
	case optVerifyServerCertificate:
		return strconv.FormatBool(c.VerifyServerCertificate)
	case optHumanFriendly:
		return strconv.FormatBool(c.HumanFriendly)
	case optListerFormat:
		return string(c.ListerFormat)
	case optNoHeadings:
		return strconv.FormatBool(c.NoHeadings)
	case optLogLevel:
		return string(c.LogLevel)
	case optConsoleFormat:
		return c.ConsoleFormat
	case optFileFormat:
		return c.FileFormat
	case optOutputFile:
		return c.LogFile
	}
	return ""
}

// overlay carries the values one configuration layer actually sets. Pointer
// fields distinguish "not set" (nil) from "set to the zero value", so that
// applying a layer only replaces the keys it names.
type overlay struct {
	CommandNamespace        *string
	Trace                   *bool
	Verbosity               *int
	Namespace               *string
	VerifyServerCertificate *bool
	HumanFriendly           *bool
	ListerFormat            *ListerFormat
	NoHeadings              *bool
	LogLevel                *Level
	ConsoleFormat           *string
	FileFormat              *string
	LogFile                 *string
}

// set validates a raw value against the option's declared kind and
// constraint and stores the typed result. A nil return means the value was
// accepted.
func (ov *overlay) set(o Option, raw string) *ValidationError {
	invalid := func() *ValidationError {
		return &ValidationError{Section: o.Section, Key: o.Name, Value: raw, Constraint: o.Constraint()}
	}

	switch o.Kind {
	case KindBool:
		var b bool
		switch {
		case strings.EqualFold(raw, "true"):
			b = true
		case strings.EqualFold(raw, "false"):
			b = false
		default:
			return invalid()
		}
		switch o.id {
		case optTrace:
			ov.Trace = &b
		case optVerifyServerCertificate:
			ov.VerifyServerCertificate = &b
		case optHumanFriendly:
			ov.HumanFriendly = &b
		case optNoHeadings:
			ov.NoHeadings = &b
		}
	case KindInt:
		n, err := strconv.Atoi(raw)
		if err != nil || n < o.Min || n > o.Max {
			return invalid()
		}
		if o.id == optVerbosity {
			ov.Verbosity = &n
		}
	case KindEnum:
		var canonical string
		for _, allowed := range o.Enum {
			if strings.EqualFold(raw, allowed) {
				canonical = allowed
				break
			}
		}
		if canonical == "" {
			return invalid()
		}
		switch o.id {
		case optListerFormat:
			f := ListerFormat(canonical)
			ov.ListerFormat = &f
		case optLogLevel:
			l := Level(canonical)
			ov.LogLevel = &l
		}
	default:
		// KindString and KindPath accept any value.
		v := raw
		switch o.id {
		case optCommandNamespace:
			ov.CommandNamespace = &v
		case optNamespace:
			ov.Namespace = &v
		case optConsoleFormat:
			ov.ConsoleFormat = &v
		case optFileFormat:
			ov.FileFormat = &v
		case optOutputFile:
			ov.LogFile = &v
		}
	}
	return nil
}

// Update applies non-nil values from an overlay, leaving every other field
// as it is.
func (c *Config) Update(ov overlay) {
	if ov.CommandNamespace != nil {
		c.CommandNamespace = *ov.CommandNamespace
	}
	if ov.Trace != nil {
		c.Trace = *ov.Trace
	}
	if ov.Verbosity != nil {
		c.Verbosity = *ov.Verbosity
	}
	if ov.Namespace != nil {
		c.Namespace = *ov.Namespace
	}
	if ov.VerifyServerCertificate != nil {
		c.VerifyServerCertificate = *ov.VerifyServerCertificate
	}
	if ov.HumanFriendly != nil {
		c.HumanFriendly = *ov.HumanFriendly
	}
	if ov.ListerFormat != nil {
		c.ListerFormat = *ov.ListerFormat
	}
	if ov.NoHeadings != nil {
		c.NoHeadings = *ov.NoHeadings
	}
	if ov.LogLevel != nil {
		c.LogLevel = *ov.LogLevel
	}
	if ov.ConsoleFormat != nil {
		c.ConsoleFormat = *ov.ConsoleFormat
	}
	if ov.FileFormat != nil {
		c.FileFormat = *ov.FileFormat
	}
	if ov.LogFile != nil {
		c.LogFile = *ov.LogFile
	}
}
