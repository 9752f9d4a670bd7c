package conf

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// ConfigSource orchestrates loading configuration from multiple locations.
// See the Read method.
type ConfigSource struct {
	// SystemPath and UserPath are merged when present. A missing file at
	// either location is not an error.
	SystemPath string
	UserPath   string

	// Path is an explicitly requested override file. Unlike the default
	// locations, it must exist.
	Path string
}

// Read loads and returns the complete Config by merging all layers:
//  1. Built-in defaults
//  2. System configuration file
//  3. Per-user configuration file
//  4. Explicitly requested override file
//
// Later layers win per key. Unknown sections and keys are logged and
// ignored. A file that exists but cannot be read, parsed, or validated
// aborts the load; on error the returned Config is the zero value and must
// not be used.
func (cs *ConfigSource) Read() (Config, error) {
	resolved := Default()

	layers := []struct {
		path     string
		required bool
	}{
		{cs.SystemPath, false},
		{cs.UserPath, false},
		{cs.Path, true},
	}
	for _, layer := range layers {
		if layer.path == "" {
			continue
		}
		data, err := os.ReadFile(layer.path)
		if err != nil {
			if os.IsNotExist(err) && !layer.required {
				continue
			}
			// Existing but unreadable files should result in failure
			// (let's not hide problems from the users).
			return Config{}, fmt.Errorf("failed to load %s: %w", layer.path, err)
		}
		ov, warnings, err := parseOverlay(data, layer.path)
		if err != nil {
			return Config{}, err
		}
		for _, w := range warnings {
			w.log()
		}
		resolved.Update(ov)
	}

	return resolved, nil
}

// Load resolves the configuration from the built-in defaults plus the given
// override file. An empty path yields the documented defaults. A non-empty
// path must name an existing file.
func Load(path string) (Config, error) {
	cs := &ConfigSource{Path: path}
	return cs.Read()
}

// CheckFile parses and validates a single configuration file without
// resolving a configuration. It reports the unknown-section and unknown-key
// warnings the loader would log, and the aggregated parse or validation
// error it would abort with.
func CheckFile(path string) ([]Warning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	_, warnings, err := parseOverlay(data, path)
	return warnings, err
}

// parseOverlay parses INI data into an overlay, matching sections and keys
// against the schema case-insensitively. Unknown sections and keys produce
// warnings and are skipped. A blank value means "use the default" and sets
// nothing. Invalid values are collected and returned joined into a single
// error; no partial overlay escapes a file that fails validation.
func parseOverlay(data []byte, origin string) (overlay, []Warning, error) {
	var ov overlay

	// Values are opaque: comments are whole-line constructs in this format,
	// and surrounding quotes are part of the value.
	file, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		PreserveSurroundedQuote: true,
	}, data)
	if err != nil {
		return ov, nil, fmt.Errorf("failed to parse %s: %w", origin, err)
	}

	var warnings []Warning
	var violations []error
	for _, section := range file.Sections() {
		if section.Name() == ini.DefaultSection {
			keys := section.KeyStrings()
			if len(keys) == 0 {
				continue
			}
			// The engine files keys from an explicit [DEFAULT] header and
			// keys written before any header under the same name; only the
			// raw text tells them apart. The format requires a section
			// header before any key.
			if !startsWithSectionHeader(data) {
				return overlay{}, nil, fmt.Errorf("failed to parse %s: key %q appears before any section header", origin, keys[0])
			}
			warnings = append(warnings, Warning{Origin: origin, Section: section.Name()})
			continue
		}
		if !knownSection(section.Name()) {
			warnings = append(warnings, Warning{Origin: origin, Section: section.Name()})
			continue
		}
		for _, key := range section.Keys() {
			opt, known := lookup(section.Name(), key.Name())
			if !known {
				warnings = append(warnings, Warning{Origin: origin, Section: section.Name(), Key: key.Name()})
				continue
			}
			// Key.Value is the raw text; Key.String would expand
			// %(name)s references, which the format templates must
			// survive verbatim.
			raw := key.Value()
			if raw == "" {
				// A blank value means "use the default".
				continue
			}
			if verr := ov.set(opt, raw); verr != nil {
				violations = append(violations, verr)
			}
		}
	}
	if len(violations) > 0 {
		return overlay{}, warnings, fmt.Errorf("invalid configuration in %s: %w", origin, errors.Join(violations...))
	}

	return ov, warnings, nil
}

// startsWithSectionHeader reports whether the first line that is neither
// blank nor a comment opens a section.
func startsWithSectionHeader(data []byte) bool {
	for _, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}
		return strings.HasPrefix(trimmed, "[")
	}
	return true
}
