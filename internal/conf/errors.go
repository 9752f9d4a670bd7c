package conf

import (
	"fmt"

	log "github.com/sirupsen/logrus"
)

// ValidationError describes an override value that violates the constraint
// declared for its key. Validation errors are fatal: the load aborts, and
// every violation found in the offending file is joined into the single
// error it returns.
type ValidationError struct {
	Section    string
	Key        string
	Value      string
	Constraint string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: invalid value %q (expected %s)", e.Section, e.Key, e.Value, e.Constraint)
}

// Warning reports an unrecognized section or key found in a configuration
// file. Warnings never abort a load; the offending entry is logged and
// ignored.
type Warning struct {
	// Origin is the file the entry came from.
	Origin string

	// Section is the section name as written in the file.
	Section string

	// Key is the key name as written in the file. It is empty when the
	// whole section is unrecognized.
	Key string
}

func (w Warning) String() string {
	if w.Key == "" {
		return fmt.Sprintf("%s: unknown section [%s]", w.Origin, w.Section)
	}
	return fmt.Sprintf("%s: unknown key %q in section [%s]", w.Origin, w.Key, w.Section)
}

func (w Warning) log() {
	if w.Key == "" {
		log.WithFields(log.Fields{
			"file":    w.Origin,
			"section": w.Section,
		}).Warn("ignoring unknown configuration section")
		return
	}
	log.WithFields(log.Fields{
		"file":    w.Origin,
		"section": w.Section,
		"key":     w.Key,
	}).Warn("ignoring unknown configuration key")
}
