// Package conf implements configuration file support for LMI scripts.
//
// # Usage
//
// The global Configuration variable is automatically loaded at package
// initialization:
//
//	import "github.com/openlmi/lmirc/internal/conf"
//
//	func main() {
//	    fmt.Println(conf.Configuration.LogLevel)
//	}
//
// For custom configuration loading (e.g., testing, or honoring a --config
// flag), use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path: "/custom/path/lmi.conf",
//	}
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in four layers:
//
//  1. Built-in defaults
//  2. System config file: /etc/openlmi/scripts/lmi.conf
//  3. User config file: ~/.lmirc
//  4. Explicitly requested file (ConfigSource.Path), when set
//
// Later layers override earlier ones key by key; keys a layer does not
// mention keep their previous value. The two default locations are optional,
// an explicitly requested file must exist.
//
// # File Format
//
// Files use the INI format: [Section] headers followed by Key = Value
// lines, with # and ; comment lines. A value runs to the end of its line:
// inline # or ; characters and surrounding quotes are part of the value.
// Section and key names are matched case-insensitively against the known
// schema. Unknown sections and keys are logged and ignored so that
// configurations written for newer releases still load. A blank value
// means "use the default".
//
// # Validation
//
// Values are validated while parsing: booleans accept only "true" and
// "false" (any case), Verbosity must be 0, 1 or 2, and enumerated options
// such as ListerFormat and Level accept only their documented values. All
// violations in a file are collected and reported in a single error, and a
// file that fails validation contributes nothing: Read returns the zero
// Config, never a partially applied one.
//
// # Internal Architecture
//
// The implementation separates the option schema from parsing and merging:
//
//   - Option: one schema entry describing a key's section, type, default
//     and constraints. The options table drives parsing, validation,
//     Default() and the rendered sample file.
//
//   - overlay: internal struct with pointer fields, one per option.
//     Pointers allow distinguishing "not set" (nil) from "set to zero
//     value".
//
//   - Config: public struct with typed value fields. Has Update() method
//     to apply overlay values.
//
//   - ConfigSource: orchestrates loading from multiple locations and
//     manages their merging.
//
//   - parseOverlay: function that parses INI data into an overlay.
//     Separate from loading for clean separation of I/O and parsing.
package conf
