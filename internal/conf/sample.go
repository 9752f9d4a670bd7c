package conf

import (
	_ "embed"
)

//go:embed lmi.conf
var sampleConfig string

// Sample returns the commented sample configuration file. Every option is
// listed with its default value and commented out, so installing the sample
// verbatim changes nothing.
func Sample() string {
	return sampleConfig
}
