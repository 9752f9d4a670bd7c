package conf

import (
	"os"
	"path/filepath"
)

const (
	systemConfigFile = "/etc/openlmi/scripts/lmi.conf"
	userConfigFile   = ".lmirc"
)

// SystemConfigPath returns the location of the system-wide configuration
// file.
func SystemConfigPath() string {
	return systemConfigFile
}

// UserConfigPath returns the location of the per-user configuration file,
// or an empty string when the home directory cannot be determined. An empty
// path disables the user layer.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, userConfigFile)
}
