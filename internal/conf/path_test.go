package conf

import (
	"path/filepath"
	"testing"
)

func TestSystemConfigPath(t *testing.T) {
	if got := SystemConfigPath(); got != "/etc/openlmi/scripts/lmi.conf" {
		t.Errorf("SystemConfigPath() = %q", got)
	}
}

func TestUserConfigPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	if got, want := UserConfigPath(), filepath.Join(home, ".lmirc"); got != want {
		t.Errorf("UserConfigPath() = %q, want %q", got, want)
	}
}

func TestUserConfigPath_NoHome(t *testing.T) {
	t.Setenv("HOME", "")

	if got := UserConfigPath(); got != "" {
		t.Errorf("UserConfigPath() = %q, want empty to disable the layer", got)
	}
}
