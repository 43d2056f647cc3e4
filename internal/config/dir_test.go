package config

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestDir_Default(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "")

	dir := Dir()
	if dir == "" {
		t.Fatal("Dir() returned empty string")
	}

	if runtime.GOOS != "windows" {
		if filepath.Base(dir) != "ukato" {
			t.Errorf("Dir() = %q, want path ending in 'ukato'", dir)
		}
	}
}

func TestDir_ExplicitOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "/custom/path")
	if got := Dir(); got != "/custom/path" {
		t.Errorf("Dir() = %q, want %q", got, "/custom/path")
	}
}

func TestDir_XDGOverride(t *testing.T) {
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	if got := Dir(); got != filepath.Join("/xdg/config", "ukato") {
		t.Errorf("Dir() = %q, want %q", got, filepath.Join("/xdg/config", "ukato"))
	}
}

func TestDir_ExpandsHomeInOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv(EnvConfigHome, "~/dotfiles/ukato")

	if got, want := Dir(), filepath.Join(home, "dotfiles", "ukato"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestDir_RelativeXDGIgnored(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("falls back to APPDATA on windows")
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigHome, "")
	t.Setenv("XDG_CONFIG_HOME", "relative/config")

	if got, want := Dir(), filepath.Join(home, ".config", "ukato"); got != want {
		t.Errorf("Dir() = %q, want %q", got, want)
	}
}

func TestFilePaths(t *testing.T) {
	if got := FilePath("/c"); got != filepath.Join("/c", "config.yaml") {
		t.Errorf("FilePath = %q", got)
	}
	if got := EnvFilePath("/c"); got != filepath.Join("/c", "env") {
		t.Errorf("EnvFilePath = %q", got)
	}
}
