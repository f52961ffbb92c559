package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if got := Load(""); got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestLoad_ReadsDefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "astrodash")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Load(""); got.Theme != "Slate" {
		t.Fatalf("Theme = %q, want Slate", got.Theme)
	}
}

func TestLoad_InvalidTOMLDegradesToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := Load(path); got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestLoad_BlankThemeUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"   \"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if got := Load(path); got.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got.Theme, defaultTheme)
	}
}

func TestSave_RoundTripsAndCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Nightfox"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Load(path); got.Theme != "Nightfox" {
		t.Fatalf("Theme = %q, want Nightfox", got.Theme)
	}
}

func TestDefaultPath(t *testing.T) {
	if DefaultPath() != "~/.config/astrodash/prefs.toml" {
		t.Fatalf("DefaultPath = %q", DefaultPath())
	}
}
