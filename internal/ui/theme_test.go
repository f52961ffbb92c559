package ui

import (
	"reflect"
	"testing"
)

func TestThemeNames(t *testing.T) {
	want := []string{"Dracula", "Nightfox", "Slate"}
	if got := ThemeNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("ThemeNames() = %v, want %v", got, want)
	}

	names := ThemeNames()
	names[0] = "mutated"
	if ThemeNames()[0] != "Dracula" {
		t.Fatal("ThemeNames should return a copy")
	}
}

func TestNextTheme(t *testing.T) {
	cases := map[string]string{
		"Dracula":  "Nightfox",
		"Nightfox": "Slate",
		"Slate":    "Dracula",
		"Unknown":  "Dracula",
	}
	for current, want := range cases {
		if got := NextTheme(current); got != want {
			t.Fatalf("NextTheme(%q) = %q, want %q", current, got, want)
		}
	}
}

func TestGetTheme(t *testing.T) {
	for _, name := range ThemeNames() {
		if got := GetTheme(name); got.Name != name {
			t.Fatalf("GetTheme(%q).Name = %q", name, got.Name)
		}
	}
	if got := GetTheme("Unknown"); got.Name != defaultThemeName {
		t.Fatalf("GetTheme(Unknown).Name = %q, want %q", got.Name, defaultThemeName)
	}
}

func TestThemesDefineEveryColor(t *testing.T) {
	for _, name := range ThemeNames() {
		th := GetTheme(name)
		v := reflect.ValueOf(th)
		for i := 0; i < v.NumField(); i++ {
			if v.Field(i).String() == "" {
				t.Fatalf("theme %s: %s is empty", name, v.Type().Field(i).Name)
			}
		}
	}
}
