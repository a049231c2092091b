package styles

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/raphi011/valetsshing/internal/config"
)

func TestApply_PresetTheme(t *testing.T) {
	tests := []struct {
		preset  string
		primary string
	}{
		{"", "62"},
		{"default", "62"},
		{"dracula", "#bd93f9"},
		{"nord", "#88c0d0"},
		{"gruvbox", "#83a598"},
	}

	for _, tt := range tests {
		t.Run(tt.preset, func(t *testing.T) {
			if err := Apply(tt.preset); err != nil {
				t.Fatalf("Apply(%q) error: %v", tt.preset, err)
			}

			want := lipgloss.Color(tt.primary)
			if Current().Primary != want {
				t.Errorf("Current().Primary = %v, want %v", Current().Primary, want)
			}
			if Primary != want {
				t.Errorf("Primary = %v, want %v", Primary, want)
			}
		})
	}

	// Reset to default
	if err := Apply("default"); err != nil {
		t.Fatal(err)
	}
}

func TestApply_UnknownTheme(t *testing.T) {
	if err := Apply("nord"); err != nil {
		t.Fatal(err)
	}
	defer Apply("default")

	err := Apply("solarized")
	if err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if !strings.Contains(err.Error(), "solarized") {
		t.Errorf("error %q should name the theme", err)
	}
	if Current().Primary != NordTheme.Primary {
		t.Error("unknown theme should leave the current theme unchanged")
	}
}

func TestGetPreset(t *testing.T) {
	t.Parallel()

	if GetPreset("dracula") != &DraculaTheme {
		t.Error("GetPreset(dracula) should return DraculaTheme")
	}
	if GetPreset("missing") != nil {
		t.Error("GetPreset(missing) should return nil")
	}
}

func TestPresetNamesMatchConfig(t *testing.T) {
	t.Parallel()

	names := PresetNames()
	if strings.Join(names, ",") != strings.Join(config.ValidThemes, ",") {
		t.Errorf("PresetNames() = %v, config.ValidThemes = %v", names, config.ValidThemes)
	}
	for _, name := range names {
		if GetPreset(name) == nil {
			t.Errorf("preset %q listed but not defined", name)
		}
	}
}
