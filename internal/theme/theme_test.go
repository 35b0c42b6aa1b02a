package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestGetTheme(t *testing.T) {
	if got := GetTheme("ocean"); got.Name != "ocean" {
		t.Errorf("expected ocean, got %s", got.Name)
	}
	if got := GetTheme("nope"); got.Name != "violet" {
		t.Errorf("expected fallback violet, got %s", got.Name)
	}
}

func TestNext(t *testing.T) {
	seen := map[string]bool{}
	th := ThemeViolet
	for range Themes {
		seen[th.Name] = true
		th = Next(th)
	}
	if th.Name != ThemeViolet.Name {
		t.Errorf("cycle should wrap to violet, got %s", th.Name)
	}
	if len(seen) != len(Themes) {
		t.Errorf("expected to visit %d themes, visited %d", len(Themes), len(seen))
	}
}

func TestThemeNames(t *testing.T) {
	names := ThemeNames()
	if len(names) != len(Themes) || names[0] != "violet" {
		t.Errorf("unexpected names %v", names)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		r, g, b int
	}{
		{"#7c3aed", 0x7c, 0x3a, 0xed},
		{"#FFFFFF", 255, 255, 255},
		{"bogus", 255, 255, 255},
	}
	for _, tt := range tests {
		r, g, b := parseHex(tt.in)
		if r != tt.r || g != tt.g || b != tt.b {
			t.Errorf("parseHex(%q) = %d,%d,%d", tt.in, r, g, b)
		}
	}
	if hexColor(300, -4, 16) != "#ff0010" {
		t.Errorf("hexColor clamp failed: %s", hexColor(300, -4, 16))
	}
}

func TestGradientText(t *testing.T) {
	if GradientText("", "#000000", "#ffffff") != "" {
		t.Error("empty text should render empty")
	}
	out := GradientText("héllo", lipgloss.Color("#7c3aed"), lipgloss.Color("#9333ea"))
	if !strings.Contains(ansi.Strip(out), "héllo") {
		t.Errorf("gradient lost characters: %q", out)
	}
}

func TestSeparator(t *testing.T) {
	s := NewStyles(ThemeMinimal)
	if w := lipgloss.Width(s.Separator(40)); w != 40 {
		t.Errorf("separator width = %d", w)
	}
	if w := lipgloss.Width(s.Separator(4)); w != 4 {
		t.Errorf("narrow separator width = %d", w)
	}
}
