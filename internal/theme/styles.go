package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles are the lipgloss styles derived from a Theme
type Styles struct {
	Theme Theme

	Brand     lipgloss.Style
	NavLink   lipgloss.Style
	NavActive lipgloss.Style
	Badge     lipgloss.Style
	Headline  lipgloss.Style
	Highlight lipgloss.Style
	Eyebrow   lipgloss.Style
	Title     lipgloss.Style
	Body      lipgloss.Style
	Muted     lipgloss.Style

	Card          lipgloss.Style
	CardHighlight lipgloss.Style
	Window        lipgloss.Style
	WindowBar     lipgloss.Style

	UserBubble lipgloss.Style
	AIBubble   lipgloss.Style
	Caret      lipgloss.Style
	Typing     lipgloss.Style

	Button        lipgloss.Style
	ButtonOutline lipgloss.Style
	Check         lipgloss.Style
	StatValue     lipgloss.Style
	KeyHint       lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme: t,

		Brand:     lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		NavLink:   lipgloss.NewStyle().Foreground(t.Muted),
		NavActive: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Badge: lipgloss.NewStyle().
			Foreground(t.Accent).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		Headline:  lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Highlight: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Eyebrow:   lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(t.Text),
		Body:      lipgloss.NewStyle().Foreground(t.Text),
		Muted:     lipgloss.NewStyle().Foreground(t.Muted),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),
		CardHighlight: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),
		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border),
		WindowBar: lipgloss.NewStyle().
			Foreground(t.Muted).
			Background(t.Surface).
			Padding(0, 1),

		UserBubble: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Primary).
			Padding(0, 1),
		AIBubble: lipgloss.NewStyle().
			Foreground(t.Text).
			Background(t.Surface).
			Padding(0, 1),
		Caret:  lipgloss.NewStyle().Foreground(t.Primary),
		Typing: lipgloss.NewStyle().Foreground(t.Accent),

		Button: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Primary).
			Padding(0, 2),
		ButtonOutline: lipgloss.NewStyle().
			Foreground(t.Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 2),
		Check:     lipgloss.NewStyle().Foreground(t.Success),
		StatValue: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		KeyHint:   lipgloss.NewStyle().Foreground(t.Muted).Italic(true),
	}
}

// GradientText creates a gradient effect on text using color interpolation
func GradientText(text string, startColor, endColor lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	sr, sg, sb := parseHex(string(startColor))
	er, eg, eb := parseHex(string(endColor))

	var result strings.Builder
	n := len(runes)
	for i, c := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		r := int(float64(sr) + t*float64(er-sr))
		g := int(float64(sg) + t*float64(eg-sg))
		b := int(float64(sb) + t*float64(eb-sb))

		style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(hexColor(r, g, b)))
		result.WriteString(style.Render(string(c)))
	}
	return result.String()
}

// Separator draws a decorative rule
func (s Styles) Separator(width int) string {
	if width < 8 {
		return s.Muted.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-3)
	right := strings.Repeat("─", width-mid-3)
	return s.Muted.Render(left + " ◆ " + right)
}

func parseHex(hex string) (r, g, b int) {
	if len(hex) != 7 || hex[0] != '#' {
		return 255, 255, 255
	}
	r = parseHexByte(hex[1:3])
	g = parseHexByte(hex[3:5])
	b = parseHexByte(hex[5:7])
	return
}

func parseHexByte(s string) int {
	var val int
	for _, c := range s {
		val *= 16
		switch {
		case c >= '0' && c <= '9':
			val += int(c - '0')
		case c >= 'a' && c <= 'f':
			val += int(c - 'a' + 10)
		case c >= 'A' && c <= 'F':
			val += int(c - 'A' + 10)
		}
	}
	return val
}

func hexColor(r, g, b int) string {
	return "#" + hexByte(r) + hexByte(g) + hexByte(b)
}

func hexByte(v int) string {
	v = max(0, min(v, 255))
	const hex = "0123456789abcdef"
	return string(hex[v/16]) + string(hex[v%16])
}
