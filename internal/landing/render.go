package landing

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/muesli/reflow/wordwrap"

	"github.com/san-kum/chatflow/internal/content"
	"github.com/san-kum/chatflow/internal/router"
	"github.com/san-kum/chatflow/internal/section"
	"github.com/san-kum/chatflow/internal/theme"
)

func center(w int, s string) string {
	return lipgloss.NewStyle().Width(w).Align(lipgloss.Center).Render(s)
}

// columns picks how many cards fit across w.
func columns(w, minCard, most int) int {
	return max(min(w/minCard, most), 1)
}

// grid lays cells out in rows of cols, centered in w.
func grid(w, cols int, cells []string) string {
	var rows []string
	for i := 0; i < len(cells); i += cols {
		end := min(i+cols, len(cells))
		row := make([]string, 0, 2*(end-i))
		for j := i; j < end; j++ {
			if j > i {
				row = append(row, " ")
			}
			row = append(row, cells[j])
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func cardWidth(w, cols int) int {
	return (w - (cols - 1)) / cols
}

func (m *Model) renderNav() string {
	s := m.styles
	brand := s.Highlight.Render("✦ ") + theme.GradientText(m.page.Brand, m.theme.Primary, m.theme.Secondary)
	login := s.Button.Render(m.page.LoginLabel)

	var right string
	if m.width >= narrowWidth {
		active := m.ActiveSection()
		links := make([]string, 0, len(m.page.Nav))
		for i, name := range m.page.Nav {
			style := s.NavLink
			if m.match.Route.Name == router.Landing && section.ID(strings.ToLower(name)) == active {
				style = s.NavActive
			}
			links = append(links, style.Render(fmt.Sprintf("%d %s", i+1, name)))
		}
		right = strings.Join(links, "   ") + "   " + login
	} else {
		toggle := "☰ menu"
		if m.menuOpen {
			toggle = "✕ close"
		}
		right = s.NavLink.Render(toggle)
	}

	gap := max(m.width-lipgloss.Width(brand)-lipgloss.Width(right)-2, 1)
	lines := []string{" " + brand + strings.Repeat(" ", gap) + right}

	if m.menuOpen && m.width < narrowWidth {
		for i, name := range m.page.Nav {
			lines = append(lines, "   "+s.NavLink.Render(fmt.Sprintf("%d %s", i+1, name)))
		}
		lines = append(lines, "   "+s.NavActive.Render("l "+m.page.LoginLabel))
	}
	lines = append(lines, s.Separator(m.width))
	return strings.Join(lines, "\n")
}

func (m *Model) renderHeading(w int, h content.Heading) string {
	s := m.styles
	lines := []string{"", center(w, s.Eyebrow.Render(strings.ToUpper(h.Eyebrow))), center(w, s.Title.Render(h.Title))}
	if h.Subtitle != "" {
		lines = append(lines, center(w, s.Muted.Render(wordwrap.String(h.Subtitle, min(w, 72)))))
	}
	return strings.Join(append(lines, ""), "\n")
}

// renderSections draws each animated section at width w.
func (m *Model) renderSections(w int) map[section.ID]string {
	return map[section.ID]string{
		section.Hero:         m.renderHero(w),
		section.Features:     m.renderFeatures(w),
		section.Integrations: m.renderIntegrations(w),
		section.Stats:        m.renderStats(w),
		section.Pricing:      m.renderPricing(w),
		section.FAQs:         m.renderFAQs(w),
		section.CTA:          m.renderCTA(w),
	}
}

func (m *Model) renderHero(w int) string {
	s := m.styles
	h := m.page.Hero

	headline := h.Headline
	if h.Highlight != "" {
		headline = strings.Replace(headline, h.Highlight, s.Highlight.Render(h.Highlight), 1)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Button.Render(h.PrimaryCTA+" →"), "  ", s.ButtonOutline.Render(h.SecondaryCTA))

	names := make([]string, 0, len(m.page.TrustedBy))
	for _, b := range m.page.TrustedBy {
		names = append(names, lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Bold(true).Render(b.Name))
	}
	trusted := wordwrap.String(strings.Join(names, s.Muted.Render("  ·  ")), w)

	return strings.Join([]string{
		"",
		center(w, s.Badge.Render("● "+h.Badge)),
		"",
		center(w, s.Headline.Render(wordwrap.String(headline, min(w, 60)))),
		"",
		center(w, s.Muted.Render(wordwrap.String(h.Subtitle, min(w, 68)))),
		"",
		center(w, buttons),
		center(w, s.Muted.Render(h.Note)),
		"",
		center(w, m.renderChat(min(w, 76))),
		"",
		center(w, s.Muted.Render("TRUSTED BY TEAMS AT")),
		center(w, trusted),
		"",
	}, "\n")
}

func (m *Model) renderFeatures(w int) string {
	s := m.styles
	cols := columns(w, 32, 3)
	cw := cardWidth(w, cols)
	cells := make([]string, 0, len(m.page.Features.Items))
	for _, f := range m.page.Features.Items {
		body := s.Title.Render(f.Title) + "\n" + s.Muted.Render(wordwrap.String(f.Description, cw-4))
		cells = append(cells, s.Card.Width(cw-2).Render(body))
	}
	return m.renderHeading(w, m.page.Features.Heading) + "\n" + grid(w, cols, cells) + "\n"
}

func (m *Model) renderIntegrations(w int) string {
	s := m.styles
	cols := columns(w, 16, 6)
	cw := cardWidth(w, cols)
	cells := make([]string, 0, len(m.page.Integrations.Items))
	for _, b := range m.page.Integrations.Items {
		dot := lipgloss.NewStyle().Foreground(lipgloss.Color(b.Color)).Render("■")
		cells = append(cells, s.Card.Width(cw-2).Align(lipgloss.Center).Render(dot+" "+s.Body.Render(b.Name)))
	}
	return m.renderHeading(w, m.page.Integrations.Heading) + "\n" + grid(w, cols, cells) + "\n"
}

func (m *Model) renderStats(w int) string {
	s := m.styles
	cols := columns(w, 22, 4)
	cw := cardWidth(w, cols)
	cells := make([]string, 0, len(m.page.Stats))
	for _, st := range m.page.Stats {
		body := s.StatValue.Render(st.Value) + "\n" + s.Muted.Render(wordwrap.String(st.Label, cw-2))
		cells = append(cells, lipgloss.NewStyle().Width(cw).Align(lipgloss.Center).Render(body))
	}
	out := "\n" + grid(w, cols, cells) + "\n"

	if len(m.page.DailyMessages) > 1 {
		plot := asciigraph.Plot(m.page.DailyMessages,
			asciigraph.Height(5),
			asciigraph.Width(min(w-12, 60)),
			asciigraph.Precision(1),
			asciigraph.Caption("messages per day (millions)"),
		)
		out += "\n" + center(w, s.Muted.Render(plot)) + "\n"
	}
	return out
}

func (m *Model) renderPricing(w int) string {
	s := m.styles
	tiers := m.page.Pricing.Tiers
	cols := columns(w, 30, len(tiers))
	cw := cardWidth(w, cols)

	cells := make([]string, 0, len(tiers))
	for _, t := range tiers {
		badge := " "
		if t.Badge != "" {
			badge = s.Badge.UnsetBorderStyle().Render(t.Badge)
		}
		lines := []string{
			badge,
			s.Title.Render(t.Name),
			s.StatValue.Render(t.Price) + s.Muted.Render(t.Period),
			"",
		}
		for _, f := range t.Features {
			lines = append(lines, s.Check.Render("✓ ")+s.Body.Render(f))
		}
		button := s.ButtonOutline
		if t.Highlighted {
			button = s.Button
		}
		lines = append(lines, "", button.Render(t.CTA))

		card := s.Card
		if t.Highlighted {
			card = s.CardHighlight
		}
		cells = append(cells, card.Width(cw-2).Render(strings.Join(lines, "\n")))
	}
	return m.renderHeading(w, m.page.Pricing.Heading) + "\n" + grid(w, cols, cells) + "\n"
}

func (m *Model) renderFAQs(w int) string {
	s := m.styles
	fw := min(w, 76)
	items := make([]string, 0, len(m.page.FAQs.Items))
	for i, q := range m.page.FAQs.Items {
		marker, style := "▸ ", s.Body
		if i == m.faqOpen {
			marker = "▾ "
		}
		if i == m.faqCursor {
			style = s.NavActive
		}
		item := style.Render(marker + q.Question)
		if i == m.faqOpen {
			item += "\n" + s.Muted.PaddingLeft(2).Render(wordwrap.String(q.Answer, fw-2))
		}
		items = append(items, s.Card.Width(fw-2).Render(item))
	}
	list := lipgloss.PlaceHorizontal(w, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, items...))
	return m.renderHeading(w, m.page.FAQs.Heading) + "\n" + list + "\n"
}

func (m *Model) renderCTA(w int) string {
	s := m.styles
	c := m.page.CTA
	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		s.Button.Render(c.Primary+" →"), "  ", s.ButtonOutline.Render(c.Secondary))
	return strings.Join([]string{
		"",
		center(w, s.Badge.Render("✦ "+c.Badge)),
		center(w, s.Headline.Render(c.Title)),
		center(w, s.Muted.Render(wordwrap.String(c.Subtitle, min(w, 64)))),
		"",
		center(w, buttons),
		"",
	}, "\n")
}

func (m *Model) renderFooter(w int) string {
	s := m.styles
	links := make([]string, 0, len(m.page.Footer.Links))
	for _, l := range m.page.Footer.Links {
		links = append(links, s.NavLink.Render(l))
	}
	copyright := fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), m.page.Footer.Copyright)
	return strings.Join([]string{
		s.Separator(w),
		center(w, s.Brand.Render(m.page.Brand)+"   "+strings.Join(links, "  ")),
		center(w, s.Muted.Render(copyright)),
	}, "\n")
}

// renderRoute draws the placeholder pages of the application shell.
func (m *Model) renderRoute(w int) string {
	s := m.styles
	var title, detail string
	switch m.match.Route.Name {
	case router.Chat:
		title, detail = "Chat", "Your conversations will appear here."
	case router.ChatDetail:
		title, detail = "Chat", "Chat ID: "+m.match.Param("chatId")
	case router.ChatSettings:
		title, detail = "Chat Settings", "Model, tone and workspace preferences."
	case router.Files:
		title, detail = "Files", "File Path: "+m.match.Param("*")
	case router.Login:
		title, detail = m.page.LoginLabel, "Sign in to "+m.page.Brand+" to continue."
	default:
		title, detail = "404", "No page at "+m.match.Path
	}
	body := strings.Join([]string{
		"",
		center(w, s.Headline.Render(title)),
		"",
		center(w, s.Body.Render(detail)),
		"",
		center(w, s.KeyHint.Render("esc to return to the landing page")),
	}, "\n")
	return lipgloss.NewStyle().Height(m.bodyHeight()).Render(body)
}
