package landing

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const caret = "▌"

// renderChat draws the preview window. The assistant bubble is padded to
// the height of the full reply so the page does not reflow while the
// reply streams in.
func (m *Model) renderChat(width int) string {
	s := m.styles
	inner := width - 2
	bubbleW := inner * 4 / 5

	bar := s.WindowBar.Width(inner).Render("● ● ●  " + s.Highlight.Render("✦") + " ChatFlow AI")

	prompt := s.UserBubble.Render(wordwrap.String(m.page.Conversation.Prompt(), bubbleW-2))
	user := lipgloss.PlaceHorizontal(inner, lipgloss.Right, prompt)

	textW := bubbleW - 4
	full := wordwrap.String(m.reply+caret, textW)
	rows := strings.Count(full, "\n") + 1

	var body string
	switch {
	case m.preview == nil:
		body = ""
	case m.preview.ShowTyping():
		body = s.Typing.Render(m.spinner.View())
	default:
		text := m.preview.Displayed()
		if m.preview.ShowCaret() {
			text += s.Caret.Render(caret)
		}
		body = wordwrap.String(text, textW)
	}
	if n := strings.Count(body, "\n") + 1; n < rows {
		body += strings.Repeat("\n", rows-n)
	}
	ai := lipgloss.JoinHorizontal(lipgloss.Top,
		s.Highlight.Render("✦ "),
		s.AIBubble.Width(bubbleW-2).Render(body),
	)

	messages := lipgloss.NewStyle().Padding(1, 1).Width(inner).Render(
		lipgloss.JoinVertical(lipgloss.Left, user, "", ai),
	)
	return s.Window.Width(inner).Render(lipgloss.JoinVertical(lipgloss.Left, bar, messages))
}
