package landing

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/chatflow/internal/config"
	"github.com/san-kum/chatflow/internal/content"
	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/router"
	"github.com/san-kum/chatflow/internal/section"
	"github.com/san-kum/chatflow/internal/timing"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestModel(t *testing.T, path string) (*Model, *timing.Virtual) {
	t.Helper()
	clock := timing.NewVirtual()
	m, err := New(Options{Path: path, Scheduler: clock})
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 12})
	return m, clock
}

func TestModel_OnlyHeroRevealedAtTop(t *testing.T) {
	m, _ := newTestModel(t, "/")
	assert.Equal(t, router.Landing, m.Route().Route.Name)
	assert.Equal(t, []section.ID{section.Hero}, m.Sections().Revealed())
	assert.Equal(t, section.Hero, m.ActiveSection())
}

func TestModel_JumpRevealsOnlyTarget(t *testing.T) {
	m, _ := newTestModel(t, "/")

	m.Update(runes("3"))
	assert.Equal(t, section.Pricing, m.ActiveSection())
	assert.Equal(t, []section.ID{section.Hero, section.Pricing}, m.Sections().Revealed())

	m.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	assert.Contains(t, m.Sections().Revealed(), section.Stats)
	assert.NotContains(t, m.Sections().Revealed(), section.Features)
}

func TestModel_ScrollToBottomRevealsCTA(t *testing.T) {
	m, _ := newTestModel(t, "/")
	m.Update(runes("G"))
	assert.Equal(t, m.maxOffset(), m.Offset())
	assert.Contains(t, m.Sections().Revealed(), section.CTA)

	m.Update(runes("g"))
	assert.Equal(t, 0, m.Offset())
}

func TestModel_PreviewRunsOnScheduler(t *testing.T) {
	m, clock := newTestModel(t, "/")
	ctrl := m.Preview()
	require.NotNil(t, ctrl)
	assert.Equal(t, preview.Typing, ctrl.Phase())

	clock.Advance(time.Duration(config.DefaultTypingDelayMs) * time.Millisecond)
	m.Update(redrawMsg{})
	assert.Equal(t, preview.Streaming, ctrl.Phase())

	clock.RunUntilIdle(100000)
	m.Update(redrawMsg{})
	reply, err := content.Default().Conversation.Reply()
	require.NoError(t, err)
	assert.Equal(t, preview.Done, ctrl.Phase())
	assert.Equal(t, reply, ctrl.Displayed())
	assert.False(t, ctrl.ShowCaret())
}

func TestModel_ReplayRestartsPreview(t *testing.T) {
	m, clock := newTestModel(t, "/")
	clock.RunUntilIdle(100000)
	require.Equal(t, preview.Done, m.Preview().Phase())

	_, cmd := m.Update(runes("r"))
	assert.NotNil(t, cmd)
	assert.Equal(t, preview.Typing, m.Preview().Phase())
	assert.Equal(t, "", m.Preview().Displayed())
}

func TestModel_RouteChangeStopsTimers(t *testing.T) {
	m, clock := newTestModel(t, "/")
	require.Greater(t, clock.Pending(), 0)

	m.Update(runes("l"))
	assert.Equal(t, router.Login, m.Route().Route.Name)
	assert.Nil(t, m.Preview())
	assert.Nil(t, m.Sections())
	assert.Equal(t, 0, clock.Pending())
	assert.Contains(t, m.View(), "Sign in to ChatFlow")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, router.Landing, m.Route().Route.Name)
	require.NotNil(t, m.Preview())
	assert.Equal(t, preview.Typing, m.Preview().Phase())
	assert.Greater(t, clock.Pending(), 0)
}

func TestModel_QuitStopsTimers(t *testing.T) {
	m, clock := newTestModel(t, "/")
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, 0, clock.Pending())
	assert.Equal(t, "", m.View())

	m.Close()
}

func TestModel_Routes(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/chat/42", "Chat ID: 42"},
		{"/files/docs/q1.pdf", "File Path: docs/q1.pdf"},
		{"/nowhere", "No page at /nowhere"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			m, clock := newTestModel(t, tt.path)
			assert.Nil(t, m.Preview())
			assert.Equal(t, 0, clock.Pending())
			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestModel_FAQAccordion(t *testing.T) {
	m, _ := newTestModel(t, "/")
	cta := func() int {
		for _, b := range m.blocks {
			if b.id == section.CTA {
				return b.region.Top
			}
		}
		t.Fatal("no cta block")
		return 0
	}
	before := cta()

	m.Update(runes("]"))
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, m.faqOpen)
	assert.Greater(t, cta(), before)

	m.ToggleFAQ(3)
	assert.Equal(t, 3, m.faqOpen)
	m.ToggleFAQ(3)
	assert.Equal(t, -1, m.faqOpen)
	m.Update(redrawMsg{})
	assert.Equal(t, before, cta())

	m.ToggleFAQ(99)
	assert.Equal(t, -1, m.faqOpen)
}

func TestModel_NarrowMenu(t *testing.T) {
	m, _ := newTestModel(t, "/")
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	h := m.bodyHeight()

	m.Update(runes("m"))
	assert.True(t, m.menuOpen)
	assert.Less(t, m.bodyHeight(), h)
	assert.Contains(t, m.View(), "Integrations")

	m.Update(runes("2"))
	assert.False(t, m.menuOpen)
	assert.Equal(t, section.Integrations, m.ActiveSection())
}

func TestModel_ThemeCycle(t *testing.T) {
	m, _ := newTestModel(t, "/")
	first := m.theme.Name
	m.Update(runes("t"))
	assert.NotEqual(t, first, m.theme.Name)
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Reveal.Threshold = 3
	_, err := New(Options{Config: cfg, Scheduler: timing.NewVirtual()})
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNew_OwnsLoop(t *testing.T) {
	m, err := New(Options{})
	require.NoError(t, err)
	assert.NotNil(t, m.loop)
	assert.NotNil(t, m.Init())
	m.Close()
	m.Close()
}
