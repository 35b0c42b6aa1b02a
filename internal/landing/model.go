package landing

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/chatflow/internal/config"
	"github.com/san-kum/chatflow/internal/content"
	"github.com/san-kum/chatflow/internal/logging"
	"github.com/san-kum/chatflow/internal/preview"
	"github.com/san-kum/chatflow/internal/router"
	"github.com/san-kum/chatflow/internal/section"
	"github.com/san-kum/chatflow/internal/theme"
	"github.com/san-kum/chatflow/internal/timing"
	"github.com/san-kum/chatflow/internal/visibility"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	maxWidth      = 110
	narrowWidth   = 80
)

// sectionOrder is the top-to-bottom order of the animated sections.
var sectionOrder = []section.ID{
	section.Hero,
	section.Features,
	section.Integrations,
	section.Stats,
	section.Pricing,
	section.FAQs,
	section.CTA,
}

type Options struct {
	Config *config.Config
	Page   *content.Page
	Router *router.Router
	// Path is the initial route. Empty means "/".
	Path   string
	Logger *slog.Logger
	// Scheduler drives every timer on the page. When nil the model owns a
	// timing.Loop and pumps it through Update.
	Scheduler timing.Scheduler
}

// redrawMsg asks for a relayout without any other state change.
type redrawMsg struct{}

// block is one rendered slice of the document.
type block struct {
	id     section.ID
	body   string
	region visibility.Region
}

type Model struct {
	cfg    *config.Config
	page   *content.Page
	router *router.Router
	log    *slog.Logger

	sched timing.Scheduler
	loop  *timing.Loop

	theme  theme.Theme
	styles theme.Styles
	reply  string

	match router.Match

	observer *visibility.Observer
	sections *section.Set
	bound    map[section.ID]bool
	preview  *preview.Controller

	spinner  spinner.Model
	viewport viewport.Model
	help     help.Model

	blocks []block
	footer string
	docLen int

	width     int
	height    int
	offset    int
	menuOpen  bool
	showHelp  bool
	faqCursor int
	faqOpen   int
	closed    bool
}

func New(opts Options) (*Model, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	page := opts.Page
	if page == nil {
		page = content.Default()
	}
	reply, err := page.Conversation.Reply()
	if err != nil {
		return nil, err
	}
	rt := opts.Router
	if rt == nil {
		rt = router.Default()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}

	m := &Model{
		cfg:     cfg,
		page:    page,
		router:  rt,
		log:     log,
		sched:   opts.Scheduler,
		reply:   reply,
		bound:   make(map[section.ID]bool),
		help:    help.New(),
		width:   defaultWidth,
		height:  defaultHeight,
		faqOpen: -1,
	}
	if m.sched == nil {
		m.loop = timing.NewLoop()
		m.sched = m.loop
	}
	m.setTheme(theme.GetTheme(cfg.Theme))
	m.viewport = viewport.New(m.width, m.bodyHeight())

	path := opts.Path
	if path == "" {
		path = "/"
	}
	if err := m.navigate(path); err != nil {
		return nil, err
	}
	m.relayout()
	return m, nil
}

// Run starts the page in the alternate screen and blocks until quit.
func Run(opts Options) error {
	m, err := New(opts)
	if err != nil {
		return err
	}
	defer m.Close()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

func (m *Model) setTheme(t theme.Theme) {
	m.theme = t
	m.styles = theme.NewStyles(t)
	m.spinner = spinner.New(spinner.WithSpinner(spinner.Points), spinner.WithStyle(m.styles.Typing))
}

func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.spinner.Tick}
	if m.loop != nil {
		cmds = append(cmds, m.loop.Listen())
	}
	return tea.Batch(cmds...)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case timing.FireMsg:
		if m.loop != nil {
			m.loop.Dispatch(msg)
			cmds = append(cmds, m.loop.Listen())
		}
	case spinner.TickMsg:
		// The indicator only animates while the preview is typing; dropping
		// the tick lets it go quiet until the next replay.
		if m.preview != nil && m.preview.ShowTyping() {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.scrollBy(-3)
		case tea.MouseButtonWheelDown:
			m.scrollBy(3)
		}
	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	if !m.closed {
		m.relayout()
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.Quit):
		m.Close()
		return tea.Quit
	case key.Matches(msg, keys.Help):
		m.showHelp = !m.showHelp
		m.help.ShowAll = m.showHelp
		return nil
	case key.Matches(msg, keys.Theme):
		m.setTheme(theme.Next(m.theme))
		m.log.Debug("theme changed", "theme", m.theme.Name)
		return nil
	case key.Matches(msg, keys.Back):
		if m.match.Route.Name != router.Landing {
			return m.goTo("/")
		}
		m.menuOpen = false
		return nil
	case key.Matches(msg, keys.Login):
		return m.goTo("/login")
	case key.Matches(msg, keys.Chat):
		return m.goTo("/chat")
	}

	if m.match.Route.Name != router.Landing {
		return nil
	}

	switch {
	case key.Matches(msg, keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, keys.PageUp):
		m.scrollBy(-m.bodyHeight())
	case key.Matches(msg, keys.PageDown):
		m.scrollBy(m.bodyHeight())
	case key.Matches(msg, keys.Top):
		m.offset = 0
	case key.Matches(msg, keys.Bottom):
		m.offset = m.maxOffset()
	case key.Matches(msg, keys.Jump):
		i := int(msg.Runes[0] - '1')
		if i >= 0 && i < len(m.page.Nav) {
			m.JumpTo(section.ID(strings.ToLower(m.page.Nav[i])))
		}
		m.menuOpen = false
	case key.Matches(msg, keys.FAQPrev):
		if m.faqCursor > 0 {
			m.faqCursor--
		}
	case key.Matches(msg, keys.FAQNext):
		if m.faqCursor < len(m.page.FAQs.Items)-1 {
			m.faqCursor++
		}
	case key.Matches(msg, keys.Toggle):
		m.ToggleFAQ(m.faqCursor)
	case key.Matches(msg, keys.Replay):
		if m.preview != nil {
			m.preview.Start()
			m.log.Debug("preview replayed")
			return m.spinner.Tick
		}
	case key.Matches(msg, keys.Menu):
		m.menuOpen = !m.menuOpen
	}
	return nil
}

// goTo switches route and restarts the spinner when the landing page comes
// back into view.
func (m *Model) goTo(path string) tea.Cmd {
	was := m.match.Route.Name
	if err := m.navigate(path); err != nil {
		m.log.Warn("navigation failed", "path", path, "err", err)
		return nil
	}
	if was != router.Landing && m.match.Route.Name == router.Landing {
		return m.spinner.Tick
	}
	return nil
}

// navigate resolves path and mounts or unmounts the landing page. An
// unknown path is not an error; it renders the not-found page.
func (m *Model) navigate(path string) error {
	match, err := m.router.Match(path)
	if err != nil && !errors.Is(err, router.ErrNotFound) {
		return err
	}
	if err != nil {
		m.log.Warn("no route", "path", path)
		match = router.Match{Path: path}
	}

	m.match = match
	m.menuOpen = false
	m.log.Info("route", "path", path, "name", match.Route.Name)

	if match.Route.Name == router.Landing {
		if m.preview != nil {
			return nil
		}
		return m.mount()
	}
	m.unmount()
	return nil
}

// mount builds fresh trackers and a fresh preview for the landing page.
func (m *Model) mount() error {
	m.unmount()
	m.offset = 0
	m.observer = visibility.NewObserver(m.viewportRows())

	sections, err := section.NewSet(m.observer, m.cfg.Reveal.Threshold, m.sched, m.cfg.Settle(), sectionOrder...)
	if err != nil {
		return fmt.Errorf("landing: %w", err)
	}
	sections.OnChange(func(id section.ID) {
		if b := sections.Get(id); b != nil && b.Offset() == section.SettleRows {
			m.log.Debug("section revealed", "section", string(id))
		}
	})

	ctrl, err := preview.New(m.sched, m.reply, m.cfg.PreviewOptions())
	if err != nil {
		sections.Release()
		return fmt.Errorf("landing: %w", err)
	}
	ctrl.OnPhase(func(p preview.Phase) {
		m.log.Debug("preview phase", "phase", p.String())
	})

	m.sections = sections
	m.preview = ctrl
	m.bound = make(map[section.ID]bool)
	ctrl.Start()
	return nil
}

// unmount stops every timer and observation owned by the landing page.
func (m *Model) unmount() {
	if m.preview != nil {
		m.preview.Stop()
		m.preview = nil
	}
	if m.sections != nil {
		m.sections.Release()
		m.sections = nil
	}
	m.observer = nil
	m.blocks = nil
}

// Close tears the page down. It is safe to call more than once.
func (m *Model) Close() {
	if m.closed {
		return
	}
	m.closed = true
	m.unmount()
	if m.loop != nil {
		m.loop.Close()
	}
}

func (m *Model) headerHeight() int {
	h := 2
	if m.menuOpen && m.width < narrowWidth {
		h += len(m.page.Nav) + 1
	}
	return h
}

// bodyHeight is the number of document rows on screen.
func (m *Model) bodyHeight() int {
	return max(m.height-m.headerHeight()-1, 1)
}

func (m *Model) viewportRows() visibility.Viewport {
	return visibility.Viewport{Top: m.offset, Height: m.bodyHeight()}
}

func (m *Model) contentWidth() int {
	return max(min(m.width, maxWidth)-4, 20)
}

func (m *Model) maxOffset() int {
	return max(m.docLen-m.bodyHeight(), 0)
}

func (m *Model) scrollBy(n int) {
	m.offset += n
	m.clamp()
}

func (m *Model) clamp() {
	m.offset = max(min(m.offset, m.maxOffset()), 0)
}

// JumpTo scrolls so that the section starts at the top of the screen.
func (m *Model) JumpTo(id section.ID) {
	for _, b := range m.blocks {
		if b.id == id {
			m.offset = b.region.Top
			m.clamp()
			return
		}
	}
}

// ToggleFAQ opens question i, closing any other. Toggling the open
// question closes it.
func (m *Model) ToggleFAQ(i int) {
	if i < 0 || i >= len(m.page.FAQs.Items) {
		return
	}
	m.faqCursor = i
	if m.faqOpen == i {
		m.faqOpen = -1
		return
	}
	m.faqOpen = i
}

// relayout renders every section, moves each binder onto its new rows and
// samples the viewport.
func (m *Model) relayout() {
	if m.sections == nil {
		return
	}
	w := m.contentWidth()
	bodies := m.renderSections(w)

	m.blocks = m.blocks[:0]
	top := 0
	for _, id := range sectionOrder {
		body := bodies[id]
		h := strings.Count(body, "\n") + 1
		m.blocks = append(m.blocks, block{id: id, body: body, region: visibility.Region{Top: top, Height: h}})
		top += h
	}
	m.footer = m.renderFooter(w)
	m.docLen = top + strings.Count(m.footer, "\n") + 1
	m.clamp()

	m.observer.SetViewport(m.viewportRows())
	for _, b := range m.blocks {
		binder := m.sections.Get(b.id)
		if !m.bound[b.id] {
			r := b.region
			binder.Bind(&r)
			m.bound[b.id] = true
			continue
		}
		binder.Move(b.region)
	}
}

// ActiveSection is the section at the top of the screen.
func (m *Model) ActiveSection() section.ID {
	var active section.ID
	for _, b := range m.blocks {
		if b.region.Top <= m.offset {
			active = b.id
		}
	}
	return active
}

func (m *Model) Route() router.Match { return m.match }

func (m *Model) Offset() int { return m.offset }

func (m *Model) Sections() *section.Set { return m.sections }

func (m *Model) Preview() *preview.Controller { return m.preview }

func (m *Model) View() string {
	if m.closed {
		return ""
	}
	header := m.renderNav()
	hints := m.styles.KeyHint.Render(m.help.View(keys))

	if m.match.Route.Name != router.Landing {
		page := m.renderRoute(m.contentWidth())
		return strings.Join([]string{header, page, hints}, "\n")
	}

	parts := make([]string, 0, len(m.blocks)+1)
	for _, b := range m.blocks {
		parts = append(parts, m.sections.Get(b.id).Render(b.body))
	}
	parts = append(parts, m.footer)

	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()
	m.viewport.SetContent(strings.Join(parts, "\n"))
	m.viewport.SetYOffset(m.offset)

	return strings.Join([]string{header, m.viewport.View(), hints}, "\n")
}
